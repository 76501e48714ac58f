package requests

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// LoadScheduleRequests reads a process file. The format follows the
// extension: .yaml/.yml (strict, unknown keys rejected), .json, or .csv
// with rows of id,arrival,burst[,priority]. YAML and JSON share the same
// keys, e.g. process_id and burst_time.
func LoadScheduleRequests(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		var request ScheduleRequests
		if err := json.Unmarshal(data, &request); err != nil {
			return nil, fmt.Errorf("parsing process file: %w", err)
		}
		return &request, nil
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func ParseYAML(data []byte) (*ScheduleRequests, error) {
	var request ScheduleRequests
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing process file: %w", err)
	}
	return &request, nil
}

func ParseCSV(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing process file: %w", err)
	}

	request := &ScheduleRequests{Jobs: make([]Job, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(row[0], "id") {
			continue // header
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: want id,arrival,burst[,priority], got %d fields", i+1, len(row))
		}
		job := Job{ProcessId: row[0]}
		if job.ArrivalTime, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("row %d: arrival: %w", i+1, err)
		}
		if job.BurstTime, err = strconv.Atoi(row[2]); err != nil {
			return nil, fmt.Errorf("row %d: burst: %w", i+1, err)
		}
		if len(row) == 4 {
			if job.Priority, err = strconv.Atoi(row[3]); err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", i+1, err)
			}
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}
