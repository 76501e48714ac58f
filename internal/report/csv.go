// Package report renders schedule responses for people: CSV exports, text
// tables with a Gantt strip, and uploads to object storage.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"cpu-scheduler/internal/responses"
)

var detailHeader = []string{
	"Process ID", "Arrival Time", "Burst Time", "Completion Time",
	"Turnaround Time", "Waiting Time", "Response Time",
}

// WriteCSV writes a summary section followed by per-process metrics.
func WriteCSV(w io.Writer, resp responses.ScheduleResponse) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"Summary Metrics"},
		{"Metric", "Value"},
		{"Algorithm", resp.AlgorithmName},
		{"Average Waiting Time", fmt.Sprintf("%.2f", resp.AverageWaitingTime)},
		{"Average Turnaround Time", fmt.Sprintf("%.2f", resp.AverageTurnAroundTime)},
		{"Average Response Time", fmt.Sprintf("%.2f", resp.AverageResponseTime)},
		{"CPU Utilization", fmt.Sprintf("%.1f%%", resp.CpuUtilization*100)},
		{"Throughput", fmt.Sprintf("%.2f", resp.CpuThroughput)},
		{},
		{"Detailed Process Metrics"},
		detailHeader,
	}
	for _, d := range resp.Details {
		records = append(records, []string{
			d.ProcessId,
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.ResponseTime),
		})
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv report: %w", err)
	}
	return nil
}

// FileName is the conventional export name for a report produced on date.
func FileName(algorithm string, date time.Time) string {
	return fmt.Sprintf("scheduling_report_%s_%s.csv", algorithm, date.Format("2006-01-02"))
}
