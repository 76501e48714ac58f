package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log", "warn"))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.WarnLevel)
	os.Exit(m.Run())
}

func TestRunCommand_JSON(t *testing.T) {
	out := execute(t, "run", "--random", "--seed", "7", "--algorithm", "srtf", "--format", "json")

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "srtf", response.Algorithm)
	assert.NotEmpty(t, response.Details)
}

func TestGenerateThenCompare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.csv")
	execute(t, "generate", "--seed", "3", "--out", path)

	loaded, err := requests.LoadScheduleRequests(path)
	require.NoError(t, err)
	require.NotEmpty(t, loaded.Jobs)

	out := execute(t, "compare", "--file", path, "--quantum", "3", "--format", "json")
	var response responses.CompareResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Len(t, response.Results, len(schedulers.Algorithms))
}

func TestGenerateCommand_YAMLToStdout(t *testing.T) {
	generateOut = ""
	out := execute(t, "generate", "--seed", "5")

	request, err := requests.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.NotEmpty(t, request.Jobs)
}

func TestRecommendCommand(t *testing.T) {
	out := execute(t, "recommend", "--random", "--seed", "9")
	assert.Contains(t, out, "): ")
}

func TestInputFlags_Load(t *testing.T) {
	var flags inputFlags
	_, err := flags.load()
	assert.Error(t, err)

	flags = inputFlags{file: "x.yaml", random: true}
	_, err = flags.load()
	assert.Error(t, err)
}

func TestRootCommand_LoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scheduler:\n  default_algorithm: hrrn\n  round_robin:\n    time_quantum: 6\n"), 0o600))
	t.Cleanup(func() { configPath = "" })

	execute(t, "recommend", "--random", "--seed", "2", "--config", path)

	require.NotNil(t, cfg)
	assert.Equal(t, "hrrn", cfg.DefaultAlgorithm)
	assert.Equal(t, 6, cfg.RoundRobinTimeQuantum)
}
