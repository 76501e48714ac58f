package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/generator"
)

// inTempDir runs the test from an empty working directory so no config.yaml
// or .env from the repository is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadSchedulerConfig_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "fcfs", cfg.DefaultAlgorithm)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{2, 4}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, generator.DefaultConfig(), cfg.Generator)
	assert.Equal(t, CacheConfig{NumCounters: 100000, MaxCost: 1 << 20, TTLSeconds: 300}, cfg.Cache)
	assert.False(t, cfg.ReportS3.Enabled)
}

func TestLoadSchedulerConfig_File(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
log_level: debug
scheduler:
  default_algorithm: hrrn
  round_robin:
    time_quantum: 4
  multilevel_feedback_queue:
    levels_time_quantum: [1, 3, 9]
generator:
  max_processes: 12
report:
  s3:
    enabled: true
    bucket: schedules
    region: eu-west-1
`), 0o600))

	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "hrrn", cfg.DefaultAlgorithm)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{1, 3, 9}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 12, cfg.Generator.MaxProcesses)
	assert.Equal(t, 3, cfg.Generator.MinProcesses)
	assert.Equal(t, S3Config{Enabled: true, Bucket: "schedules", Region: "eu-west-1"}, cfg.ReportS3)
}

func TestLoadSchedulerConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: 8080\n"), 0o600))
	t.Setenv("SCHEDULER_PORT", "7070")
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")

	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_MissingExplicitFile(t *testing.T) {
	dir := inTempDir(t)

	_, err := LoadSchedulerConfig(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSchedulerConfig_RejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"port":      "port: 0\n",
		"log level": "log_level: loud\n",
		"quantum":   "scheduler:\n  round_robin:\n    time_quantum: 0\n",
		"levels":    "scheduler:\n  multilevel_feedback_queue:\n    levels_time_quantum: [2, 0]\n",
		"generator": "generator:\n  min_processes: 9\n  max_processes: 2\n",
		"s3 bucket": "report:\n  s3:\n    enabled: true\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := inTempDir(t)
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := LoadSchedulerConfig(path)
			assert.Error(t, err)
		})
	}
}
