package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"cpu-scheduler/internal/generator"
)

type S3Config struct {
	Enabled   bool
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
	TTLSeconds  int
}

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	DefaultAlgorithm                         string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	Generator                                generator.Config
	Cache                                    CacheConfig
	ReportS3                                 S3Config
}

// LoadSchedulerConfig reads the yaml file at path, or a file named config
// in the working directory when path is empty. A missing default file is
// not an error. Environment variables prefixed SCHEDULER_ override file
// values, e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM; a .env file in
// the working directory is loaded first.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("no config file found, using defaults")
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.LogLevel = v.GetString("log_level")
	cfg.DefaultAlgorithm = v.GetString("scheduler.default_algorithm")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MultilevelFeedbackQueueLevelsTimeQuantum = v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	cfg.Generator = generator.Config{
		MinProcesses: v.GetInt("generator.min_processes"),
		MaxProcesses: v.GetInt("generator.max_processes"),
		MaxArrival:   v.GetInt("generator.max_arrival"),
		MaxBurst:     v.GetInt("generator.max_burst"),
		MaxPriority:  v.GetInt("generator.max_priority"),
	}
	cfg.Cache = CacheConfig{
		NumCounters: v.GetInt64("cache.num_counters"),
		MaxCost:     v.GetInt64("cache.max_cost"),
		TTLSeconds:  v.GetInt("cache.ttl_seconds"),
	}
	cfg.ReportS3 = S3Config{
		Enabled:   v.GetBool("report.s3.enabled"),
		Bucket:    v.GetString("report.s3.bucket"),
		Region:    v.GetString("report.s3.region"),
		AccessKey: v.GetString("report.s3.access_key"),
		SecretKey: v.GetString("report.s3.secret_key"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := generator.DefaultConfig()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.default_algorithm", "fcfs")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4})
	v.SetDefault("generator.min_processes", defaults.MinProcesses)
	v.SetDefault("generator.max_processes", defaults.MaxProcesses)
	v.SetDefault("generator.max_arrival", defaults.MaxArrival)
	v.SetDefault("generator.max_burst", defaults.MaxBurst)
	v.SetDefault("generator.max_priority", defaults.MaxPriority)
	v.SetDefault("cache.num_counters", 1e5)
	v.SetDefault("cache.max_cost", 1<<20)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("report.s3.enabled", false)
}

// Validate checks values the engine and server cannot run without.
func (c *SchedulerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port must be in 1-65535, got %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be >= 1, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("config: scheduler.multilevel_feedback_queue.levels_time_quantum must not be empty")
	}
	for _, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q < 1 {
			return fmt.Errorf("config: feedback level quantum must be >= 1, got %d", q)
		}
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ReportS3.Enabled && c.ReportS3.Bucket == "" {
		return errors.New("config: report.s3.bucket is required when report.s3.enabled is set")
	}
	return nil
}
