package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestGenerate_IsDeterministicPerSeed(t *testing.T) {
	first, err := Generate(NewRand(42), DefaultConfig())
	require.NoError(t, err)
	second, err := Generate(NewRand(42), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_RespectsBounds(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(0); seed < 200; seed++ {
		processes, err := Generate(NewRand(seed), cfg)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(processes), cfg.MinProcesses)
		require.LessOrEqual(t, len(processes), cfg.MaxProcesses)
		require.NoError(t, core.Validate(processes))

		for i, p := range processes {
			assert.Equal(t, i%core.PaletteSize, p.ColorIndex)
			assert.GreaterOrEqual(t, p.ArrivalTime, 0)
			assert.LessOrEqual(t, p.ArrivalTime, cfg.MaxArrival)
			assert.GreaterOrEqual(t, p.BurstTime, 1)
			assert.LessOrEqual(t, p.BurstTime, cfg.MaxBurst)
			assert.GreaterOrEqual(t, p.Priority, 1)
			assert.LessOrEqual(t, p.Priority, cfg.MaxPriority)
		}
	}
}

func TestGenerate_FixedCountAndIDs(t *testing.T) {
	cfg := Config{MinProcesses: 3, MaxProcesses: 3, MaxArrival: 0, MaxBurst: 1, MaxPriority: 1}
	processes, err := Generate(NewRand(7), cfg)
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: "P1", BurstTime: 1, Priority: 1, ColorIndex: 0},
		{ID: "P2", BurstTime: 1, Priority: 1, ColorIndex: 1},
		{ID: "P3", BurstTime: 1, Priority: 1, ColorIndex: 2},
	}, processes)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no processes", Config{MinProcesses: 0, MaxProcesses: 2, MaxBurst: 1, MaxPriority: 1}},
		{"inverted range", Config{MinProcesses: 4, MaxProcesses: 2, MaxBurst: 1, MaxPriority: 1}},
		{"negative arrival", Config{MinProcesses: 1, MaxProcesses: 1, MaxArrival: -1, MaxBurst: 1, MaxPriority: 1}},
		{"zero burst", Config{MinProcesses: 1, MaxProcesses: 1, MaxPriority: 1}},
		{"zero priority", Config{MinProcesses: 1, MaxProcesses: 1, MaxBurst: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
			_, err := Generate(NewRand(1), tt.cfg)
			assert.Error(t, err)
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
