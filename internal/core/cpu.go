package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CpuMetric summarises how a CPU spent simulated time, in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core. It owns the clock and records every
// execution interval in order.
type CPU struct {
	clock    int
	busy     int
	timeline []TimelineBlock
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]TimelineBlock, 0)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil moves the clock forward to t. Idle time is implicit in the gap
// between blocks; nothing is appended to the timeline.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		logrus.Debugf("cpu idle from %d to %d", c.clock, t)
		c.clock = t
	}
}

// Execute runs p for duration ticks starting at the current clock and
// returns the new clock.
func (c *CPU) Execute(p Process, duration int) int {
	if duration < 1 {
		panic(fmt.Sprintf("cpu: non-positive execution slice %d for %q at t=%d", duration, p.ID, c.clock))
	}
	block := TimelineBlock{
		ProcessID:  p.ID,
		StartTime:  c.clock,
		EndTime:    c.clock + duration,
		ColorIndex: p.ColorIndex,
	}
	logrus.Debugf("pid: %s execute [%d, %d)", p.ID, block.StartTime, block.EndTime)
	c.timeline = append(c.timeline, block)
	c.clock = block.EndTime
	c.busy += duration
	return c.clock
}

func (c *CPU) Timeline() []TimelineBlock {
	return c.timeline
}

func (c *CPU) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.clock - c.busy,
	}
}
