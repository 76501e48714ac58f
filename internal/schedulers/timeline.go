package schedulers

import "cpu-scheduler/internal/core"

// mergeTimeline joins consecutive blocks run by the same task whose
// intervals touch, so the timeline shows real context switches only.
// owners[i] identifies the task behind blocks[i]; two processes that share
// an id are never merged into one another.
func mergeTimeline(blocks []core.TimelineBlock, owners []int) []core.TimelineBlock {
	merged := make([]core.TimelineBlock, 0, len(blocks))
	lastOwner := -1
	for i, block := range blocks {
		if n := len(merged); n > 0 && owners[i] == lastOwner && merged[n-1].EndTime == block.StartTime {
			merged[n-1].EndTime = block.EndTime
			continue
		}
		merged = append(merged, block)
		lastOwner = owners[i]
	}
	return merged
}
