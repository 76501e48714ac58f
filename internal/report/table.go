package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// Render prints a title, a Gantt strip and the schedule table.
func Render(w io.Writer, resp responses.ScheduleResponse) {
	outputTitle(w, resp.AlgorithmName)
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, Gantt(resp.Timeline))
	_, _ = fmt.Fprintln(w)
	outputSchedule(w, resp)
}

// RenderComparison prints one summary row per algorithm.
func RenderComparison(w io.Writer, results []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.AlgorithmName,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.1f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
}

// Gantt draws the timeline as labelled cells over a row of boundaries. Idle
// gaps show as a cell labelled "-".
func Gantt(timeline []responses.TimelineBlockResponse) string {
	if len(timeline) == 0 {
		return "|"
	}
	var cells, times strings.Builder
	cells.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		text := padding + label + padding
		cells.WriteString(text + "|")
		mark := fmt.Sprint(start)
		times.WriteString(mark + strings.Repeat(" ", max(1, len(text)+1-len(mark))))
	}
	for _, block := range timeline {
		if block.StartTime > clock {
			cell("-", clock)
		}
		cell(block.ProcessId, block.StartTime)
		clock = block.EndTime
	}
	times.WriteString(fmt.Sprint(clock))
	return cells.String() + "\n" + times.String()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(resp.Details))
	for i, d := range resp.Details {
		rows[i] = []string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput)})
	table.Render()
}
