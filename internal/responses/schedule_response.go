package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	ColorIndex     int    `json:"color_index"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type TimelineBlockResponse struct {
	ProcessId  string `json:"process_id"`
	StartTime  int    `json:"start_time"`
	EndTime    int    `json:"end_time"`
	ColorIndex int    `json:"color_index"`
}

type ScheduleResponse struct {
	RunId                 string                  `json:"run_id,omitempty"`
	Algorithm             string                  `json:"algorithm"`
	AlgorithmName         string                  `json:"algorithm_name"`
	TotalTime             float64                 `json:"total_time"`
	IdleTime              float64                 `json:"idle_time"`
	AverageWaitingTime    float64                 `json:"average_waiting_time"`
	AverageResponseTime   float64                 `json:"average_response_time"`
	AverageTurnAroundTime float64                 `json:"average_turn_around_time"`
	CpuUtilization        float64                 `json:"cpu_utilization"`
	CpuThroughput         float64                 `json:"cpu_throughput"`
	Timeline              []TimelineBlockResponse `json:"timeline"`
	Details               []ProcessResponse       `json:"details"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id,omitempty"`
	Results []ScheduleResponse `json:"results"`
}

type RecommendResponse struct {
	Algorithm     string `json:"algorithm"`
	AlgorithmName string `json:"algorithm_name"`
	Reason        string `json:"reason"`
}
