package types

import "time"

type SummaryAsset struct {
	Rank     int64   `json:"rank"`
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	PriceUsd float64 `json:"priceUsd"`
	Supply   float64 `json:"supply"`
}

type GetSummaryResponse struct {
	// nil until the first successful run
	UpdatedAt *time.Time     `json:"updatedAt"`
	Assets    []SummaryAsset `json:"assets"`
}

type GetMarketStatsResponse struct {
	AsOf                *time.Time `json:"asOf"`
	Assets              int        `json:"assets"`
	Advancers           int        `json:"advancers"`
	Decliners           int        `json:"decliners"`
	Unchanged           int        `json:"unchanged"`
	TotalMarketCapUsd   float64    `json:"totalMarketCapUsd"`
	MeanChangePercent   float64    `json:"meanChangePercent"`
	MedianChangePercent float64    `json:"medianChangePercent"`
}

type GetLatestRunResponse struct {
	PipelineName string    `json:"pipelineName"`
	RunID        string    `json:"runId"`
	LastStagedAt time.Time `json:"lastStagedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SchedulerStatus struct {
	Runs        int64      `json:"runs"`
	Failures    int64      `json:"failures"`
	Overlaps    int64      `json:"overlaps"`
	LastRunID   string     `json:"lastRunId,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
	LastSuccess *time.Time `json:"lastSuccess,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Databases map[string]string `json:"databases"`
	Scheduler *SchedulerStatus  `json:"scheduler,omitempty"`
}
