package dto

type QueryExplainRequest struct {
	Question string `json:"question" validate:"required"`
}

type QueryExplainResponse struct {
	SQL            string   `json:"sql"`
	Explanation    string   `json:"explanation"`
	AffectedTables []string `json:"affected_tables"`
	EstimatedRows  int64    `json:"estimated_rows"`
	Warnings       []string `json:"warnings"`
}

type IntentPreviewRequest struct {
	Question string `json:"question" validate:"required"`
}

type IntentPreviewIntent struct {
	Category     string   `json:"category"`
	Tables       []string `json:"tables"`
	FilterCount  int      `json:"filter_count"`
	Aggregation  *string  `json:"aggregation,omitempty"`
	HasTimeRange bool     `json:"has_time_range"`
}

type IntentPreviewResponse struct {
	Intent              IntentPreviewIntent `json:"intent"`
	Confidence          float64             `json:"confidence"`
	Explanation         string              `json:"explanation"`
	EstimatedComplexity string              `json:"estimated_complexity"`
}
