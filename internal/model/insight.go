package model

// InsightType classifies a spending observation.
type InsightType string

// Insight type constants.
const (
	InsightPattern InsightType = "pattern"
	InsightAnomaly InsightType = "anomaly"
	InsightTrend   InsightType = "trend"
)

// Insight is a ranked, human-readable spending observation. Confidence
// reflects certainty of the observation and only drives output ordering.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  float64     `json:"confidence"`
}
