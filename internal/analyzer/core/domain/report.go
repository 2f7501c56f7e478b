package domain

import analytics "gallery-analytics-service/internal/analytics/core/domain"

// Tier grades how evenly requests were spread across servers.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierPoor      Tier = "poor"
	// TierNoData means no successful request carried a server id.
	TierNoData Tier = "no_data"
)

type Assessment string

const (
	AssessmentExcellent      Assessment = "excellent"
	AssessmentGood           Assessment = "good"
	AssessmentNeedsAttention Assessment = "needs_attention"
)

type Severity string

const (
	SeverityOK     Severity = "ok"
	SeverityNotice Severity = "notice"
	SeverityAction Severity = "action"
)

type ServerShare struct {
	ServerID      string
	Requests      int
	SharePercent  float64
	AvgResponseMS float64
}

type LoadBalancing struct {
	Servers       []ServerShare
	TotalHits     int
	AvgDeviation  float64
	Effectiveness float64
	Tier          Tier
}

type EndpointStats struct {
	Path     string
	Requests int
	AvgMS    float64
	MinMS    int64
	MaxMS    int64
	P95MS    int64
}

type Journey struct {
	Path  string
	Users int
}

type ServerSwitching struct {
	Users       int
	TotalUsers  int
	AvgSwitches float64
}

// Impact summarises what the run did to the target's own analytics.
type Impact struct {
	PageViews         int64
	TotalRequests     int64
	UniqueVisitors    int64
	ActiveSessions    int
	MostViewedPhotos  []analytics.PhotoViews
	RequestsPerSecond float64
	SuccessRate       float64
}

type Recommendation struct {
	Severity Severity
	Message  string
}

// Report is the read-only diagnosis of one load test run.
type Report struct {
	RunID           string
	SuccessRate     float64
	AvgResponseMS   float64
	HasTimings      bool
	LoadBalancing   LoadBalancing
	Endpoints       []EndpointStats
	Journeys        []Journey
	ServerSwitching ServerSwitching

	// LatencySeries holds successful response times in request order.
	LatencySeries []float64

	Impact          *Impact
	Recommendations []Recommendation
	Assessment      Assessment
}
