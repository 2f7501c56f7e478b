package domain

const (
	// ServerUnknown marks successful responses that carried no server field.
	ServerUnknown = "unknown"
	// ServerError marks failed requests.
	ServerError = "error"
)

// RequestOutcome is one scripted HTTP call. Failures are data, not errors.
type RequestOutcome struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	Description  string `json:"description"`
	Status       int    `json:"status"`
	ResponseTime int64  `json:"responseTime"` // ms
	ServerID     string `json:"serverId"`
	Timestamp    int64  `json:"timestamp"` // ms since epoch
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// UserSession is the ordered record of one simulated user.
type UserSession struct {
	UserID     int              `json:"userId"`
	Behavior   Behavior         `json:"behavior"`
	StartTime  int64            `json:"startTime"`
	EndTime    int64            `json:"endTime"`
	Duration   int64            `json:"duration"`
	Requests   []RequestOutcome `json:"requests"`
	ServersHit []string         `json:"serversHitArray"`
	Errors     []string         `json:"errors"`
}

// AddServer records a distinct server id, keeping first-seen order.
func (s *UserSession) AddServer(id string) {
	for _, existing := range s.ServersHit {
		if existing == id {
			return
		}
	}
	s.ServersHit = append(s.ServersHit, id)
}

type TestSummary struct {
	TotalUsers         int    `json:"totalUsers"`
	TotalRequests      int    `json:"totalRequests"`
	SuccessfulRequests int    `json:"successfulRequests"`
	FailedRequests     int    `json:"failedRequests"`
	TotalDuration      int64  `json:"totalDuration"` // ms
	Timestamp          string `json:"timestamp"`
}

type ServerStat struct {
	Requests          int   `json:"requests"`
	TotalResponseTime int64 `json:"totalResponseTime"`
	Errors            int   `json:"errors"`
}

type BehaviorStat struct {
	Count         int     `json:"count"`
	TotalRequests int     `json:"totalRequests"`
	AvgDuration   float64 `json:"avgDuration"` // ms per session
}

// RunResult is the persisted outcome of one load test run.
type RunResult struct {
	RunID         string                    `json:"runId"`
	TestSummary   TestSummary               `json:"testSummary"`
	ServerStats   map[string]ServerStat     `json:"serverStats"`
	BehaviorStats map[Behavior]BehaviorStat `json:"behaviorStats"`
	UserSessions  []UserSession             `json:"userSessions"`
	Errors        []string                  `json:"errors"`
}
