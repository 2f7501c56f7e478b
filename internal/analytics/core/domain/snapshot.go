package domain

// Snapshot is the read-only report served by GET /api/analytics.
// The JSON layout is consumed by the dashboard and by the load test analyzer.
type Snapshot struct {
	Overview       Overview        `json:"overview"`
	PhotoStats     PhotoStats      `json:"photoStats"`
	DailyStats     []DailyStat     `json:"dailyStats"`
	TopUserAgents  []AgentCount    `json:"topUserAgents"`
	TopReferrers   []ReferrerCount `json:"topReferrers"`
	ActiveSessions int             `json:"activeSessions"`
}

type Overview struct {
	TotalPageViews int64  `json:"totalPageViews"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
	TotalRequests  int64  `json:"totalRequests"`
	ServerUptime   int64  `json:"serverUptime"`
	ServerID       string `json:"serverId"`
}

type PhotoStats struct {
	TotalPhotoViews  int64        `json:"totalPhotoViews"`
	MostViewedPhotos []PhotoViews `json:"mostViewedPhotos"`
}

type PhotoViews struct {
	Title string `json:"title"`
	Views int64  `json:"views"`
}

type DailyStat struct {
	Date           string `json:"date"`
	Requests       int64  `json:"requests"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
}

type AgentCount struct {
	Agent string `json:"agent"`
	Count int64  `json:"count"`
}

type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// SimulatedSnapshot is randomly generated demo data. It is always labelled
// with Simulated=true and never built from live counters.
type SimulatedSnapshot struct {
	Overview       SimulatedOverview `json:"overview"`
	PhotoStats     PhotoStats        `json:"photoStats"`
	DailyStats     []DailyStat       `json:"dailyStats"`
	TopUserAgents  []AgentCount      `json:"topUserAgents"`
	TopReferrers   []ReferrerCount   `json:"topReferrers"`
	TopCountries   []CountryCount    `json:"topCountries"`
	RealTimeData   RealTimeData      `json:"realTimeData"`
	ActiveSessions int               `json:"activeSessions"`
	Simulated      bool              `json:"simulated"`
}

type SimulatedOverview struct {
	Overview
	Platform string `json:"platform"`
	Region   string `json:"region"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type RealTimeData struct {
	CurrentVisitors        int64 `json:"currentVisitors"`
	RequestsPerMinute      int64 `json:"requestsPerMinute"`
	AverageSessionDuration int64 `json:"averageSessionDuration"`
	BounceRate             int64 `json:"bounceRate"`
}
