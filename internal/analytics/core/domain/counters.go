package domain

import "time"

// Count is one entry of an insertion-ordered counter.
type Count struct {
	Key   string
	Count int64
}

type DailyBucket struct {
	Date           string
	Requests       int64
	UniqueVisitors int64
}

// CounterState is a copy of every live counter, taken for one snapshot.
// Each component is copied consistently, but totals of different components
// may come from slightly different instants.
type CounterState struct {
	PageViews      int64
	UniqueVisitors int64
	TotalRequests  int64

	PhotoViewsByID    []Count
	PhotoViewsByTitle []Count

	Daily      []DailyBucket
	UserAgents []Count
	Referrers  []Count

	ActiveSessions int
}

// ServerInfo identifies the process that owns the counters.
type ServerInfo struct {
	ServerID  string
	StartedAt time.Time
}
