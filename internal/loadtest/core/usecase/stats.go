package usecase

import (
	"fmt"
	"time"

	"gallery-analytics-service/internal/loadtest/core/domain"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// BuildRunResult aggregates settled sessions. Failed requests are grouped
// under the "error" server entry.
func BuildRunResult(runID string, sessions []domain.UserSession, total time.Duration, finished time.Time) *domain.RunResult {
	run := &domain.RunResult{
		RunID:         runID,
		ServerStats:   make(map[string]domain.ServerStat),
		BehaviorStats: make(map[domain.Behavior]domain.BehaviorStat),
		UserSessions:  sessions,
		Errors:        []string{},
	}

	durations := make(map[domain.Behavior]int64)

	for _, s := range sessions {
		for _, r := range s.Requests {
			run.TestSummary.TotalRequests++

			stat := run.ServerStats[r.ServerID]
			stat.Requests++
			stat.TotalResponseTime += r.ResponseTime
			if r.Success {
				run.TestSummary.SuccessfulRequests++
			} else {
				stat.Errors++
			}
			run.ServerStats[r.ServerID] = stat
		}

		for _, e := range s.Errors {
			run.Errors = append(run.Errors, fmt.Sprintf("User %d: %s", s.UserID, e))
		}

		b := run.BehaviorStats[s.Behavior]
		b.Count++
		b.TotalRequests += len(s.Requests)
		run.BehaviorStats[s.Behavior] = b
		durations[s.Behavior] += s.Duration
	}

	for behavior, b := range run.BehaviorStats {
		b.AvgDuration = float64(durations[behavior]) / float64(b.Count)
		run.BehaviorStats[behavior] = b
	}

	run.TestSummary.TotalUsers = len(sessions)
	run.TestSummary.FailedRequests = run.TestSummary.TotalRequests - run.TestSummary.SuccessfulRequests
	run.TestSummary.TotalDuration = total.Milliseconds()
	run.TestSummary.Timestamp = finished.UTC().Format(timestampLayout)

	return run
}

// Summary is the console view of a run.
type Summary struct {
	Duration       time.Duration
	TotalUsers     int
	TotalRequests  int
	Successful     int
	Failed         int
	SuccessPercent float64
	FailedPercent  float64

	// Response times of successful requests, ms. Valid only when HasTimings.
	HasTimings bool
	AvgMS      float64
	MinMS      int64
	MaxMS      int64
}

func Summarize(run *domain.RunResult) Summary {
	s := Summary{
		Duration:      time.Duration(run.TestSummary.TotalDuration) * time.Millisecond,
		TotalUsers:    run.TestSummary.TotalUsers,
		TotalRequests: run.TestSummary.TotalRequests,
		Successful:    run.TestSummary.SuccessfulRequests,
		Failed:        run.TestSummary.FailedRequests,
	}
	if s.TotalRequests > 0 {
		s.SuccessPercent = float64(s.Successful) / float64(s.TotalRequests) * 100
		s.FailedPercent = float64(s.Failed) / float64(s.TotalRequests) * 100
	}

	var sum, n int64
	for _, session := range run.UserSessions {
		for _, r := range session.Requests {
			if !r.Success {
				continue
			}
			if n == 0 || r.ResponseTime < s.MinMS {
				s.MinMS = r.ResponseTime
			}
			if r.ResponseTime > s.MaxMS {
				s.MaxMS = r.ResponseTime
			}
			sum += r.ResponseTime
			n++
		}
	}
	if n > 0 {
		s.HasTimings = true
		s.AvgMS = float64(sum) / float64(n)
	}
	return s
}
