package usecase

import (
	"math"
	"sort"
	"strings"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/analyzer/core/domain"
	loadtest "gallery-analytics-service/internal/loadtest/core/domain"
)

const (
	ExcellentDeviation = 5.0
	GoodDeviation      = 15.0

	MinSuccessRate      = 95.0
	GoodSuccessRate     = 90.0
	SlowResponseMS      = 1000.0
	AcceptableLatencyMS = 500.0

	TopJourneys      = 5
	JourneySeparator = " → "
)

// Analyze derives the report from a run and an optional snapshot. It never
// mutates its inputs.
func Analyze(run *loadtest.RunResult, snap *analytics.Snapshot) *domain.Report {
	rep := &domain.Report{
		RunID:           run.RunID,
		LoadBalancing:   loadBalancing(run),
		Endpoints:       endpoints(run),
		Journeys:        journeys(run),
		ServerSwitching: serverSwitching(run),
		LatencySeries:   latencySeries(run),
	}

	if n := run.TestSummary.TotalRequests; n > 0 {
		rep.SuccessRate = float64(run.TestSummary.SuccessfulRequests) / float64(n) * 100
	}
	if len(rep.LatencySeries) > 0 {
		var sum float64
		for _, v := range rep.LatencySeries {
			sum += v
		}
		rep.HasTimings = true
		rep.AvgResponseMS = sum / float64(len(rep.LatencySeries))
	}

	if snap != nil {
		rep.Impact = impact(run, snap, rep.SuccessRate)
	}

	rep.Recommendations = recommendations(rep)
	rep.Assessment = assess(rep)
	return rep
}

func loadBalancing(run *loadtest.RunResult) domain.LoadBalancing {
	hits := make(map[string]int)
	times := make(map[string]int64)
	for _, s := range run.UserSessions {
		for _, r := range s.Requests {
			if !r.Success || r.ServerID == loadtest.ServerUnknown {
				continue
			}
			hits[r.ServerID]++
			times[r.ServerID] += r.ResponseTime
		}
	}

	lb := domain.LoadBalancing{Tier: domain.TierNoData, Servers: []domain.ServerShare{}}
	if len(hits) == 0 {
		return lb
	}

	for _, n := range hits {
		lb.TotalHits += n
	}

	ideal := 100 / float64(len(hits))
	var deviation float64
	for id, n := range hits {
		share := float64(n) / float64(lb.TotalHits) * 100
		deviation += math.Abs(share - ideal)
		lb.Servers = append(lb.Servers, domain.ServerShare{
			ServerID:      id,
			Requests:      n,
			SharePercent:  share,
			AvgResponseMS: float64(times[id]) / float64(n),
		})
	}
	sort.Slice(lb.Servers, func(i, j int) bool { return lb.Servers[i].ServerID < lb.Servers[j].ServerID })

	lb.AvgDeviation = deviation / float64(len(hits))
	lb.Effectiveness = 100 - lb.AvgDeviation
	switch {
	case lb.AvgDeviation < ExcellentDeviation:
		lb.Tier = domain.TierExcellent
	case lb.AvgDeviation < GoodDeviation:
		lb.Tier = domain.TierGood
	default:
		lb.Tier = domain.TierPoor
	}
	return lb
}

func endpoints(run *loadtest.RunResult) []domain.EndpointStats {
	times := make(map[string][]int64)
	var order []string
	for _, s := range run.UserSessions {
		for _, r := range s.Requests {
			if !r.Success {
				continue
			}
			if _, ok := times[r.Path]; !ok {
				order = append(order, r.Path)
			}
			times[r.Path] = append(times[r.Path], r.ResponseTime)
		}
	}
	sort.Strings(order)

	out := make([]domain.EndpointStats, 0, len(order))
	for _, path := range order {
		ts := times[path]
		sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

		var sum int64
		for _, v := range ts {
			sum += v
		}
		out = append(out, domain.EndpointStats{
			Path:     path,
			Requests: len(ts),
			AvgMS:    float64(sum) / float64(len(ts)),
			MinMS:    ts[0],
			MaxMS:    ts[len(ts)-1],
			P95MS:    Percentile95(ts),
		})
	}
	return out
}

// Percentile95 returns sorted[floor(0.95*n)], clamped to the last element.
// sorted must be ascending and non-empty.
func Percentile95(sorted []int64) int64 {
	i := len(sorted) * 95 / 100
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

func journeys(run *loadtest.RunResult) []domain.Journey {
	counts := make(map[string]int)
	var order []string
	for _, s := range run.UserSessions {
		paths := make([]string, len(s.Requests))
		for i, r := range s.Requests {
			paths[i] = r.Path
		}
		key := strings.Join(paths, JourneySeparator)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]domain.Journey, 0, len(order))
	for _, key := range order {
		out = append(out, domain.Journey{Path: key, Users: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Users > out[j].Users })
	if len(out) > TopJourneys {
		out = out[:TopJourneys]
	}
	return out
}

func serverSwitching(run *loadtest.RunResult) domain.ServerSwitching {
	sw := domain.ServerSwitching{TotalUsers: run.TestSummary.TotalUsers}
	switches := 0
	for _, s := range run.UserSessions {
		if n := len(s.ServersHit); n > 1 {
			sw.Users++
			switches += n - 1
		}
	}
	if sw.Users > 0 {
		sw.AvgSwitches = float64(switches) / float64(sw.Users)
	}
	return sw
}

func latencySeries(run *loadtest.RunResult) []float64 {
	var ok []loadtest.RequestOutcome
	for _, s := range run.UserSessions {
		for _, r := range s.Requests {
			if r.Success {
				ok = append(ok, r)
			}
		}
	}
	sort.SliceStable(ok, func(i, j int) bool { return ok[i].Timestamp < ok[j].Timestamp })

	series := make([]float64, len(ok))
	for i, r := range ok {
		series[i] = float64(r.ResponseTime)
	}
	return series
}

func impact(run *loadtest.RunResult, snap *analytics.Snapshot, successRate float64) *domain.Impact {
	im := &domain.Impact{
		PageViews:        snap.Overview.TotalPageViews,
		TotalRequests:    snap.Overview.TotalRequests,
		UniqueVisitors:   snap.Overview.UniqueVisitors,
		ActiveSessions:   snap.ActiveSessions,
		MostViewedPhotos: snap.PhotoStats.MostViewedPhotos,
		SuccessRate:      successRate,
	}
	if d := run.TestSummary.TotalDuration; d > 0 {
		im.RequestsPerSecond = float64(run.TestSummary.TotalRequests) / (float64(d) / 1000)
	}
	return im
}

func recommendations(rep *domain.Report) []domain.Recommendation {
	var recs []domain.Recommendation

	if rep.SuccessRate < MinSuccessRate {
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityAction, Message: "Investigate failed requests - success rate is below 95%"})
	} else {
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityOK, Message: "Excellent success rate - system handled load well"})
	}

	switch {
	case !rep.HasTimings:
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityAction, Message: "No successful requests to time - check that the target is serving traffic"})
	case rep.AvgResponseMS > SlowResponseMS:
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityAction, Message: "Consider optimizing response times - average is above 1 second"})
	case rep.AvgResponseMS > AcceptableLatencyMS:
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityNotice, Message: "Good response times, but could be optimized further"})
	default:
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityOK, Message: "Excellent response times - under 500ms average"})
	}

	if len(rep.LoadBalancing.Servers) >= 2 {
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityOK, Message: "Load balancing is working - multiple servers detected"})
	} else {
		recs = append(recs, domain.Recommendation{Severity: domain.SeverityNotice, Message: "Only one server detected - check load balancer configuration"})
	}

	return recs
}

func assess(rep *domain.Report) domain.Assessment {
	switch {
	case !rep.HasTimings:
		return domain.AssessmentNeedsAttention
	case rep.SuccessRate >= MinSuccessRate && rep.AvgResponseMS <= AcceptableLatencyMS && len(rep.LoadBalancing.Servers) >= 2:
		return domain.AssessmentExcellent
	case rep.SuccessRate >= GoodSuccessRate && rep.AvgResponseMS <= SlowResponseMS:
		return domain.AssessmentGood
	default:
		return domain.AssessmentNeedsAttention
	}
}
