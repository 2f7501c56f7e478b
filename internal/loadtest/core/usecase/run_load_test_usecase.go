package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"
	"gallery-analytics-service/internal/log"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserCount  = errors.New("total users must be at least 1")
	ErrInvalidBaseURL    = errors.New("base url must be an absolute http(s) url")
	ErrTargetUnreachable = errors.New("target unreachable")
)

const (
	DefaultRequestTimeout = 10 * time.Second

	HealthPath    = "/api/health"
	AnalyticsPath = "/api/analytics"

	LoadTestHeader = "X-Load-Test"
)

type RunInput struct {
	TotalUsers int
	BaseURL    string
	// Seed makes behaviour choice and think times reproducible. Zero uses the clock.
	Seed uint64
}

// RunReport is a finished run plus the analytics snapshot fetched after it.
// SnapshotErr is set when the snapshot could not be fetched or stored; it
// never fails the run.
type RunReport struct {
	Result      *domain.RunResult
	Snapshot    *analytics.Snapshot
	SnapshotErr error
}

type RunLoadTestUseCase struct {
	client    ports.HTTPClientPort
	results   ports.ResultStorePort
	snapshots ports.SnapshotStorePort
	sleeper   ports.SleeperPort
	progress  ports.ProgressPort
	logger    log.Logger

	timeout time.Duration
	now     func() time.Time
	newID   func() string
}

func NewRunLoadTestUseCase(
	client ports.HTTPClientPort,
	results ports.ResultStorePort,
	snapshots ports.SnapshotStorePort,
	logger log.Logger,
) *RunLoadTestUseCase {
	return &RunLoadTestUseCase{
		client:    client,
		results:   results,
		snapshots: snapshots,
		sleeper:   TimerSleeper{},
		progress:  noProgress{},
		logger:    logger,
		timeout:   DefaultRequestTimeout,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (uc *RunLoadTestUseCase) WithSleeper(s ports.SleeperPort) *RunLoadTestUseCase {
	uc.sleeper = s
	return uc
}

func (uc *RunLoadTestUseCase) WithProgress(p ports.ProgressPort) *RunLoadTestUseCase {
	uc.progress = p
	return uc
}

func (uc *RunLoadTestUseCase) WithTimeout(d time.Duration) *RunLoadTestUseCase {
	if d > 0 {
		uc.timeout = d
	}
	return uc
}

func (uc *RunLoadTestUseCase) WithClock(now func() time.Time) *RunLoadTestUseCase {
	uc.now = now
	return uc
}

// Execute runs every simulated user concurrently, waits for all of them to
// settle and persists the result. Only invalid input, an unreachable target or
// a failed save are returned as errors.
func (uc *RunLoadTestUseCase) Execute(ctx context.Context, in RunInput) (*RunReport, error) {
	if in.TotalUsers < 1 {
		return nil, ErrInvalidUserCount
	}
	base, err := normalizeBaseURL(in.BaseURL)
	if err != nil {
		return nil, err
	}

	if err := uc.preflight(ctx, base); err != nil {
		return nil, err
	}

	seed := in.Seed
	start := uc.now()
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	uc.logger.Infof("starting load test: %d users against %s", in.TotalUsers, base)

	sessions := make([]domain.UserSession, in.TotalUsers)
	uc.progress.Start(in.TotalUsers)

	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer uc.progress.Increment()

			rng := rand.New(rand.NewPCG(seed, uint64(i+1)))
			behavior := domain.Behaviors[rng.IntN(len(domain.Behaviors))]
			sessions[i] = uc.simulateUser(ctx, base, i+1, behavior, rng)
		}(i)
	}
	wg.Wait()

	uc.progress.Stop()
	end := uc.now()

	run := BuildRunResult(uc.newID(), sessions, end.Sub(start), end)
	if err := uc.results.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("save run %s: %w", run.RunID, err)
	}
	uc.logger.Infof("run %s saved: %d requests, %d failed", run.RunID, run.TestSummary.TotalRequests, run.TestSummary.FailedRequests)

	report := &RunReport{Result: run}

	snap, err := uc.fetchSnapshot(ctx, base)
	if err != nil {
		uc.logger.Warnf("failed to fetch analytics: %v", err)
		report.SnapshotErr = err
		return report, nil
	}
	report.Snapshot = snap

	if err := uc.snapshots.SaveSnapshot(ctx, run.RunID, snap); err != nil {
		uc.logger.Warnf("failed to save analytics snapshot: %v", err)
		report.SnapshotErr = err
	}

	return report, nil
}

func (uc *RunLoadTestUseCase) preflight(ctx context.Context, base string) error {
	reqCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if _, err := uc.client.Do(reqCtx, http.MethodGet, base+HealthPath, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTargetUnreachable, base, err)
	}
	return nil
}

func (uc *RunLoadTestUseCase) fetchSnapshot(ctx context.Context, base string) (*analytics.Snapshot, error) {
	reqCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	resp, err := uc.client.Do(reqCtx, http.MethodGet, base+AnalyticsPath, nil)
	if err != nil {
		return nil, err
	}
	if resp.Status >= http.StatusBadRequest {
		return nil, fmt.Errorf("analytics returned status %d", resp.Status)
	}

	var snap analytics.Snapshot
	if err := json.Unmarshal(resp.Body, &snap); err != nil {
		return nil, fmt.Errorf("decode analytics: %w", err)
	}
	return &snap, nil
}

func (uc *RunLoadTestUseCase) simulateUser(ctx context.Context, base string, userID int, behavior domain.Behavior, rng *rand.Rand) domain.UserSession {
	session := domain.UserSession{
		UserID:     userID,
		Behavior:   behavior,
		StartTime:  uc.now().UnixMilli(),
		Requests:   []domain.RequestOutcome{},
		ServersHit: []string{},
		Errors:     []string{},
	}

	u := &userRun{ctx: ctx, uc: uc, base: base, session: &session, rng: rng}
	scripts[behavior](u)

	session.EndTime = uc.now().UnixMilli()
	session.Duration = session.EndTime - session.StartTime
	return session
}

// makeRequest issues one scripted call and appends its outcome to the session.
// It never returns an error: failures are recorded on the outcome.
func (uc *RunLoadTestUseCase) makeRequest(ctx context.Context, base string, session *domain.UserSession, method, path, description string) domain.RequestOutcome {
	reqCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	headers := map[string]string{
		"User-Agent":   fmt.Sprintf("LoadTester-User-%d", session.UserID),
		LoadTestHeader: "true",
	}

	start := uc.now()
	resp, err := uc.client.Do(reqCtx, method, base+path, headers)
	elapsed := uc.now().Sub(start)

	out := domain.RequestOutcome{
		Method:       method,
		Path:         path,
		Description:  description,
		ResponseTime: elapsed.Milliseconds(),
		Timestamp:    start.UnixMilli(),
	}

	switch {
	case err != nil:
		out.ServerID = domain.ServerError
		out.Error = err.Error()
	case resp.Status >= http.StatusBadRequest:
		out.Status = resp.Status
		out.ServerID = domain.ServerError
		out.Error = fmt.Sprintf("request failed with status code %d", resp.Status)
	default:
		out.Status = resp.Status
		out.Success = true
		out.ServerID = serverFromBody(resp.Body)
		if out.ServerID != domain.ServerUnknown {
			session.AddServer(out.ServerID)
		}
	}

	if !out.Success {
		session.Errors = append(session.Errors, out.Error)
	}
	session.Requests = append(session.Requests, out)
	return out
}

// serverFromBody reads the "server" field of a JSON object body.
func serverFromBody(body []byte) string {
	var probe struct {
		Server string `json:"server"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.Server == "" {
		return domain.ServerUnknown
	}
	return probe.Server
}

func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// TimerSleeper sleeps for d or until ctx is done, whichever comes first.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

type noProgress struct{}

func (noProgress) Start(int)  {}
func (noProgress) Increment() {}
func (noProgress) Stop()      {}
