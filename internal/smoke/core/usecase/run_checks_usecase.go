package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ltdomain "gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"
	ltusecase "gallery-analytics-service/internal/loadtest/core/usecase"
	"gallery-analytics-service/internal/log"
	"gallery-analytics-service/internal/smoke/core/domain"
)

var ErrInvalidBaseURL = errors.New("base url must be an absolute http(s) url")

const (
	UserAgent      = "ExplorationTester/1.0"
	FrontendMarker = "Foreign Exploration Gallery"

	DefaultRetries = 30
	RetryInterval  = time.Second
	ReadyTimeout   = 2 * time.Second
	CheckTimeout   = 10 * time.Second

	LoadBalanceProbes = 10
	ProbeInterval     = 100 * time.Millisecond
)

type RunChecksUseCase struct {
	client  ports.HTTPClientPort
	sleeper ports.SleeperPort
	logger  log.Logger
	retries int
}

func NewRunChecksUseCase(client ports.HTTPClientPort, logger log.Logger) *RunChecksUseCase {
	return &RunChecksUseCase{client: client, sleeper: ltusecase.TimerSleeper{}, logger: logger, retries: DefaultRetries}
}

func (uc *RunChecksUseCase) WithSleeper(s ports.SleeperPort) *RunChecksUseCase {
	uc.sleeper = s
	return uc
}

func (uc *RunChecksUseCase) WithRetries(n int) *RunChecksUseCase {
	if n >= 0 {
		uc.retries = n
	}
	return uc
}

type healthBody struct {
	Status string `json:"status"`
	Server string `json:"server"`
}

// Execute waits for the target and then runs every check in order. Check
// failures are reported in the result, never returned as errors.
func (uc *RunChecksUseCase) Execute(ctx context.Context, baseURL string) (*domain.Report, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	base := strings.TrimRight(baseURL, "/")

	rep := &domain.Report{Ready: uc.waitReady(ctx, base)}
	if !rep.Ready {
		uc.logger.Warn("services may not be fully ready, proceeding with tests")
	}

	rep.Results = append(rep.Results,
		uc.checkHealth(ctx, base),
		uc.checkPhotos(ctx, base),
		uc.checkLoadBalancing(ctx, base),
		uc.checkFrontend(ctx, base),
	)
	return rep, nil
}

func (uc *RunChecksUseCase) get(ctx context.Context, target string, timeout time.Duration) (ltdomain.HTTPResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := uc.client.Do(reqCtx, http.MethodGet, target, map[string]string{"User-Agent": UserAgent})
	if err != nil {
		return resp, err
	}
	if resp.Status >= http.StatusBadRequest {
		return resp, fmt.Errorf("request failed with status %d", resp.Status)
	}
	return resp, nil
}

func (uc *RunChecksUseCase) waitReady(ctx context.Context, base string) bool {
	for attempt := 1; attempt <= uc.retries; attempt++ {
		resp, err := uc.get(ctx, base+"/api/health", ReadyTimeout)
		if err == nil && resp.Status == http.StatusOK {
			uc.logger.Info("services are ready")
			return true
		}
		uc.logger.Infof("attempt %d/%d - services not ready yet", attempt, uc.retries)
		if attempt < uc.retries {
			uc.sleeper.Sleep(ctx, RetryInterval)
		}
	}
	return false
}

func (uc *RunChecksUseCase) checkHealth(ctx context.Context, base string) domain.CheckResult {
	res := domain.CheckResult{Name: domain.CheckHealth}

	resp, err := uc.get(ctx, base+"/api/health", CheckTimeout)
	if err != nil {
		return fail(res, err)
	}

	var body healthBody
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.Status != "healthy" {
		res.Status = domain.StatusFail
		res.Detail = "invalid response format"
		return res
	}

	res.Status = domain.StatusPass
	res.Detail = "server: " + body.Server
	return res
}

func (uc *RunChecksUseCase) checkPhotos(ctx context.Context, base string) domain.CheckResult {
	res := domain.CheckResult{Name: domain.CheckPhotos}

	resp, err := uc.get(ctx, base+"/api/photos", CheckTimeout)
	if err != nil {
		return fail(res, err)
	}

	var photos []json.RawMessage
	if err := json.Unmarshal(resp.Body, &photos); err != nil || len(photos) == 0 {
		res.Status = domain.StatusFail
		res.Detail = "expected a non-empty photo array"
		return res
	}

	res.Status = domain.StatusPass
	res.Detail = fmt.Sprintf("found %d photos", len(photos))
	return res
}

func (uc *RunChecksUseCase) checkLoadBalancing(ctx context.Context, base string) domain.CheckResult {
	res := domain.CheckResult{Name: domain.CheckLoadBalancing}

	var servers []string
	seen := make(map[string]bool)
	for i := 0; i < LoadBalanceProbes; i++ {
		resp, err := uc.get(ctx, base+"/api/health", CheckTimeout)
		if err != nil {
			return fail(res, err)
		}
		var body healthBody
		if json.Unmarshal(resp.Body, &body) == nil && body.Server != "" && !seen[body.Server] {
			seen[body.Server] = true
			servers = append(servers, body.Server)
		}
		uc.sleeper.Sleep(ctx, ProbeInterval)
	}

	if len(servers) >= 2 {
		res.Status = domain.StatusPass
		res.Detail = "hit servers: " + strings.Join(servers, ", ")
	} else {
		res.Status = domain.StatusPartial
		res.Detail = "only hit: " + strings.Join(servers, ", ")
	}
	return res
}

func (uc *RunChecksUseCase) checkFrontend(ctx context.Context, base string) domain.CheckResult {
	res := domain.CheckResult{Name: domain.CheckFrontend}

	resp, err := uc.get(ctx, base+"/", CheckTimeout)
	if err != nil {
		return fail(res, err)
	}
	if !strings.Contains(string(resp.Body), FrontendMarker) {
		res.Status = domain.StatusFail
		res.Detail = "page does not mention " + FrontendMarker
		return res
	}

	res.Status = domain.StatusPass
	res.Detail = "frontend loading correctly"
	return res
}

func fail(res domain.CheckResult, err error) domain.CheckResult {
	res.Status = domain.StatusFail
	res.Err = err.Error()
	return res
}
