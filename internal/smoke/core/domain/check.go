package domain

type Status string

const (
	StatusPass    Status = "PASS"
	StatusPartial Status = "PARTIAL"
	StatusFail    Status = "FAIL"
)

const (
	CheckHealth        = "Health Endpoint"
	CheckPhotos        = "Photos API"
	CheckLoadBalancing = "Load Balancing"
	CheckFrontend      = "Frontend"
)

type CheckResult struct {
	Name   string
	Status Status
	Detail string
	Err    string
}

type Report struct {
	// Ready is false when the target never answered the readiness probe;
	// the checks still run.
	Ready   bool
	Results []CheckResult
}

func (r *Report) Passed() int {
	n := 0
	for _, c := range r.Results {
		if c.Status == StatusPass {
			n++
		}
	}
	return n
}

// AllPassed is false when any check is PARTIAL or FAIL.
func (r *Report) AllPassed() bool {
	return len(r.Results) > 0 && r.Passed() == len(r.Results)
}
