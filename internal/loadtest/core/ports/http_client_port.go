package ports

import (
	"context"

	"gallery-analytics-service/internal/loadtest/core/domain"
)

// HTTPClientPort issues one request. A non-nil error means the request did
// not complete (transport failure or timeout); HTTP error statuses are returned
// as responses.
type HTTPClientPort interface {
	Do(ctx context.Context, method, url string, headers map[string]string) (domain.HTTPResponse, error)
}
