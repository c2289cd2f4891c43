// Package linkprobe checks that the reference links configured for a site
// (spot page, webcam, wind station) actually resolve. Probing runs once at
// startup; a dead webcam link should show up in the logs, not in a report a
// renderer has already shipped.
package linkprobe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	errUnexpectedStatus = errors.New("unexpected status code")
	errCircuitOpen      = errors.New("circuit breaker open")
)

// Prober issues HEAD requests with retries, exponential backoff, and a
// circuit breaker shared across links, so one dead host does not stall the
// whole probe pass.
type Prober struct {
	client          *http.Client
	breaker         *gobreaker.CircuitBreaker
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// New creates a Prober around the given client. Pass nil for a default
// client; the caller sets the timeout via the client.
func New(client *http.Client) *Prober {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Prober{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "linkprobe",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
		}),
		maxRetries:      2,
		initialInterval: 200 * time.Millisecond,
		maxInterval:     2 * time.Second,
	}
}

// Check probes a single URL with HEAD. Any 2xx or 3xx status counts as
// reachable; redirects are fine because windguru and webcam hosts bounce
// through them routinely.
func (p *Prober) Check(ctx context.Context, rawURL string) error {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
		if err != nil {
			return fmt.Errorf("build probe request: %w", err)
		}

		_, err = p.breaker.Execute(func() (interface{}, error) {
			resp, execErr := p.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			resp.Body.Close()

			if resp.StatusCode >= 200 && resp.StatusCode < 400 {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		})
		if err == nil {
			return nil
		}

		// An open circuit means the host is already known dead; stop retrying.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= p.maxRetries {
			return lastErr
		}

		delay := p.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > p.maxInterval {
			delay = p.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
