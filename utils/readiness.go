package utils

import (
	"net/http"
	"time"

	"webup/flowup/domain"
)

// ReadinessCheck polls a URL until it answers with an accepted status
// code or the attempt budget is exhausted. Fixed-interval polling, no
// backoff: the target is a local container expected to open its port
// within a few minutes.
type ReadinessCheck struct {
	URL            string
	MaxAttempts    int
	Interval       time.Duration
	AcceptedStatus []int

	// Client may be replaced in tests; nil means a default client
	// with a short per-probe timeout.
	Client *http.Client
}

// NewReadinessCheck returns the standard check: 60 attempts, 5 seconds
// apart. 401 is accepted because the target enforces authentication:
// it proves the service is alive and guarding access.
func NewReadinessCheck(url string) ReadinessCheck {
	return ReadinessCheck{
		URL:            url,
		MaxAttempts:    60,
		Interval:       5 * time.Second,
		AcceptedStatus: []int{200, 302, 401},
	}
}

// Wait blocks until the target is ready. It returns the number of
// probes issued, and a ReadinessTimeoutError when the budget runs out.
// Connection failures and unaccepted statuses are both treated as
// not-yet-ready.
func (c ReadinessCheck) Wait() (int, error) {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		resp, err := client.Get(c.URL)
		if err == nil {
			status := resp.StatusCode
			resp.Body.Close()
			if c.accepted(status) {
				return attempt, nil
			}
		}

		if attempt < c.MaxAttempts {
			time.Sleep(c.Interval)
		}
	}

	return c.MaxAttempts, &domain.ReadinessTimeoutError{URL: c.URL, Attempts: c.MaxAttempts}
}

func (c ReadinessCheck) accepted(status int) bool {
	for _, s := range c.AcceptedStatus {
		if s == status {
			return true
		}
	}
	return false
}
