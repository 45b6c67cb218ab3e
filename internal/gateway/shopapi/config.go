package shopapi

import "time"

// Config for the remote shop API.
type Config struct {
	BaseURL string        // e.g. http://localhost:8000/api
	Timeout time.Duration // per-request timeout enforced by the HTTP client
}
