package balldontlie

import "time"

const (
	providerName       = "balldontlie"
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 35
	defaultHTTPTimeout = 10 * time.Second
	// Upper bound on bodies read from error responses and detail lookups.
	maxBodyBytes  = 4 << 20
	maxErrorBytes = 512
)
