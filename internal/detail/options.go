package detail

import "time"

const (
	// DefaultPlayerImageURL and DefaultTeamImageURL are static header images for the detail views.
	DefaultPlayerImageURL = "https://t.ly/85IG3"
	DefaultTeamImageURL   = "https://t.ly/vxpnv"

	defaultPoolSize = 8
	minPoolSize     = 4
)

// Slot names passed to load hooks.
const (
	SlotPlayer = "player"
	SlotTeam   = "team"
)

// LoadHook observes every completed lookup, including ones later discarded as stale.
type LoadHook func(slot string, elapsed time.Duration, err error)

// Option configures a Store.
type Option func(*options)

type options struct {
	poolSize       int
	playerImageURL string
	teamImageURL   string
	hook           LoadHook
}

// WithPoolSize sets the number of workers running lookups. Values below 4 are raised to 4.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithImageURLs overrides the detail header images. Empty values keep the defaults.
func WithImageURLs(player, team string) Option {
	return func(o *options) {
		if player != "" {
			o.playerImageURL = player
		}
		if team != "" {
			o.teamImageURL = team
		}
	}
}

// WithLoadHook installs a callback invoked after each lookup completes.
func WithLoadHook(h LoadHook) Option {
	return func(o *options) {
		o.hook = h
	}
}
