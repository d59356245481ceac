package types

import "time"

// APIConfig holds settings for talking to the recipe API.
type APIConfig struct {
	// URL is the recipes collection endpoint; search and upload hit it
	// directly and recipe lookups append "/{id}".
	URL string `json:"url" yaml:"url"`

	// Key is the API key sent as the "key" query parameter. Uploaded
	// recipes are tagged with it.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Timeout bounds each search and recipe request (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RateLimit caps requests per second across all calls made by one
	// client. Zero means unlimited.
	RateLimit float64 `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
}

// BrowserConfig holds settings for the browser components.
type BrowserConfig struct {
	// PageSize is the number of search results per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// DismissDelay is how long the upload success message stays before
	// the form closes (default 3s).
	DismissDelay time.Duration `json:"dismiss_delay" yaml:"dismiss_delay"`
}

// BookmarksConfig holds settings for bookmark persistence.
type BookmarksConfig struct {
	// Path is the sqlite database file holding the bookmark list.
	Path string `json:"path" yaml:"path"`
}

// Config groups all client settings.
type Config struct {
	API       APIConfig       `json:"api" yaml:"api"`
	Browser   BrowserConfig   `json:"browser" yaml:"browser"`
	Bookmarks BookmarksConfig `json:"bookmarks" yaml:"bookmarks"`
}

// Defaults.
const (
	DefaultAPIURL       = "https://forkify-api.herokuapp.com/api/v2/recipes"
	DefaultTimeout      = 10 * time.Second
	DefaultUserAgent    = "forkify/0.1"
	DefaultPageSize     = 10
	DefaultDismissDelay = 3 * time.Second
)
