// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/forkify/internal/bookmarks"
	"github.com/pdiddy/forkify/internal/browser"
	"github.com/pdiddy/forkify/internal/forkify"
	"github.com/pdiddy/forkify/internal/secrets"
	"github.com/pdiddy/forkify/pkg/types"
)

// defaultDBPath is the bookmark database location when none is configured.
const defaultDBPath = "~/.local/share/forkify/forkify.db"

// configure registers defaults and environment lookup. FORKIFY_API_KEY
// maps to api.key, FORKIFY_BROWSER_PAGE_SIZE to browser.page_size, and so on.
func configure(v *viper.Viper) {
	v.SetDefault("api.url", types.DefaultAPIURL)
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", types.DefaultTimeout)
	v.SetDefault("api.user_agent", types.DefaultUserAgent+" ("+version+")")
	v.SetDefault("api.rate_limit", 0.0)
	v.SetDefault("browser.page_size", types.DefaultPageSize)
	v.SetDefault("browser.dismiss_delay", types.DefaultDismissDelay)
	v.SetDefault("bookmarks.path", defaultDBPath)

	v.SetEnvPrefix("FORKIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// buildConfig collects settings from v. The API key falls back to the
// secrets directory when neither config nor environment sets it.
func buildConfig(v *viper.Viper, s secrets.Secrets) types.Config {
	return types.Config{
		API: types.APIConfig{
			URL:       v.GetString("api.url"),
			Key:       s.Default(secrets.APIKeyName, v.GetString("api.key")),
			Timeout:   v.GetDuration("api.timeout"),
			UserAgent: v.GetString("api.user_agent"),
			RateLimit: v.GetFloat64("api.rate_limit"),
		},
		Browser: types.BrowserConfig{
			PageSize:     v.GetInt("browser.page_size"),
			DismissDelay: v.GetDuration("browser.dismiss_delay"),
		},
		Bookmarks: types.BookmarksConfig{
			Path: expandHome(v.GetString("bookmarks.path")),
		},
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path == "" {
		path = defaultDBPath
	}
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func currentConfig() types.Config {
	return buildConfig(viper.GetViper(), loadedSecrets)
}

func newClient(cfg types.Config) *forkify.Client {
	return forkify.NewClient(cfg.API, logger.Named("api"))
}

// openBookmarks opens the bookmark database. The caller closes the store.
func openBookmarks(ctx context.Context, cfg types.Config) (*bookmarks.Bookmarks, *bookmarks.SQLiteStore, error) {
	store, err := bookmarks.OpenSQLite(cfg.Bookmarks.Path)
	if err != nil {
		return nil, nil, err
	}
	bm, err := bookmarks.Open(ctx, store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return bm, store, nil
}

// openApp wires a browser.App over the API client and bookmark database.
func openApp(ctx context.Context, cfg types.Config) (*browser.App, *bookmarks.SQLiteStore, error) {
	bm, store, err := openBookmarks(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return browser.New(newClient(cfg), bm, cfg.Browser, logger), store, nil
}
