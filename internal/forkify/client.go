// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package forkify is the client for the recipe API: search by free text,
// fetch one recipe by identifier, and upload a new recipe.
package forkify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/forkify/internal/httputil"
	"github.com/pdiddy/forkify/internal/transform"
	"github.com/pdiddy/forkify/pkg/types"
)

// ErrNoResults is returned by Search when the API finds no recipes. An
// empty search is a failure, not an empty success.
var ErrNoResults = errors.New("No recipes found for your search query. Try again :)")

// APIError is a non-2xx response. Message holds the server's "message"
// field when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Something went wrong with fetching data (HTTP %d)", e.StatusCode)
}

// Client talks to the recipe API.
type Client struct {
	HTTP   *http.Client
	Config types.APIConfig
	Logger *zap.Logger

	limiter *rate.Limiter
}

// NewClient returns a client for cfg, filling in defaults for empty fields.
func NewClient(cfg types.APIConfig, logger *zap.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = types.DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = types.DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		HTTP:   &http.Client{},
		Config: cfg,
		Logger: logger,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(math.Ceil(cfg.RateLimit))))
	}
	return c
}

// Search returns the recipe summaries matching query. The request races the
// configured timeout.
func (c *Client) Search(ctx context.Context, query string) ([]types.Recipe, error) {
	params := url.Values{"search": {query}}
	return httputil.Race(ctx, c.Config.Timeout, func(ctx context.Context) ([]types.Recipe, error) {
		var body searchResponse
		if err := c.do(ctx, http.MethodGet, c.endpoint("", params), nil, &body); err != nil {
			return nil, err
		}
		if len(body.Data.Recipes) == 0 {
			return nil, ErrNoResults
		}
		recipes, err := transform.DecodeRecipes(body.Data.Recipes)
		if err != nil {
			return nil, fmt.Errorf("parsing search results: %w", err)
		}
		return recipes, nil
	})
}

// Recipe fetches the full record for id. The request races the configured
// timeout.
func (c *Client) Recipe(ctx context.Context, id string) (types.Recipe, error) {
	if id == "" {
		return types.Recipe{}, fmt.Errorf("recipe id is empty")
	}
	return httputil.Race(ctx, c.Config.Timeout, func(ctx context.Context) (types.Recipe, error) {
		var body recipeResponse
		if err := c.do(ctx, http.MethodGet, c.endpoint(url.PathEscape(id), nil), nil, &body); err != nil {
			return types.Recipe{}, err
		}
		return decodeRecipeBody(body)
	})
}

// Upload posts a new recipe and returns the stored record, which carries
// the assigned id and the user-generated key.
func (c *Client) Upload(ctx context.Context, r types.NewRecipe) (types.Recipe, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("encoding recipe: %w", err)
	}
	var body recipeResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("", nil), payload, &body); err != nil {
		return types.Recipe{}, err
	}
	return decodeRecipeBody(body)
}

func decodeRecipeBody(body recipeResponse) (types.Recipe, error) {
	if body.Data.Recipe == nil {
		return types.Recipe{}, fmt.Errorf("response has no recipe")
	}
	r, err := transform.DecodeRecipe(body.Data.Recipe)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("parsing recipe: %w", err)
	}
	return r, nil
}

// endpoint builds {URL}[/{path}]?{params}&key={Key}.
func (c *Client) endpoint(path string, params url.Values) string {
	u := c.Config.URL
	if path != "" {
		u += "/" + path
	}
	if params == nil {
		params = url.Values{}
	}
	if c.Config.Key != "" {
		params.Set("key", c.Config.Key)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// do sends one request and decodes the JSON body into out. Non-2xx
// responses become *APIError.
func (c *Client) do(ctx context.Context, method, reqURL string, payload []byte, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for rate limit: %w", err)
		}
	}
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.Config.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.Logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", redactKey(reqURL)),
	)
	start := time.Now()
	log.Debug("request started")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return fmt.Errorf("recipe API request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorResponse
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = eb.Message
		}
		log.Warn("recipe API error", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// redactKey hides the API key in logged URLs.
func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Recipe API JSON structures.
type searchResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    struct {
		Recipes []map[string]any `json:"recipes"`
	} `json:"data"`
}

type recipeResponse struct {
	Status string `json:"status"`
	Data   struct {
		Recipe map[string]any `json:"recipe"`
	} `json:"data"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
