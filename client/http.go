// Package client wraps the EatWise service API in typed request/response
// calls and holds the session state the stores key their remote/local
// decisions on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"go.uber.org/zap"
)

// Session is the identity behind the held token.
type Session struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin is the capability predicate for the admin surfaces.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// Client is the HTTP implementation of Backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu      sync.RWMutex
	session *Session
	offline bool
	onAuth  []func(*Session)
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}
}

// SetOffline toggles offline mode; while set, Offline() gates every remote
// attempt in the stores.
func (c *Client) SetOffline(offline bool) {
	c.mu.Lock()
	c.offline = offline
	c.mu.Unlock()
}

func (c *Client) Offline() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offline
}

func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil
}

// Session returns a copy of the current session, nil when signed out.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// OnAuthChange registers a callback invoked after every sign-in and
// sign-out. The sync trigger hangs off this.
func (c *Client) OnAuthChange(fn func(*Session)) {
	c.mu.Lock()
	c.onAuth = append(c.onAuth, fn)
	c.mu.Unlock()
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.session = s
	callbacks := append(([]func(*Session))(nil), c.onAuth...)
	c.mu.Unlock()
	for _, fn := range callbacks {
		fn(s)
	}
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

// do runs one JSON round-trip. Transport failures map to
// KindNetworkUnavailable, HTTP failures to the kind of their status.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, Op: op, Err: err}
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Kind: KindUnknown, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetworkUnavailable, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &Error{
			Kind:    kindFromStatus(resp.StatusCode),
			Op:      op,
			Message: apiErr.Error,
		}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindUnknown, Op: op, Err: err}
		}
	}
	return nil
}

// ---- auth ----

func (c *Client) SignUp(ctx context.Context, email, password, displayName string) error {
	return c.do(ctx, "auth.register", http.MethodPost, "/auth/register", map[string]string{
		"email":        email,
		"password":     password,
		"display_name": displayName,
	}, nil)
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp Session
	err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setSession(&resp)
	return c.Session(), nil
}

// RestoreSession validates a stored token against the service and adopts it.
func (c *Client) RestoreSession(ctx context.Context, token string) (*Session, error) {
	probe := &Client{baseURL: c.baseURL, http: c.http, log: c.log, session: &Session{Token: token}}
	var resp Session
	if err := probe.do(ctx, "auth.session", http.MethodGet, "/auth/session", nil, &resp); err != nil {
		return nil, err
	}
	resp.Token = token
	c.setSession(&resp)
	return c.Session(), nil
}

// SignOut drops the session locally; tokens are stateless server-side.
func (c *Client) SignOut() {
	c.setSession(nil)
}

// ---- foods ----

func (c *Client) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := c.do(ctx, "foods.list", http.MethodGet, "/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *Client) InsertFood(ctx context.Context, food models.Food) (models.Food, error) {
	var out models.Food
	if err := c.do(ctx, "foods.insert", http.MethodPost, "/foods", food, &out); err != nil {
		return models.Food{}, err
	}
	return out, nil
}

func (c *Client) UpdateFood(ctx context.Context, id string, patch services.FoodPatch) (models.Food, error) {
	var out models.Food
	if err := c.do(ctx, "foods.update", http.MethodPut, "/foods/"+id, patch, &out); err != nil {
		return models.Food{}, err
	}
	return out, nil
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.do(ctx, "foods.delete", http.MethodDelete, "/foods/"+id, nil, nil)
}

// ---- daily log ----

func (c *Client) ListLogEntries(ctx context.Context, date string) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := c.do(ctx, "log.list", http.MethodGet, "/log?date="+date, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) InsertLogEntry(ctx context.Context, date string, mealType models.MealType, foodID string, quantity float64) (models.LogEntry, error) {
	var out models.LogEntry
	err := c.do(ctx, "log.insert", http.MethodPost, "/log", map[string]any{
		"date":      date,
		"meal_type": string(mealType),
		"food_id":   foodID,
		"quantity":  quantity,
	}, &out)
	if err != nil {
		return models.LogEntry{}, err
	}
	return out, nil
}

func (c *Client) DeleteLogEntry(ctx context.Context, id string) error {
	return c.do(ctx, "log.delete", http.MethodDelete, "/log/"+id, nil, nil)
}

// ---- profile & water ----

func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, "profile.get", http.MethodGet, "/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpsertProfile(ctx context.Context, input services.ProfileInput) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, "profile.upsert", http.MethodPut, "/profile", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) SuggestGoals(ctx context.Context) (*utils.GoalSuggestion, error) {
	var out utils.GoalSuggestion
	if err := c.do(ctx, "profile.suggest", http.MethodGet, "/profile/suggest-goals", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWater(ctx context.Context, date string) (float64, error) {
	var resp struct {
		Glasses float64 `json:"glasses"`
	}
	if err := c.do(ctx, "water.get", http.MethodGet, "/water?date="+date, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Glasses, nil
}

func (c *Client) SetWater(ctx context.Context, date string, glasses float64) error {
	return c.do(ctx, "water.set", http.MethodPut, "/water", map[string]any{
		"date":    date,
		"glasses": glasses,
	}, nil)
}

func (c *Client) DailyProgress(ctx context.Context, date string) (*services.Progress, error) {
	var out services.Progress
	if err := c.do(ctx, "analytics.progress", http.MethodGet, "/analytics/progress?date="+date, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Summary(ctx context.Context, from, to string) (*services.Summary, error) {
	var out services.Summary
	path := fmt.Sprintf("/analytics/summary?from=%s&to=%s", from, to)
	if err := c.do(ctx, "analytics.summary", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ Backend = (*Client)(nil)
