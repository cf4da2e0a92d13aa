// Package client talks to the authoritative game server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"alex/internal/alex"
)

const DefaultServer = "http://127.0.0.1:3001"

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: server returned %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Code, e.Body)
}

// Client keeps the last position it fetched. A failed fetch or decode never
// replaces it.
type Client struct {
	base string
	hc   *http.Client

	mu   sync.Mutex
	game string
	pos  *alex.Position
	etag string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithGame selects a game other than the server's default one.
func WithGame(id string) Option {
	return func(c *Client) { c.game = id }
}

func New(base string, opts ...Option) *Client {
	if base == "" {
		base = DefaultServer
	}
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Game() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game
}

// Position returns the cached position, nil before the first successful Board.
func (c *Client) Position() *alex.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

func (c *Client) url(path string) string {
	c.mu.Lock()
	game := c.game
	c.mu.Unlock()
	u := c.base + path
	if game != "" {
		u += "?game=" + url.QueryEscape(game)
	}
	return u
}

// Board fetches the authoritative position. An unchanged board (304) returns
// the cached position without decoding.
func (c *Client) Board(ctx context.Context) (*alex.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/board"), nil)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.pos != nil && c.etag != "" {
		req.Header.Set("If-None-Match", c.etag)
	}
	c.mu.Unlock()

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.pos != nil {
			return c.pos, nil
		}
		return nil, &StatusError{Op: "get board", Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "get board", Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	pos, err := alex.DecodePosition(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	c.mu.Lock()
	c.pos = pos
	c.etag = resp.Header.Get("ETag")
	c.mu.Unlock()
	return pos, nil
}

// Reset replaces the server's position.
func (c *Client) Reset(ctx context.Context, pos *alex.Position) error {
	return c.postJSON(ctx, "post board", "/api/board", map[string]string{"mfen": pos.Encode()}, nil)
}

// Move submits one move. The caller re-fetches the board afterwards.
func (c *Client) Move(ctx context.Context, m alex.Move) error {
	return c.postJSON(ctx, "post move", "/api/move", map[string]string{"mfen": m.String()}, nil)
}

// BestMove asks the server to think about pos for the given time.
func (c *Client) BestMove(ctx context.Context, pos *alex.Position, think time.Duration) (BestMove, error) {
	req := map[string]any{
		"mfen": pos.Encode(),
		"time": think.Seconds(),
	}
	var bm BestMove
	if err := c.postJSON(ctx, "post bestmove", "/api/bestmove", req, &bm); err != nil {
		return BestMove{}, err
	}
	return bm, nil
}

// NewGame creates a game on the server and switches the client to it.
func (c *Client) NewGame(ctx context.Context) (string, *alex.Position, error) {
	var resp struct {
		GameID string `json:"game_id"`
		MFEN   string `json:"mfen"`
	}
	if err := c.postJSON(ctx, "new game", "/api/new_game", struct{}{}, &resp); err != nil {
		return "", nil, err
	}
	pos, err := alex.DecodePosition(resp.MFEN)
	if err != nil {
		return "", nil, fmt.Errorf("new game: %w", err)
	}
	c.mu.Lock()
	c.game = resp.GameID
	c.pos = pos
	c.etag = ""
	c.mu.Unlock()
	return resp.GameID, pos, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}
