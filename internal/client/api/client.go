// Package api is the console's HTTP client for the moderation REST API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrNotFound         = errors.New("record not found")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrTooLarge         = errors.New("response too large")
)

// maxBody bounds how much of a response is read.
var maxBody int64 = 8 << 20

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the API rooted at baseURL. A zero timeout
// means requests are bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type userDecision struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) ListAds(ctx context.Context) ([]models.Ad, error) {
	var out []models.Ad
	if err := c.do(ctx, http.MethodGet, "/ads", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyAd(ctx context.Context, id int64) (*models.Ad, error) {
	return c.decideAd(ctx, id, "verify")
}

func (c *Client) RejectAd(ctx context.Context, id int64) (*models.Ad, error) {
	return c.decideAd(ctx, id, "reject")
}

func (c *Client) decideAd(ctx context.Context, id int64, action string) (*models.Ad, error) {
	var ad models.Ad
	if err := c.do(ctx, http.MethodPut, "/ads/"+strconv.FormatInt(id, 10)+"/"+action, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyUser approves a user and returns the server's confirmation message.
func (c *Client) VerifyUser(ctx context.Context, id int64) (*models.User, string, error) {
	return c.decideUser(ctx, id, "verify")
}

// RejectUser rejects a user and returns the server's confirmation message.
func (c *Client) RejectUser(ctx context.Context, id int64) (*models.User, string, error) {
	return c.decideUser(ctx, id, "reject")
}

func (c *Client) decideUser(ctx context.Context, id int64, action string) (*models.User, string, error) {
	var d userDecision
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10)+"/"+action, &d); err != nil {
		return nil, "", err
	}
	return &d.User, d.Message, nil
}

// Ping checks that the server answers its health probe.
func (c *Client) Ping(ctx context.Context) error {
	var out map[string]string
	return c.do(ctx, http.MethodGet, "/ping", &out)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if int64(len(body)) > maxBody {
		return fmt.Errorf("%w: %s %s exceeds %d bytes", ErrTooLarge, method, path, maxBody)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message(body, resp.Status))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, message(body, resp.Status))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// message prefers the server's {"message": ...} text over the bare status.
func message(body []byte, status string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return eb.Message
	}
	return status
}
