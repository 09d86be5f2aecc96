package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/praxis-dev/client/challenge"
)

// GenerateChallenges asks the backend to generate a fresh set of
// personalized challenges for the signed-in user.
func (c *Client) GenerateChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	var out []challenge.Challenge
	err := c.do(ctx, http.MethodPost, "/challenges/generate", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveChallenges lists the user's most recent active challenges.
// limit is clamped to the backend's accepted range 1..10.
func (c *Client) ActiveChallenges(ctx context.Context, limit int) ([]challenge.Challenge, error) {
	if limit < 1 {
		limit = 3
	}
	if limit > 10 {
		limit = 10
	}
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	var out []challenge.Challenge
	err := c.do(ctx, http.MethodGet, "/challenges/active", query, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Challenge fetches one challenge by ID.
func (c *Client) Challenge(ctx context.Context, id int) (challenge.Challenge, error) {
	var out challenge.Challenge
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/challenges/%d", id), nil, nil, &out)
	if err != nil {
		return challenge.Challenge{}, err
	}
	return out, nil
}
