package api

import (
	"context"
	"net/http"

	"github.com/praxis-dev/client/profile"
)

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (profile.Profile, error) {
	var out profile.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out); err != nil {
		return profile.Profile{}, err
	}
	return out, nil
}

// Attributes fetches the skill attributes for a profile.
func (c *Client) Attributes(ctx context.Context, profileID string) (profile.Attributes, error) {
	var out profile.Attributes
	if err := c.do(ctx, http.MethodGet, "/attributes/"+profileID, nil, nil, &out); err != nil {
		return profile.Attributes{}, err
	}
	return out, nil
}

// PatchAttributes partially updates a profile's attributes; nil fields
// in the patch are left untouched.
func (c *Client) PatchAttributes(ctx context.Context, profileID string, patch profile.AttributesPatch) (profile.Attributes, error) {
	var out profile.Attributes
	if err := c.do(ctx, http.MethodPatch, "/attributes/"+profileID, nil, patch, &out); err != nil {
		return profile.Attributes{}, err
	}
	return out, nil
}

// DeleteAccount permanently removes the signed-in user's account and
// signs the session out locally on success.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/account/delete", nil, nil, nil); err != nil {
		return err
	}
	return c.sess.SignOut()
}

// Health checks backend liveness. Unauthenticated.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil, nil)
}
