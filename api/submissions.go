package api

import (
	"context"
	"net/http"

	"github.com/praxis-dev/client/subm"
)

// CreateSubmission posts a completed challenge attempt and returns the
// backend's evaluation. The payload must already have passed
// subm.IsValid; this method only fills in the profile ID from the
// session before sending.
func (c *Client) CreateSubmission(ctx context.Context, s subm.Submission) (subm.Result, error) {
	if err := s.SubmittedCode.Check(); err != nil {
		return subm.Result{}, err
	}
	if claims, ok := c.sess.Claims(); ok {
		s.ProfileID = claims.UserID
	}
	var out subm.Result
	if err := c.do(ctx, http.MethodPost, "/submissions", nil, s, &out); err != nil {
		return subm.Result{}, err
	}
	return out, nil
}
