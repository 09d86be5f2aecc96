package uimsg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxis-dev/client/api"
	"github.com/praxis-dev/client/uimsg"
)

func TestForErrorAuthContext(t *testing.T) {
	testCases := []struct {
		name string
		err  string
		want string
	}{
		{"invalid credentials", "Invalid login credentials", uimsg.MsgBadLogin},
		{"email not confirmed", "Email not confirmed", uimsg.MsgConfirmEmail},
		{"already registered", "User already registered", uimsg.MsgDuplicateAccount},
		{"invalid email", "Unable to validate email address: invalid format", uimsg.MsgInvalidEmail},
		{"weak password", "Password should be at least 6 characters", uimsg.MsgPasswordMin},
		{"expired session", "JWT expired", uimsg.MsgSessionExpired},
		{"invalid token", "Invalid token: token has invalid claims", uimsg.MsgRequestNewLink},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uimsg.ForError(errors.New(tc.err), uimsg.CtxAuth))
		})
	}
}

func TestForErrorContextTables(t *testing.T) {
	testCases := []struct {
		name string
		err  string
		ctx  uimsg.Context
		want string
	}{
		{"challenge not found", "Desafio não encontrado", uimsg.CtxChallenge, uimsg.MsgChallengeNotFound},
		{"challenge 404", "HTTP error: 404", uimsg.CtxChallenge, uimsg.MsgChallengeNotFound},
		{"challenge expired", "challenge expired", uimsg.CtxChallenge, uimsg.MsgChallengeExpired},
		{"challenge done", "challenge already completed", uimsg.CtxChallenge, uimsg.MsgChallengeCompleted},
		{"submission empty", "field is required", uimsg.CtxSubmission, uimsg.MsgFillFields},
		{"submission too long", "content exceeds maximum length", uimsg.CtxSubmission, uimsg.MsgTooLong},
		{"submission rate", "too many requests", uimsg.CtxSubmission, uimsg.MsgSlowDown},
		{"validation email", "email format check failed", uimsg.CtxValidation, uimsg.MsgInvalidEmail},
		{"validation password", "password too simple", uimsg.CtxValidation, uimsg.MsgPasswordMin},
		{"validation required", "name is required", uimsg.CtxValidation, uimsg.MsgFillFields},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uimsg.ForError(errors.New(tc.err), tc.ctx))
		})
	}
}

func TestForErrorGenericFallbacks(t *testing.T) {
	assert.Equal(t, uimsg.MsgConnectivity,
		uimsg.ForError(errors.New("Failed to fetch"), uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgServerError,
		uimsg.ForError(errors.New("HTTP error: 500"), uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgUnavailable,
		uimsg.ForError(errors.New("HTTP error: 503"), uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgNoPermission,
		uimsg.ForError(errors.New("401 unauthorized"), uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgUnexpected,
		uimsg.ForError(errors.New("something weird"), uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgUnexpected, uimsg.ForError(nil, uimsg.CtxGeneral))
}

// Context rules win over generic fallbacks even when both match.
func TestForErrorContextPrecedence(t *testing.T) {
	err := errors.New("Invalid login credentials (401 unauthorized)")
	assert.Equal(t, uimsg.MsgBadLogin, uimsg.ForError(err, uimsg.CtxAuth))
	assert.Equal(t, uimsg.MsgNoPermission, uimsg.ForError(err, uimsg.CtxGeneral))
}

// Typed API errors are classified by kind, not by message text.
func TestForErrorTypedKinds(t *testing.T) {
	assert.Equal(t, uimsg.MsgConnectivity,
		uimsg.ForError(&api.Error{Kind: api.KindNetwork}, uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgSessionExpired,
		uimsg.ForError(&api.Error{Kind: api.KindAuthentication, Status: 401}, uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgNoPermission,
		uimsg.ForError(&api.Error{Kind: api.KindAuthorization, Status: 403}, uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgServerError,
		uimsg.ForError(&api.Error{Kind: api.KindServer, Status: 500}, uimsg.CtxGeneral))
	assert.Equal(t, uimsg.MsgUnavailable,
		uimsg.ForError(&api.Error{Kind: api.KindServer, Status: 503}, uimsg.CtxGeneral))
}

// A typed error whose detail matches a context rule still gets the
// context-specific sentence.
func TestForErrorTypedDetailRespectsContext(t *testing.T) {
	err := &api.Error{Kind: api.KindAuthentication, Status: 401, Detail: "Invalid login credentials"}
	assert.Equal(t, uimsg.MsgBadLogin, uimsg.ForError(err, uimsg.CtxAuth))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, uimsg.IsValidEmail("a@b.com"))
	assert.True(t, uimsg.IsValidEmail("user.name+tag@sub.domain.dev"))
	assert.False(t, uimsg.IsValidEmail("a@b"))
	assert.False(t, uimsg.IsValidEmail("a b@c.com"))
	assert.False(t, uimsg.IsValidEmail("@b.com"))
	assert.False(t, uimsg.IsValidEmail(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, uimsg.IsValidPassword("12345"))
	assert.True(t, uimsg.IsValidPassword("123456"))
	assert.False(t, uimsg.IsValidPassword(""))
}
