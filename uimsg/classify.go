package uimsg

import (
	"errors"
	"net/http"
	"strings"

	"github.com/praxis-dev/client/api"
)

// Context selects which rule table applies before the generic
// fallbacks. It mirrors where in the UI the error surfaced.
type Context string

const (
	CtxAuth       Context = "auth"
	CtxSignup     Context = "signup"
	CtxChallenge  Context = "challenge"
	CtxSubmission Context = "submission"
	CtxValidation Context = "validation"
	CtxGeneral    Context = "general"
)

// rule maps any of its substrings (matched against the lower-cased
// error text) to one fixed sentence. First match wins.
type rule struct {
	needles []string
	msg     string
}

func (r rule) matches(text string) bool {
	for _, needle := range r.needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// Identity-provider and backend auth failures. Order matters: the
// more specific phrases sit above the ones they could be mistaken for.
var authRules = []rule{
	{[]string{"invalid login credentials", "invalid credentials", "invalid grant", "email ou senha"}, MsgBadLogin},
	{[]string{"email not confirmed", "confirm your email", "não confirmado"}, MsgConfirmEmail},
	{[]string{"user already registered", "already registered", "already been registered", "já cadastrado"}, MsgDuplicateAccount},
	{[]string{"invalid email", "unable to validate email", "email inválido"}, MsgInvalidEmail},
	{[]string{"password should be at least", "password is too short", "weak password", "at least 6"}, MsgPasswordMin},
	{[]string{"session expired", "jwt expired", "refresh token", "token expirado", "sessão expirada"}, MsgSessionExpired},
	{[]string{"invalid token", "token has expired", "otp expired", "link expirado"}, MsgRequestNewLink},
}

var challengeRules = []rule{
	{[]string{"not found", "404", "não encontrado"}, MsgChallengeNotFound},
	{[]string{"expired", "expirado", "expirou"}, MsgChallengeExpired},
	{[]string{"already completed", "already submitted", "já completado", "já foi avaliada"}, MsgChallengeCompleted},
}

var submissionRules = []rule{
	{[]string{"empty", "required", "vazio", "obrigatório"}, MsgFillFields},
	{[]string{"too long", "exceeds", "muito longo", "excede"}, MsgTooLong},
	{[]string{"rate limit", "too many", "muitas tentativas"}, MsgSlowDown},
}

var validationRules = []rule{
	{[]string{"email"}, MsgInvalidEmail},
	{[]string{"password", "senha"}, MsgPasswordMin},
	{[]string{"required", "obrigatório"}, MsgFillFields},
}

// Context-independent fallbacks, checked after the context rules.
var genericRules = []rule{
	{[]string{"failed to fetch", "network", "connection", "timeout", "timed out", "no such host", "dial tcp"}, MsgConnectivity},
	{[]string{"500", "internal server"}, MsgServerError},
	{[]string{"503", "unavailable", "indisponível"}, MsgUnavailable},
	{[]string{"401", "403", "unauthorized", "forbidden", "não autorizado"}, MsgNoPermission},
}

func rulesFor(ctx Context) []rule {
	switch ctx {
	case CtxAuth, CtxSignup:
		return authRules
	case CtxChallenge:
		return challengeRules
	case CtxSubmission:
		return submissionRules
	case CtxValidation:
		return validationRules
	}
	return nil
}

// ForError returns the sentence to display for err in the given UI
// context. It never panics and never returns an empty string; a nil
// err yields the generic sentence.
func ForError(err error, ctx Context) string {
	if err == nil {
		return MsgUnexpected
	}
	text := strings.ToLower(err.Error())

	for _, r := range rulesFor(ctx) {
		if r.matches(text) {
			return r.msg
		}
	}

	// Typed errors from the API client carry their classification from
	// the HTTP boundary; prefer it over re-parsing text.
	apiErr := &api.Error{}
	if errors.As(err, &apiErr) {
		if msg, ok := forKind(apiErr); ok {
			return msg
		}
	}

	for _, r := range genericRules {
		if r.matches(text) {
			return r.msg
		}
	}
	return MsgUnexpected
}

func forKind(err *api.Error) (string, bool) {
	switch err.Kind {
	case api.KindNetwork:
		return MsgConnectivity, true
	case api.KindAuthentication:
		return MsgSessionExpired, true
	case api.KindAuthorization:
		return MsgNoPermission, true
	case api.KindServer:
		if err.Status == http.StatusServiceUnavailable {
			return MsgUnavailable, true
		}
		return MsgServerError, true
	}
	return "", false
}
