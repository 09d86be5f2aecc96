package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-dev/client/api"
	"github.com/praxis-dev/client/session"
	"github.com/praxis-dev/client/subm"
)

// fakeSession is an in-memory session.Session for client tests.
type fakeSession struct {
	token    string
	err      error
	claims   session.Claims
	signOuts int
}

func (f *fakeSession) Token(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeSession) Claims() (session.Claims, bool) {
	if f.token == "" {
		return session.Claims{}, false
	}
	return f.claims, true
}

func (f *fakeSession) OnChange(fn func()) {}

func (f *fakeSession) SignOut() error {
	f.signOuts++
	f.token = ""
	return nil
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p1","email":"a@b.com","full_name":"Ana"}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &fakeSession{token: "tok-123"})
	prof, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "p1", prof.ID)
}

func TestClientSignedOutSendsNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := api.New(srv.URL, &fakeSession{err: session.ErrNoSession})
	require.NoError(t, client.Health(context.Background()))
	assert.Empty(t, gotAuth)
}

// An expired session fails locally: no request goes out, the stored
// session is dropped and the caller gets an authentication error.
func TestClientExpiredSessionShortCircuits(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	sess := &fakeSession{err: session.ErrSessionExpired}
	client := api.New(srv.URL, sess)
	_, err := client.Profile(context.Background())

	apiErr := &api.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindAuthentication, apiErr.Kind)
	assert.Equal(t, 0, requests)
	assert.Equal(t, 1, sess.signOuts)
}

func TestClientUnauthorizedSignsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token expirado. Faça login novamente."}`))
	}))
	defer srv.Close()

	sess := &fakeSession{token: "stale"}
	client := api.New(srv.URL, sess)
	_, err := client.Profile(context.Background())

	apiErr := &api.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindAuthentication, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token expirado. Faça login novamente.", apiErr.Detail)
	assert.Equal(t, 1, sess.signOuts)
}

func TestClientErrorKinds(t *testing.T) {
	testCases := []struct {
		status int
		kind   api.Kind
	}{
		{http.StatusForbidden, api.KindAuthorization},
		{http.StatusNotFound, api.KindNotFound},
		{http.StatusConflict, api.KindValidation},
		{http.StatusUnprocessableEntity, api.KindValidation},
		{http.StatusInternalServerError, api.KindServer},
		{http.StatusServiceUnavailable, api.KindServer},
	}
	for _, tc := range testCases {
		status := tc.status
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := api.New(srv.URL, &fakeSession{token: "tok"})
		_, err := client.Challenge(context.Background(), 1)
		srv.Close()

		apiErr := &api.Error{}
		require.ErrorAs(t, err, &apiErr, "status %d", status)
		assert.Equal(t, tc.kind, apiErr.Kind, "status %d", status)
		assert.Equal(t, status, apiErr.Status)
	}
}

// Without a detail body the error renders the status fallback the
// message classifier keys on.
func TestClientErrorMessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := api.New(srv.URL, &fakeSession{token: "tok"})
	err := client.Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP error: 500", err.Error())
}

func TestClientDetailFromPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("limite de desafios atingido"))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &fakeSession{token: "tok"})
	_, err := client.GenerateChallenges(context.Background())
	require.Error(t, err)
	assert.Equal(t, "limite de desafios atingido", err.Error())
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := api.New(srv.URL, &fakeSession{token: "tok"})
	err := client.Health(context.Background())

	apiErr := &api.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindNetwork, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotNil(t, errors.Unwrap(apiErr))
}

func TestActiveChallengesClampsLimit(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, &fakeSession{token: "tok"})

	_, err := client.ActiveChallenges(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "3", gotLimit)

	_, err = client.ActiveChallenges(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, "10", gotLimit)
}

func TestCreateSubmissionFillsProfileID(t *testing.T) {
	var gotProfileID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var s subm.Submission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s))
		gotProfileID = s.ProfileID
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"submission_id":1,"status":"avaliado"}`))
	}))
	defer srv.Close()

	sess := &fakeSession{token: "tok", claims: session.Claims{UserID: "uid-9"}}
	client := api.New(srv.URL, sess)

	s := subm.BuildTask(5, "resposta longa o bastante para o teste", 12, "")
	result, err := client.CreateSubmission(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "uid-9", gotProfileID)
	assert.Equal(t, 1, result.SubmissionID)
}

func TestCreateSubmissionRejectsMalformedPayload(t *testing.T) {
	client := api.New("http://unused.invalid", &fakeSession{token: "tok"})
	_, err := client.CreateSubmission(context.Background(), subm.Submission{})
	assert.Error(t, err)
}
