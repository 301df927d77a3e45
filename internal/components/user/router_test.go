package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registeredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func newTestRouter(repo repoer) chi.Router {
	return NewRouter(NewService(repo, testIssuer("test-secret", time.Hour)))
}

func doJSON(t *testing.T, router chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RegisterThenLogin(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, "/register", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Status string         `json:"status"`
		Data   registeredUser `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "alice", resp.Data.Username)
	assert.NotEmpty(t, resp.Data.ID)
	assert.NotEmpty(t, resp.Data.Token)

	// Neither the plaintext nor the hash may leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret1")

	rec = doJSON(t, router, "/login", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	// The login token decodes back to the id assigned at registration.
	boundID, err := testIssuer("test-secret", time.Hour).Parse(loginResp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Data.ID, boundID.String())
}

func TestRouter_Register_ValidationErrors(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, "/register", CredentialsIn{Username: "al", Password: "secret1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{msgUsernameTooShort}, resp.Errors)

	// No store write on validation failure.
	assert.Zero(t, repo.createCalls)
}

func TestRouter_Register_Duplicate(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, "/register", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "/register", CredentialsIn{Username: "alice", Password: "other-pass"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists!"}`, rec.Body.String())
}

func TestRouter_Register_StoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.precheckMiss = true
	repo.createErr = errors.New("connection refused")
	router := newTestRouter(repo)

	rec := doJSON(t, router, "/register", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to create the user"}`, rec.Body.String())
}

func TestRouter_Login_StoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection refused")
	router := newTestRouter(repo)

	rec := doJSON(t, router, "/login", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRouter_Login_UserNotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, "/login", CredentialsIn{Username: "nobody", Password: "secret1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestRouter_Login_WrongPassword(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, "/register", CredentialsIn{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "/login", CredentialsIn{Username: "alice", Password: "secret2"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Incorrect Email or password!"}`, rec.Body.String())
}

func TestRouter_Login_ValidationErrors(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, "/login", CredentialsIn{Username: "al", Password: "123"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{msgUsernameTooShort, msgPasswordTooShort}, resp.Errors)
}

func TestRouter_MalformedBody(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	for _, path := range []string{"/register", "/login"} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
		assert.JSONEq(t, `{"errors":["Invalid request body"]}`, rec.Body.String())
	}
}
