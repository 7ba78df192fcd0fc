package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/users", "", map[string]string{
		"email":    "bob@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "bob@example.com", resp["email"])
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob@example.com", "secret")

	rr := env.do(t, http.MethodPost, "/users", "", map[string]string{
		"email":    "bob@example.com",
		"password": "other",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Already exist"}`, rr.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/users", "", map[string]string{"password": "secret"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Missing email"}`, rr.Body.String())

	rr = env.do(t, http.MethodPost, "/users", "", map[string]string{"email": "bob@example.com"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Missing password"}`, rr.Body.String())
}

func TestStatusAndStats(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob@example.com", "secret")

	rr := env.do(t, http.MethodGet, "/status", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"redis":true,"db":true}`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/stats", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"users":1,"files":0}`, rr.Body.String())
}
