package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// стаб-резолвер: один валидный токен
type stubResolver struct {
	token  string
	userID string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (string, error) {
	if token == s.token {
		return s.userID, nil
	}
	return "", errors.New("unauthorized")
}

// Тест: валидный X-Token — user_id попадает в контекст
func TestWithAuth_ValidTokenSetsUserID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok || uid != "u1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := WithAuth(&stubResolver{token: "t1", userID: "u1"})(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "t1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
}

// Тест: отсутствие заголовка — запрос проходит анонимно
func TestWithAuth_NoTokenLeavesAnonymous(t *testing.T) {
	h := WithAuth(&stubResolver{token: "t1", userID: "u1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: невалидный токен — user_id не устанавливается, запрос не блокируется
func TestWithAuth_InvalidToken(t *testing.T) {
	h := WithAuth(&stubResolver{token: "t1", userID: "u1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "forged")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
