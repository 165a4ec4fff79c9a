package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"barberbook-backend/config"
)

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := &config.AppConfig{
		AdminUsername: "admin",
		AdminPassword: "barber123",
	}
	ac := &AuthController{Config: cfg}

	t.Run("valid credentials", func(t *testing.T) {
		w := performRequest(ac.Login, http.MethodPost, "/test", LoginInput{
			Username: "admin",
			Password: "barber123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(ac.Login, http.MethodPost, "/test", LoginInput{
			Username: "admin",
			Password: "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong username", func(t *testing.T) {
		w := performRequest(ac.Login, http.MethodPost, "/test", LoginInput{
			Username: "root",
			Password: "barber123",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := performRequest(ac.Login, http.MethodPost, "/test", map[string]string{"username": "admin"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
