// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	t.Run("valid URL", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "http://localhost:5000"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client == nil {
			t.Fatal("NewClient returned nil")
		}
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{})
		if err == nil {
			t.Fatal("expected error for empty URL")
		}
	})

	t.Run("non-http URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{BaseURL: "ftp://example.com"})
		if err == nil {
			t.Fatal("expected error for non-http URL")
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/users/login" {
				t.Errorf("unexpected path: %s", request.URL.Path)
				writer.WriteHeader(http.StatusNotFound)
				return
			}
			if request.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", request.Method)
			}
			if contentType := request.Header.Get("Content-Type"); contentType != "application/json" {
				t.Errorf("unexpected Content-Type: %q", contentType)
			}
			if token := request.Header.Get("X-API-TOKEN"); token != "" {
				t.Errorf("login must not send a token, got %q", token)
			}

			var body map[string]string
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			if body["email"] != "alice@example.com" || body["password"] != "hunter22" {
				t.Errorf("unexpected credentials: %v", body)
			}

			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(AuthResponse{
				Token: "tok-abc123",
				User:  User{ID: 7, Name: "Alice", Email: "alice@example.com", Credits: 40},
			})
		}))
		defer server.Close()

		client, err := NewClient(ClientConfig{BaseURL: server.URL})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}

		response, err := client.Login(context.Background(), "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if response.Token != "tok-abc123" {
			t.Errorf("unexpected token: %q", response.Token)
		}
		if response.User.Name != "Alice" {
			t.Errorf("unexpected user: %+v", response.User)
		}
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{"message": "invalid email or password"})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Login(context.Background(), "alice@example.com", "wrong")
		if !IsUnauthorized(err) {
			t.Fatalf("expected 401 error, got %v", err)
		}
		if message := ErrorMessage(err); message != "invalid email or password" {
			t.Errorf("unexpected message: %q", message)
		}
	})

	t.Run("validation failure carries backend message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(writer).Encode(map[string]string{"message": "email must be a valid address"})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Login(context.Background(), "not-an-email", "hunter22")
		if !IsValidation(err) {
			t.Fatalf("expected 422 error, got %v", err)
		}
		if message := ErrorMessage(err); message != "email must be a valid address" {
			t.Errorf("unexpected message: %q", message)
		}
	})

	t.Run("network failure is not an *Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // connection refused from here on

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Login(context.Background(), "alice@example.com", "hunter22")
		if err == nil {
			t.Fatal("expected a transport error")
		}
		var apiErr *Error
		if errors.As(err, &apiErr) {
			t.Fatalf("transport failure must not be an *Error, got %v", apiErr)
		}
	})

	t.Run("missing fields rejected locally", func(t *testing.T) {
		client, _ := NewClient(ClientConfig{BaseURL: "http://localhost:5000"})
		if _, err := client.Login(context.Background(), "", "secret"); err == nil {
			t.Error("expected error for empty email")
		}
		if _, err := client.Login(context.Background(), "a@b.c", ""); err == nil {
			t.Error("expected error for empty password")
		}
	})
}

func TestRegister(t *testing.T) {
	t.Run("duplicate account returns 400", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(writer).Encode(map[string]string{"message": "account already exists"})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
		if !IsDuplicate(err) {
			t.Fatalf("expected 400 error, got %v", err)
		}
	})

	t.Run("token may be absent on 201", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusCreated)
			json.NewEncoder(writer).Encode(map[string]any{
				"user": map[string]any{"id": 9, "name": "Bob", "email": "bob@example.com"},
			})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		response, err := client.Register(context.Background(), "Bob", "bob@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if response.Token != "" {
			t.Errorf("expected empty token, got %q", response.Token)
		}
		if response.User.Email != "bob@example.com" {
			t.Errorf("unexpected user: %+v", response.User)
		}
	})
}

func TestMe(t *testing.T) {
	t.Run("sends token header and unwraps user", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/users/me" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			if token := request.Header.Get("X-API-TOKEN"); token != "tok-abc123" {
				t.Errorf("unexpected token header: %q", token)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"user": map[string]any{"id": 7, "name": "Alice", "email": "alice@example.com", "credits": 55},
			})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		user, err := client.Me(context.Background(), "tok-abc123")
		if err != nil {
			t.Fatalf("Me failed: %v", err)
		}
		if user.Credits != 55 {
			t.Errorf("unexpected credits: %d", user.Credits)
		}
	})

	t.Run("rejected token returns 401", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Me(context.Background(), "stale-token")
		if !IsUnauthorized(err) {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})
}

func TestErrorBodyFallback(t *testing.T) {
	// Non-JSON error bodies must not be dropped.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, _ := NewClient(ClientConfig{BaseURL: server.URL})
	_, err := client.Me(context.Background(), "tok")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("unexpected status: %d", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}
