// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMentorSessions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/v1/mentors/sessions" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"sessions": []MentorSession{
				{
					ID:              11,
					MentorName:      "Dana",
					SessionDate:     time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC),
					DurationMinutes: 45,
					CreditCost:      20,
					Expertise:       "distributed systems",
					ExperienceLevel: "senior",
					IsAvailable:     true,
				},
			},
		})
	}))
	defer server.Close()

	client, _ := NewClient(ClientConfig{BaseURL: server.URL})
	sessions, err := client.MentorSessions(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MentorSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].MentorName != "Dana" || !sessions[0].IsAvailable {
		t.Errorf("unexpected session: %+v", sessions[0])
	}
}

func TestBookSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/mentors/sessions/11/book" || request.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(BookResult{Message: "booked"})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		result, err := client.BookSession(context.Background(), "tok", 11)
		if err != nil {
			t.Fatalf("BookSession failed: %v", err)
		}
		if result.Message != "booked" {
			t.Errorf("unexpected message: %q", result.Message)
		}
	})

	t.Run("slot taken returns 409", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.BookSession(context.Background(), "tok", 11)
		if !IsConflict(err) {
			t.Fatalf("expected 409 error, got %v", err)
		}
	})

	t.Run("vanished slot returns 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.BookSession(context.Background(), "tok", 11)
		if !IsNotFound(err) {
			t.Fatalf("expected 404 error, got %v", err)
		}
	})
}
