// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/v1/courses" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode([]Course{
			{ID: 1, Title: "Go Basics", Difficulty: "beginner", ChaptersCount: 8, TotalCredits: 40},
			{ID: 2, Title: "Systems Design", Difficulty: "advanced", IsEnrolled: true},
		})
	}))
	defer server.Close()

	client, _ := NewClient(ClientConfig{BaseURL: server.URL})
	courses, err := client.Courses(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Courses failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if !courses[1].IsEnrolled {
		t.Error("expected second course to be enrolled")
	}
}

func TestCourse(t *testing.T) {
	t.Run("unwraps course envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/courses/3" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"course": Course{
					ID: 3, Title: "Terminal UIs", IsEnrolled: true,
					Chapters: []Chapter{
						{ID: 1, Title: "Rendering", Credits: 5, IsCompleted: true},
						{ID: 2, Title: "Input", Credits: 5},
					},
				},
			})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		course, err := client.Course(context.Background(), "tok", 3)
		if err != nil {
			t.Fatalf("Course failed: %v", err)
		}
		if len(course.Chapters) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(course.Chapters))
		}
		if !course.Chapters[0].IsCompleted {
			t.Error("expected first chapter completed")
		}
	})

	t.Run("missing course returns 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.Course(context.Background(), "tok", 99)
		if !IsNotFound(err) {
			t.Fatalf("expected 404 error, got %v", err)
		}
	})
}

func TestEnroll(t *testing.T) {
	t.Run("already enrolled returns 403", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/courses/3/enroll" || request.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
			}
			writer.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		err := client.Enroll(context.Background(), "tok", 3)
		if !IsForbidden(err) {
			t.Fatalf("expected 403 error, got %v", err)
		}
	})

	t.Run("insufficient credit returns 422 with message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(writer).Encode(map[string]string{"message": "not enough credits to enroll"})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		err := client.Enroll(context.Background(), "tok", 3)
		if !IsValidation(err) {
			t.Fatalf("expected 422 error, got %v", err)
		}
		if message := ErrorMessage(err); message != "not enough credits to enroll" {
			t.Errorf("unexpected message: %q", message)
		}
	})
}

func TestCompleteChapter(t *testing.T) {
	t.Run("returns credits earned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/courses/3/chapters/2/complete" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(CompleteResult{CreditsEarned: 5})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		result, err := client.CompleteChapter(context.Background(), "tok", 3, 2)
		if err != nil {
			t.Fatalf("CompleteChapter failed: %v", err)
		}
		if result.CreditsEarned != 5 {
			t.Errorf("expected 5 credits, got %d", result.CreditsEarned)
		}
	})

	t.Run("already completed returns 403", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.CompleteChapter(context.Background(), "tok", 3, 2)
		if !IsForbidden(err) {
			t.Fatalf("expected 403 error, got %v", err)
		}
	})
}
