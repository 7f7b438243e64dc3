// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "time"

// User is the authenticated student's profile as returned by
// GET /users/me. The same payload feeds the dashboard, so it carries
// aggregate stats and recent activity alongside the identity fields.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`

	Stats          UserStats  `json:"stats"`
	RecentActivity []Activity `json:"recentActivity"`

	// BookedSessions lists the student's mentor-session bookings.
	// The mentors view merges this with the available-session list.
	BookedSessions []Booking `json:"bookedSessions"`
}

// UserStats are the aggregate counters shown on the dashboard.
type UserStats struct {
	EnrolledCourses    int `json:"enrolledCourses"`
	CompletedChapters  int `json:"completedChapters"`
	TotalCreditsEarned int `json:"totalCreditsEarned"`
	UpcomingBookings   int `json:"upcomingBookings"`
}

// Activity is one entry in the user's recent-activity feed.
type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Course is a catalog entry. The list endpoint returns summaries
// (Chapters empty, ChaptersCount set); the detail endpoint includes
// the full chapter list for enrolled students.
type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Difficulty is one of "beginner", "intermediate", "advanced".
	Difficulty string `json:"difficulty"`

	ChaptersCount int `json:"chapters_count"`
	TotalCredits  int `json:"total_credits"`

	IsEnrolled bool      `json:"isEnrolled"`
	Chapters   []Chapter `json:"chapters"`
}

// Chapter is a unit of a course. Completing it awards Credits.
type Chapter struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Credits     int    `json:"credits"`
	IsCompleted bool   `json:"isCompleted"`
}

// MentorSession is a bookable mentor time slot.
type MentorSession struct {
	ID              int       `json:"id"`
	MentorName      string    `json:"mentorName"`
	SessionDate     time.Time `json:"sessionDate"`
	DurationMinutes int       `json:"durationMinutes"`
	CreditCost      int       `json:"creditCost"`
	Expertise       string    `json:"expertise"`

	// ExperienceLevel is one of "junior", "mid", "senior".
	ExperienceLevel string `json:"experienceLevel"`

	IsAvailable bool `json:"isAvailable"`
}

// Booking is a mentor session the student has already booked.
type Booking struct {
	ID          int           `json:"id"`
	Status      string        `json:"status"`
	CreditsPaid int           `json:"creditsPaid"`
	Session     MentorSession `json:"session"`
}

// AuthResponse is the payload of a successful login, and of a
// registration when the backend auto-issues a token. Registration
// responses may omit the token, in which case the caller proceeds to
// a normal login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CompleteResult is the payload of a successful chapter completion.
type CompleteResult struct {
	CreditsEarned int    `json:"creditsEarned"`
	Message       string `json:"message"`
}

// BookResult is the payload of a successful mentor-session booking.
type BookResult struct {
	Message string `json:"message"`
}
