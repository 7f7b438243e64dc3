// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
)

// courseResponse wraps the payload of GET /courses/{id}.
type courseResponse struct {
	Course Course `json:"course"`
}

// Courses lists the catalog. Entries are summaries: ChaptersCount and
// TotalCredits are set, Chapters is empty.
func (c *Client) Courses(ctx context.Context, token string) ([]Course, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/courses", token, nil)
	if err != nil {
		return nil, err
	}

	var courses []Course
	if err := decode(body, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches one course with its chapter list. Chapters carry
// per-student completion state, so the result is only meaningful for
// the token's owner.
func (c *Client) Course(ctx context.Context, token string, courseID int) (*Course, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), token, nil)
	if err != nil {
		return nil, err
	}

	var response courseResponse
	if err := decode(body, &response); err != nil {
		return nil, err
	}
	return &response.Course, nil
}

// Enroll enrolls the student in a course. 403 means already enrolled;
// 422 means insufficient credit (Message has the backend's wording).
func (c *Client) Enroll(ctx context.Context, token string, courseID int) error {
	_, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/enroll", courseID), token, nil)
	if err != nil {
		return err
	}

	c.logger.Info("enrolled in course", "course_id", courseID)
	return nil
}

// CompleteChapter marks a chapter as done and returns the credits
// awarded. 403 means the chapter was already completed; 404 means the
// course or chapter is gone and the caller should reload.
func (c *Client) CompleteChapter(ctx context.Context, token string, courseID, chapterID int) (*CompleteResult, error) {
	path := fmt.Sprintf("/courses/%d/chapters/%d/complete", courseID, chapterID)
	body, err := c.doRequest(ctx, http.MethodPost, path, token, nil)
	if err != nil {
		return nil, err
	}

	var result CompleteResult
	if err := decode(body, &result); err != nil {
		return nil, err
	}

	c.logger.Info("completed chapter",
		"course_id", courseID,
		"chapter_id", chapterID,
		"credits_earned", result.CreditsEarned,
	)
	return &result, nil
}
