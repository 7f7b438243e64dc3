// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
)

// sessionsResponse wraps the payload of GET /mentors/sessions.
type sessionsResponse struct {
	Sessions []MentorSession `json:"sessions"`
}

// MentorSessions lists the currently bookable mentor time slots. The
// mentors view re-fetches this on a fixed interval since slots come
// and go as other students book them.
func (c *Client) MentorSessions(ctx context.Context, token string) ([]MentorSession, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/mentors/sessions", token, nil)
	if err != nil {
		return nil, err
	}

	var response sessionsResponse
	if err := decode(body, &response); err != nil {
		return nil, err
	}
	return response.Sessions, nil
}

// BookSession books a mentor session. 403 and 409 both mean the slot
// was lost to a conflict (insufficient credit uses 422, a vanished
// slot 404); in every failure case the caller re-fetches the list to
// reconcile.
func (c *Client) BookSession(ctx context.Context, token string, sessionID int) (*BookResult, error) {
	body, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/mentors/sessions/%d/book", sessionID), token, nil)
	if err != nil {
		return nil, err
	}

	var result BookResult
	if err := decode(body, &result); err != nil {
		return nil, err
	}

	c.logger.Info("booked mentor session", "session_id", sessionID)
	return &result, nil
}
