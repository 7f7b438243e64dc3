// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// meResponse wraps the profile payload of GET /users/me.
type meResponse struct {
	User User `json:"user"`
}

// Me fetches the current user's profile and stats. A 401 means the
// token has been rejected — during session rehydration that clears
// the persisted token; during a soft refresh it is logged and ignored.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users/me", token, nil)
	if err != nil {
		return nil, err
	}

	var response meResponse
	if err := decode(body, &response); err != nil {
		return nil, err
	}
	return &response.User, nil
}
