// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
)

// loginRequest is the body of POST /users/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the body of POST /users/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password. On 200 the response
// carries the token and the user profile. The caller owns deciding
// what a 401 or 422 means for its state — see the session package.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("api: email is required for login")
	}
	if password == "" {
		return nil, fmt.Errorf("api: password is required for login")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/users/login", "", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var response AuthResponse
	if err := decode(body, &response); err != nil {
		return nil, err
	}

	c.logger.Info("logged in", "email", email)
	return &response, nil
}

// Register creates a new account. On 201 the backend may or may not
// include a token in the response; the Token field is empty when it
// does not. A 400 means the account already exists.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("api: name, email, and password are required for registration")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/users/register", "", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var response AuthResponse
	if err := decode(body, &response); err != nil {
		return nil, err
	}

	c.logger.Info("registered account", "email", email, "token_issued", response.Token != "")
	return &response, nil
}

// Logout asks the backend to revoke the token. The session store calls
// this best-effort: a failure here never blocks clearing local state.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/users/logout", token, nil)
	return err
}
