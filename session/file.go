// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sessionFile is the on-disk shape of the persisted session. Only the
// token is durable; the profile is always re-fetched.
type sessionFile struct {
	Token string `json:"token"`
}

// DefaultTokenPath returns the path of the persisted session file.
// Checks the SKILLSHARE_SESSION_FILE environment variable first, then
// falls back to $XDG_CONFIG_HOME/skillshare/session.json or
// ~/.config/skillshare/session.json.
func DefaultTokenPath() string {
	if envPath := os.Getenv("SKILLSHARE_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join(os.TempDir(), "skillshare-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "skillshare", "session.json")
}

// loadToken reads the persisted token. A missing file means no
// session and returns "", nil — only read or parse failures error.
func loadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("session: reading session file %s: %w", path, err)
	}

	var file sessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", fmt.Errorf("session: parsing session file %s: %w", path, err)
	}
	return file.Token, nil
}

// saveToken writes the token to the session file. The parent
// directory is created with mode 0700 and the file with mode 0600
// since it holds a live credential.
func saveToken(path, token string) error {
	data, err := json.MarshalIndent(sessionFile{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshaling session file: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("session: creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("session: writing session file %s: %w", path, err)
	}
	return nil
}

// clearToken removes the session file. Removing an already-absent
// file is a no-op.
func clearToken(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: removing session file %s: %w", path, err)
	}
	return nil
}
