package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/agentage/agentage/pkg/agentage/api"
	"github.com/agentage/agentage/pkg/agentage/auth"
)

type SessionService struct {
	client *Client
}

func (c *Client) Session() *SessionService {
	return &SessionService{client: c}
}

// Me fetches the current user. Without a local token it short-circuits with
// not_authenticated before touching the network; a 401 from the registry is
// reported as session_expired.
func (s *SessionService) Me(ctx context.Context) (*api.User, error) {
	if s.client.token == "" {
		return nil, &auth.Error{Code: auth.CodeNotAuthenticated, Message: "not logged in"}
	}
	var payload struct {
		User *api.User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "api/auth/me", nil, &payload); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, &auth.Error{Code: auth.CodeSessionExpired, Message: "session expired"}
		}
		return nil, err
	}
	if payload.User == nil {
		return nil, errors.New("registry returned no user")
	}
	if err := payload.User.Validate(); err != nil {
		return nil, fmt.Errorf("registry returned an invalid user: %w", err)
	}
	return payload.User, nil
}

// Logout invalidates the session server-side. Callers treat every failure
// as advisory: local credential clearing never waits on this.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "api/auth/logout", nil, nil)
}
