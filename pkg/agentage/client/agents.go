package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/agentage/agentage/pkg/agentage/api"
)

type AgentService struct {
	client *Client
}

func (c *Client) Agents() *AgentService {
	return &AgentService{client: c}
}

type SearchOptions struct {
	Query string
	Limit int
}

// PublishRequest is the catalog record plus the agent's markdown
// instructions.
type PublishRequest struct {
	api.AgentManifest
	Content string `json:"content"`
}

func (s *AgentService) Search(ctx context.Context, opts SearchOptions) ([]api.Agent, error) {
	endpoint := "api/agents"
	params := url.Values{}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}
	var payload struct {
		Agents []api.Agent `json:"agents"`
	}
	if err := s.client.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Agents, nil
}

func (s *AgentService) Get(ctx context.Context, name string) (*api.Agent, error) {
	endpoint := fmt.Sprintf("api/agents/%s", url.PathEscape(name))
	var agent api.Agent
	if err := s.client.do(ctx, http.MethodGet, endpoint, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *AgentService) Content(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("api/agents/%s/content", url.PathEscape(name))
	var payload struct {
		Content string `json:"content"`
	}
	if err := s.client.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return "", err
	}
	return payload.Content, nil
}

func (s *AgentService) Publish(ctx context.Context, req PublishRequest) (*api.Agent, error) {
	var agent api.Agent
	if err := s.client.do(ctx, http.MethodPost, "api/agents", req, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *AgentService) Delete(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("api/agents/%s", url.PathEscape(name))
	return s.client.do(ctx, http.MethodDelete, endpoint, nil, nil)
}
