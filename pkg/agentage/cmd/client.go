package cmd

import (
	"errors"

	"github.com/agentage/agentage/pkg/agentage/client"
)

// buildClient returns a registry client carrying the current token when one
// exists. Commands that serve anonymous reads use this directly.
func buildClient(rt *runtimeState) (*client.Client, error) {
	options := []client.Option{
		client.WithRegistry(rt.RegistryURL()),
		client.WithUserAgent("agentage"),
		client.WithLogger(rt.Logger()),
	}
	if token, ok := rt.Token(); ok {
		options = append(options, client.WithToken(token))
	}
	return client.New(options...)
}

func buildAuthedClient(rt *runtimeState) (*client.Client, error) {
	token, ok := rt.Token()
	if !ok || token == "" {
		return nil, errors.New("not authenticated; run 'agentage login'")
	}
	return client.New(
		client.WithRegistry(rt.RegistryURL()),
		client.WithToken(token),
		client.WithUserAgent("agentage"),
		client.WithLogger(rt.Logger()),
	)
}
