package agentfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentage/agentage/pkg/agentage/api"
)

func TestValidateAcceptsGoodManifest(t *testing.T) {
	require.Nil(t, Validate(api.AgentManifest{
		Name:    "code-reviewer",
		ID:      "7cb8a1de-2f7f-4b4f-9c1a-3a5e8d9b6f21",
		Version: "1.0.0",
	}))
}

func TestValidateRequiresName(t *testing.T) {
	details := Validate(api.AgentManifest{})
	require.NotNil(t, details)
	require.Contains(t, details, "name")
	require.Equal(t, "is required", details["name"])
}

func TestValidateAgentName(t *testing.T) {
	valid := []string{"a", "ab", "code-reviewer", "agent2", "a1-b2"}
	for _, name := range valid {
		require.Nil(t, Validate(api.AgentManifest{Name: name}), "expected %q to validate", name)
	}

	invalid := []string{"Code-Reviewer", "-leading", "trailing-", "has space", "under_score", "uniçode"}
	for _, name := range invalid {
		details := Validate(api.AgentManifest{Name: name})
		require.NotNil(t, details, "expected %q to be rejected", name)
		require.Contains(t, details, "name")
	}
}

func TestValidateRejectsBadID(t *testing.T) {
	details := Validate(api.AgentManifest{Name: "agent", ID: "not-a-uuid"})
	require.NotNil(t, details)
	require.Contains(t, details, "id")
}
