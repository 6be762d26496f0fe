package agentfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveDescription(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain paragraph",
			body: "Reviews pull requests for style issues.\n",
			want: "Reviews pull requests for style issues.",
		},
		{
			name: "heading is skipped",
			body: "# Code Reviewer\n\nReviews pull requests.\n",
			want: "Reviews pull requests.",
		},
		{
			name: "soft line breaks collapse to spaces",
			body: "Reviews pull\nrequests carefully.\n",
			want: "Reviews pull requests carefully.",
		},
		{
			name: "inline emphasis is flattened",
			body: "Reviews **pull requests** with `gofmt`.\n",
			want: "Reviews pull requests with gofmt.",
		},
		{
			name: "only first paragraph",
			body: "First paragraph.\n\nSecond paragraph.\n",
			want: "First paragraph.",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "whitespace only",
			body: "   \n\t\n",
			want: "",
		},
		{
			name: "no paragraph at all",
			body: "# Only A Heading\n",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DeriveDescription(tc.body))
		})
	}
}
