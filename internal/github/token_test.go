package github

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dicklesworthstone/coauthor/internal/testutil"
)

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name    string
		sources []LookupFunc
		want    string
	}{
		{
			name:    "none set",
			sources: []LookupFunc{testutil.Env()},
			want:    "",
		},
		{
			name:    "primary wins",
			sources: []LookupFunc{testutil.Env("GITHUB_TOKEN", "primary", "GH_TOKEN", "secondary")},
			want:    "primary",
		},
		{
			name:    "empty primary falls through",
			sources: []LookupFunc{testutil.Env("GITHUB_TOKEN", "", "GH_TOKEN", "secondary")},
			want:    "secondary",
		},
		{
			name: "environment before env file",
			sources: []LookupFunc{
				testutil.Env("GH_TOKEN", "from-env"),
				MapLookup(map[string]string{"GITHUB_TOKEN": "from-file"}),
			},
			want: "from-env",
		},
		{
			name: "env file used when environment is empty",
			sources: []LookupFunc{
				testutil.Env(),
				nil,
				MapLookup(map[string]string{"GH_TOKEN": "from-file"}),
			},
			want: "from-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveToken(nil, tt.sources...))
		})
	}
}

func TestResolveToken_CustomNames(t *testing.T) {
	env := testutil.Env("GITHUB_TOKEN", "default", "GHE_TOKEN", "enterprise")
	assert.Equal(t, "enterprise", ResolveToken([]string{"GHE_TOKEN"}, env))
}

func TestResolveToken_ProcessEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "gh-cli")
	assert.Equal(t, "gh-cli", ResolveToken(TokenEnvVars, EnvLookup))
}
