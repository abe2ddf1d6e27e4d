package coauthor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors how the GitHub client decodes response bodies.
func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var data map[string]any
	require.NoError(t, dec.Decode(&data))
	return data
}

func TestProfileFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		username string
		body     string
		want     Profile
	}{
		{
			name:     "login without name",
			username: "octocat",
			body:     `{"id": 583231, "login": "octocat"}`,
			want:     Profile{Login: "octocat", ID: "583231", Name: "octocat"},
		},
		{
			name:     "name present",
			username: "mojombo",
			body:     `{"id": 1, "login": "mojombo", "name": "Tom"}`,
			want:     Profile{Login: "mojombo", ID: "1", Name: "Tom"},
		},
		{
			name:     "empty name falls back to login",
			username: "octocat",
			body:     `{"id": 2, "login": "octocat", "name": ""}`,
			want:     Profile{Login: "octocat", ID: "2", Name: "octocat"},
		},
		{
			name:     "null name falls back to login",
			username: "octocat",
			body:     `{"id": 3, "login": "octocat", "name": null}`,
			want:     Profile{Login: "octocat", ID: "3", Name: "octocat"},
		},
		{
			name:     "missing login uses username",
			username: "someone",
			body:     `{"id": 4}`,
			want:     Profile{Login: "someone", ID: "4", Name: "someone"},
		},
		{
			name:     "response login wins over username casing",
			username: "OCTOCAT",
			body:     `{"id": 5, "login": "octocat"}`,
			want:     Profile{Login: "octocat", ID: "5", Name: "octocat"},
		},
		{
			name:     "non-string login and name fall back",
			username: "octocat",
			body:     `{"id": 6, "login": 42, "name": 5}`,
			want:     Profile{Login: "octocat", ID: "6", Name: "octocat"},
		},
		{
			name:     "large id keeps every digit",
			username: "big",
			body:     `{"id": 9007199254740993, "login": "big"}`,
			want:     Profile{Login: "big", ID: "9007199254740993", Name: "big"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProfileFromResponse(tt.username, decode(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileFromResponse_MissingID(t *testing.T) {
	for _, body := range []string{
		`{"login": "ghost"}`,
		`{"login": "ghost", "id": null}`,
	} {
		_, err := ProfileFromResponse("ghost", decode(t, body))
		if !errors.Is(err, ErrMissingID) {
			t.Errorf("body %s: expected ErrMissingID, got %v", body, err)
		}
	}
}

func TestProfileFromResponse_NilData(t *testing.T) {
	_, err := ProfileFromResponse("ghost", nil)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{json.Number("42"), "42"},
		{"abc", "abc"},
		{float64(583231), "583231"},
		{int(7), "7"},
		{int64(8), "8"},
	}
	for _, tt := range tests {
		got, ok := formatID(tt.in)
		if !ok {
			t.Errorf("formatID(%v) reported missing", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("formatID(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrailer(t *testing.T) {
	p := Profile{Login: "octocat", ID: "583231", Name: "octocat"}
	assert.Equal(t, "583231+octocat@users.noreply.github.com", p.NoReplyEmail("github.com"))
	assert.Equal(t, "Co-authored-by: octocat <583231+octocat@users.noreply.github.com>", p.Trailer("github.com"))

	p = Profile{Login: "mojombo", ID: "1", Name: "Tom"}
	assert.Equal(t, "Co-authored-by: Tom <1+mojombo@users.noreply.github.com>", p.Trailer(""))

	assert.Equal(t, "Co-authored-by: Tom <1+mojombo@users.noreply.ghe.example.com>", p.Trailer("ghe.example.com"))
}

func TestDisplayName_FallsBackToLogin(t *testing.T) {
	p := Profile{Login: "octocat", ID: "1"}
	assert.Equal(t, "octocat", p.DisplayName())
}
