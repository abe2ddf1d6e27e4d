// Package coauthor turns a GitHub user record into a Co-authored-by trailer.
package coauthor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// DefaultDomain is the host used for GitHub no-reply addresses.
const DefaultDomain = "github.com"

// ErrMissingID is returned when the user record carries no account id.
var ErrMissingID = errors.New("missing 'id' in API response")

// Profile is the subset of a GitHub user record needed for attribution.
type Profile struct {
	Login string
	ID    string
	Name  string
}

// ProfileFromResponse builds a Profile from a decoded /users/{username}
// response. Defaults apply in order: login falls back to username, name
// falls back to login. A missing or null id is an error.
func ProfileFromResponse(username string, data map[string]any) (Profile, error) {
	p := Profile{Login: username}

	if login, ok := data["login"].(string); ok && login != "" {
		p.Login = login
	}

	id, ok := formatID(data["id"])
	if !ok {
		return Profile{}, ErrMissingID
	}
	p.ID = id

	p.Name = p.Login
	if name, ok := data["name"].(string); ok && name != "" {
		p.Name = name
	}

	return p, nil
}

// formatID renders the id value as it appeared in the response.
func formatID(v any) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case json.Number:
		return id.String(), true
	case string:
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	default:
		return fmt.Sprint(id), true
	}
}

// DisplayName returns the name shown before the address.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// NoReplyEmail returns the <id>+<login>@users.noreply.<domain> address.
func (p Profile) NoReplyEmail(domain string) string {
	if domain == "" {
		domain = DefaultDomain
	}
	return fmt.Sprintf("%s+%s@users.noreply.%s", p.ID, p.Login, domain)
}

// Trailer returns the full Co-authored-by line without a trailing newline.
func (p Profile) Trailer(domain string) string {
	return fmt.Sprintf("Co-authored-by: %s <%s>", p.DisplayName(), p.NoReplyEmail(domain))
}
