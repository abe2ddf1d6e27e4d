package github

import "fmt"

// APIError is a non-success HTTP response from the GitHub API.
type APIError struct {
	StatusCode int
	Reason     string
	Username   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API returned %d %s for '%s'", e.StatusCode, e.Reason, e.Username)
}

// DecodeError is a success response whose body is not a JSON object.
type DecodeError struct {
	Username string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode GitHub response for '%s': %v", e.Username, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
