package github

import "os"

// TokenEnvVars are the variables checked for a bearer token, in order.
var TokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// LookupFunc reports the value of a named variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup reads from the process environment.
var EnvLookup LookupFunc = os.LookupEnv

// MapLookup adapts a plain map, such as one read from a dotenv file.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ResolveToken returns the first non-empty value of names. Each source is
// exhausted before the next is consulted. Nil sources are skipped.
func ResolveToken(names []string, sources ...LookupFunc) string {
	if len(names) == 0 {
		names = TokenEnvVars
	}
	for _, lookup := range sources {
		if lookup == nil {
			continue
		}
		for _, name := range names {
			if v, ok := lookup(name); ok && v != "" {
				return v
			}
		}
	}
	return ""
}
