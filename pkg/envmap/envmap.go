// Package envmap provides a read-only view over a flat mapping of
// environment variable names to string values. The resolver reads all
// ambient configuration through an Environ instead of calling os.Getenv
// directly, so tests and embedders can substitute their own mapping.
package envmap

import (
	"os"
	"strings"
)

// Environ is a flat, read-only mapping of variable names to values.
// A nil Environ behaves like an empty one.
type Environ map[string]string

// System returns a snapshot of the current process environment.
// Later changes to the process environment are not reflected.
func System() Environ {
	entries := os.Environ()
	env := make(Environ, len(entries))
	for _, entry := range entries {
		if key, value, found := strings.Cut(entry, "="); found {
			env[key] = value
		}
	}
	return env
}

// Get returns the value for key, or the empty string if unset.
// A value consisting only of whitespace counts as unset.
func (e Environ) Get(key string) string {
	value, _ := e.Lookup(key)
	return value
}

// Lookup returns the value for key and whether it is set.
// Blank values count as unset.
func (e Environ) Lookup(key string) (string, bool) {
	value, ok := e[key]
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// IsSet reports whether key is present with a non-blank value.
func (e Environ) IsSet(key string) bool {
	_, ok := e.Lookup(key)
	return ok
}

// Truthy reports whether s is an affirmative flag value.
// Accepted spellings are "true", "1", and "yes", case-insensitively.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// GetBool returns the truthy interpretation of the value for key.
// Unset and blank values are false.
func (e Environ) GetBool(key string) bool {
	value, ok := e.Lookup(key)
	return ok && Truthy(value)
}
