package model

import "strings"

// GateConfig describes which pages require a session and where to send users.
type GateConfig struct {
	ProtectedPrefixes []string
	PublicOnlyPaths   []string
	LoginPath         string
	LandingPath       string
}

// IsProtected reports whether path falls under one of the protected prefixes.
// A prefix matches itself and anything below it, never a sibling that merely
// shares leading characters.
func (g GateConfig) IsProtected(path string) bool {
	for _, prefix := range g.ProtectedPrefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// IsPublicOnly reports whether path is an entry point meant only for anonymous users.
func (g GateConfig) IsPublicOnly(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, p := range g.PublicOnlyPaths {
		if path == strings.TrimSuffix(p, "/") {
			return true
		}
	}
	return false
}
