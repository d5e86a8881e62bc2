package uri

//go:generate go tool mockgen -destination=../internal/testutil/urimock/decomposer.go -package=urimock . Decomposer

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"
)

// Parts holds the raw components of a URI text as reported by a [Decomposer].
// Empty Scheme, Host and Path mean the component is absent.
type Parts struct {
	Scheme   string
	Host     string
	Path     string
	RawQuery string
	// HasQuery is set when the text has a query component, possibly an empty one.
	HasQuery bool
}

// Decomposer splits URI text into components.
type Decomposer interface {
	// Decompose splits s into its components.
	// It fails when s is not structurally a URI.
	Decompose(s string) (Parts, error)
	// Fragment extracts the fragment of s without the leading '#'.
	// ok reports whether s has a fragment component at all.
	Fragment(s string) (fragment string, ok bool, err error)
}

// StdDecomposer is a [Decomposer] built on [net/url].
//
// The scheme keeps its case as written, net/url lowercases it.
// The host is the authority without user info, the port is kept as part of it.
// Path, query and fragment are returned in their escaped form, exactly as they appear in the text.
type StdDecomposer struct{}

// Decompose implements [Decomposer].
func (StdDecomposer) Decompose(s string) (Parts, error) {
	u, err := url.Parse(s)
	if err != nil {
		return Parts{}, errtrace.Wrap(err)
	}
	scheme := u.Scheme
	if n := len(scheme); len(s) >= n && strings.EqualFold(s[:n], scheme) {
		scheme = s[:n]
	}
	return Parts{
		Scheme:   scheme,
		Host:     u.Host,
		Path:     u.EscapedPath(),
		RawQuery: u.RawQuery,
		HasQuery: u.RawQuery != "" || u.ForceQuery,
	}, nil
}

// Fragment implements [Decomposer].
func (StdDecomposer) Fragment(s string) (string, bool, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", false, errtrace.Wrap(err)
	}
	return u.EscapedFragment(), strings.Contains(s, "#"), nil
}
