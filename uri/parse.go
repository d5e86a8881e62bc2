package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// Parse decomposes s with [StdDecomposer] and returns a Builder holding its components.
//
// See [ParseWith] for details.
func Parse(s string) (*Builder, error) {
	return errtrace.Wrap2(ParseWith(StdDecomposer{}, s))
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *Builder {
	return util.Must2(Parse(s))
}

// ParseWith decomposes s with d and returns a Builder holding its components.
//
// It returns [ErrMalformedURI] if d fails to decompose s,
// and [ErrMissingComponent] if s has no scheme or no host.
// The path and the query are set when present,
// the fragment is extracted from s in a separate pass and set when present and non-empty.
func ParseWith(d Decomposer, s string) (*Builder, error) {
	parts, err := d.Decompose(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}

	b := New().SetScheme(parts.Scheme).SetHost(parts.Host)
	if err := b.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if parts.Path != "" {
		b.SetPath(parts.Path)
	}
	if parts.HasQuery && parts.RawQuery != "" {
		b.SetQuery(parts.RawQuery)
	}

	frag, ok, err := d.Fragment(s)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}
	if ok && frag != "" {
		b.SetFragment(frag)
	}
	return b, nil
}
