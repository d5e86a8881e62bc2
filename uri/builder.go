package uri

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/ioutil"
	"github.com/ghettovoice/uribuilder/internal/util"
	"github.com/ghettovoice/uribuilder/params"
)

// Builder assembles a URI from scheme, host, path, query parameters and fragment.
//
// Setters return the same Builder, so calls can be chained.
// A setter that fails leaves the Builder unchanged and records the error,
// see [Builder.Err].
//
// The zero Builder is empty and ready to use.
type Builder struct {
	scheme   string
	host     string
	path     string
	query    *params.Bag
	fragment string
	errs     []error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{query: new(params.Bag)}
}

func (b *Builder) fail(err error) *Builder {
	b.errs = append(b.errs, errtrace.Wrap(err))
	return b
}

func (b *Builder) bag() *params.Bag {
	if b.query == nil {
		b.query = new(params.Bag)
	}
	return b.query
}

// SetScheme sets the scheme verbatim.
// An empty scheme is absent: [ErrMissingComponent] is recorded and the current scheme is kept.
func (b *Builder) SetScheme(scheme string) *Builder {
	if scheme == "" {
		return b.fail(newMissingComponentErr("scheme"))
	}
	b.scheme = scheme
	return b
}

// Scheme returns the scheme or an empty string if it was never set.
func (b *Builder) Scheme() string {
	if b == nil {
		return ""
	}
	return b.scheme
}

// SetHost sets the host verbatim.
// An empty host is absent: [ErrMissingComponent] is recorded and the current host is kept.
func (b *Builder) SetHost(host string) *Builder {
	if host == "" {
		return b.fail(newMissingComponentErr("host"))
	}
	b.host = host
	return b
}

// Host returns the host or an empty string if it was never set.
func (b *Builder) Host() string {
	if b == nil {
		return ""
	}
	return b.host
}

// SetPath sets the path, prepending '/' when it is missing.
// An empty path is absent and does nothing, it does not clear the current path
// and does not produce the root path: pass "/" for that.
func (b *Builder) SetPath(path string) *Builder {
	if path == "" {
		return b
	}
	b.path = util.EnsurePrefix(path, '/')
	return b
}

// Path returns the path and whether it was set.
func (b *Builder) Path() (string, bool) {
	if b == nil {
		return "", false
	}
	return b.path, b.path != ""
}

// SetQuery replaces all query parameters with the ones parsed from a raw query string
// (without the leading '?'), see [params.Parse].
// An empty query is absent: [ErrMissingComponent] is recorded and the current parameters are kept.
// SetQuery never clears the parameters, use Query().Clear() for that.
func (b *Builder) SetQuery(query string) *Builder {
	if query == "" {
		return b.fail(newMissingComponentErr("query"))
	}
	b.query = params.Parse(query)
	return b
}

// Query returns the live query parameters container.
func (b *Builder) Query() *params.Bag {
	if b == nil {
		return nil
	}
	return b.bag()
}

// SetQueryParam sets a single query parameter, overwriting the previous value of key.
//
// value must be a scalar accepted by [params.ValueOf], otherwise [ErrInvalidParameterType]
// is recorded and the parameters are kept unchanged.
// Booleans are stored as booleans unless the [BoolAsString] option is given.
func (b *Builder) SetQueryParam(key string, value any, opts ...QueryParamOption) *Builder {
	var o QueryParamOptions
	for _, opt := range opts {
		opt.ApplyQueryParam(&o)
	}

	v, err := params.ValueOf(value)
	if err != nil {
		return b.fail(fmt.Errorf("query parameter %q: %w", key, err))
	}
	if o.BoolAsString && v.Kind() == params.KindBool {
		v = params.String(v.String())
	}
	b.bag().Set(key, v)
	return b
}

// DelQueryParam removes a single query parameter.
func (b *Builder) DelQueryParam(key string) *Builder {
	b.bag().Del(key)
	return b
}

// QueryParams returns a snapshot of all query parameters.
func (b *Builder) QueryParams() map[string]params.Value {
	if b == nil {
		return map[string]params.Value{}
	}
	return b.query.Map()
}

// SetFragment sets the fragment, prepending '#' when it is missing.
// An empty fragment does nothing, it does not clear the current fragment.
func (b *Builder) SetFragment(fragment string) *Builder {
	if fragment == "" {
		return b
	}
	b.fragment = util.EnsurePrefix(fragment, '#')
	return b
}

// Fragment returns the fragment including the leading '#' and whether it was set.
func (b *Builder) Fragment() (string, bool) {
	if b == nil {
		return "", false
	}
	return b.fragment, b.fragment != ""
}

// Err returns the errors recorded by failed setters since the Builder was created
// or since the last call to [Builder.ResetErr].
// Several errors are joined, use [errors.Is] to match them.
func (b *Builder) Err() error {
	if b == nil {
		return nil
	}
	return errtrace.Wrap(errorutil.Join(b.errs...))
}

// ResetErr forgets the recorded errors.
func (b *Builder) ResetErr() *Builder {
	b.errs = nil
	return b
}

// Build returns the URI string, or the recorded errors if any setter failed.
func (b *Builder) Build() (string, error) {
	if err := b.Err(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return b.String(), nil
}

// RenderTo writes the URI to w as "scheme://host[path][?query][#fragment]".
//
// Absent components are skipped without adding separators.
// Query parameters are written in iteration order as "key=value" pairs joined by '&'.
// Nothing is escaped or validated.
func (b *Builder) RenderTo(w io.Writer) (num int, err error) {
	if b == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(b.scheme, "://", b.host)
	if b.path != "" {
		cw.WriteString(b.path)
	}
	if b.query.Len() > 0 {
		cw.WriteString("?")
		cw.Call(b.query.RenderTo)
	}
	if b.fragment != "" {
		cw.WriteString(b.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the URI string.
func (b *Builder) Render() string {
	if b == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	b.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the URI string.
// Recorded errors are ignored, an incomplete Builder renders as much as it has,
// e.g. an empty one renders as "://".
func (b *Builder) String() string {
	if b == nil {
		return ""
	}
	return b.Render()
}

// Format implements fmt.Formatter for custom formatting of the Builder.
func (b *Builder) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			b.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, b.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(b.String()))
		return
	default:
		type hideMethods Builder
		type Builder hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Builder)(b))
		return
	}
}

// Clone returns a deep copy of the Builder, recorded errors included.
func (b *Builder) Clone() *Builder {
	if b == nil {
		return nil
	}
	b2 := *b
	b2.query = b.query.Clone()
	b2.errs = slices.Clone(b.errs)
	return &b2
}

// Equal reports whether val is a Builder with the same components.
// Components are compared verbatim, query parameters regardless of their order.
func (b *Builder) Equal(val any) bool {
	var other *Builder
	switch v := val.(type) {
	case Builder:
		other = &v
	case *Builder:
		other = v
	default:
		return false
	}

	if b == other {
		return true
	} else if b == nil || other == nil {
		return false
	}
	return b.scheme == other.scheme &&
		b.host == other.host &&
		b.path == other.path &&
		b.fragment == other.fragment &&
		(b.query.Len() == 0 && other.query.Len() == 0 || b.query.Equal(other.query))
}

// IsValid reports whether the Builder has both a scheme and a host.
func (b *Builder) IsValid() bool {
	return b != nil && b.scheme != "" && b.host != ""
}

// URL converts the Builder to a [net/url.URL].
func (b *Builder) URL() (*url.URL, error) {
	if b == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil builder"))
	}
	u, err := url.Parse(b.String())
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}
	return u, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (b *Builder) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// On error the Builder is left unchanged.
func (b *Builder) UnmarshalText(text []byte) error {
	b1, err := Parse(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*b = *b1
	return nil
}
