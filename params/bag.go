package params

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/internal/ioutil"
	"github.com/ghettovoice/uribuilder/internal/util"
)

// Bag is an ordered set of query parameters.
//
// Keys are unique and case-sensitive, iteration follows insertion order.
// Overwriting a key keeps its original position.
// The zero Bag is empty and ready to use. Read methods accept a nil *Bag.
type Bag struct {
	keys []string
	vals map[string]Value
}

// New creates a Bag from a map.
// Go maps are unordered, so the keys are inserted in sorted order.
func New(m map[string]Value) *Bag {
	b := &Bag{
		keys: slices.Sorted(maps.Keys(m)),
		vals: make(map[string]Value, len(m)),
	}
	maps.Copy(b.vals, m)
	return b
}

// FromPairs creates a Bag from alternating keys and values, preserving their order.
// Keys must be strings, values are converted with [ValueOf].
func FromPairs(kvs ...any) (*Bag, error) {
	if len(kvs)%2 != 0 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("odd number of arguments: %d", len(kvs)))
	}

	b := new(Bag)
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("key #%d is %T, want string", i/2, kvs[i]))
		}
		v, err := ValueOf(kvs[i+1])
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("value of %q: %w", k, err))
		}
		b.Set(k, v)
	}
	return b, nil
}

// Parse builds a Bag from a raw query string like "a=1&b=2".
//
// The input is split on '&', empty pieces are skipped and every piece is split
// at the first '='. A piece without '=' maps the key to an empty string.
// Later duplicates overwrite earlier ones. Keys and values are kept verbatim,
// no percent-decoding is done. Parse never fails.
func Parse(raw string) *Bag {
	b := new(Bag)
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		b.Set(k, String(v))
	}
	return b
}

// Len returns the number of parameters.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Get returns the value stored under key.
func (b *Bag) Get(key string) (Value, bool) {
	if b == nil {
		return Value{}, false
	}
	v, ok := b.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (b *Bag) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Set stores v under key, replacing the previous value.
func (b *Bag) Set(key string, v Value) *Bag {
	if b.vals == nil {
		b.vals = make(map[string]Value)
	}
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = v
	return b
}

// Del removes key.
func (b *Bag) Del(key string) *Bag {
	if _, ok := b.vals[key]; !ok {
		return b
	}
	delete(b.vals, key)
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool { return k == key })
	return b
}

// Clear removes all parameters.
func (b *Bag) Clear() *Bag {
	b.keys = b.keys[:0]
	clear(b.vals)
	return b
}

// Keys returns a copy of the keys in iteration order.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}
	return slices.Clone(b.keys)
}

// All returns an iterator over the parameters in iteration order.
func (b *Bag) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if b == nil {
			return
		}
		for _, k := range b.keys {
			if !yield(k, b.vals[k]) {
				return
			}
		}
	}
}

// Map returns a snapshot of all parameters.
// Modifying the returned map does not affect the Bag.
func (b *Bag) Map() map[string]Value {
	m := make(map[string]Value, b.Len())
	for k, v := range b.All() {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy of the Bag.
func (b *Bag) Clone() *Bag {
	if b == nil {
		return nil
	}
	return &Bag{
		keys: slices.Clone(b.keys),
		vals: maps.Clone(b.vals),
	}
}

// Equal reports whether val holds the same parameters.
// The order of parameters is not taken into account.
func (b *Bag) Equal(val any) bool {
	var other *Bag
	switch v := val.(type) {
	case Bag:
		other = &v
	case *Bag:
		other = v
	default:
		return false
	}

	if b == other {
		return true
	} else if b == nil || other == nil {
		return false
	}
	return cmp.Equal(b.Map(), other.Map())
}

// RenderTo writes the parameters as "k1=v1&k2=v2" to w.
// Values are written with [Value.String], nothing is escaped.
func (b *Bag) RenderTo(w io.Writer) (num int, err error) {
	if b.Len() == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, k := range b.keys {
		if i > 0 {
			cw.WriteString("&")
		}
		cw.WriteString(k)
		cw.WriteString("=")
		cw.WriteString(b.vals[k].String())
	}
	return errtrace.Wrap2(cw.Result())
}

// Encode returns the parameters as a query string without the leading '?'.
func (b *Bag) Encode() string {
	if b.Len() == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	b.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the same as [Bag.Encode].
func (b *Bag) String() string { return b.Encode() }

// Format implements [fmt.Formatter].
func (b *Bag) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "params.Bag%#v", b.Map())
			return
		}
		fmt.Fprint(f, b.Encode())
	case 'q':
		fmt.Fprint(f, strconv.Quote(b.Encode()))
	default:
		fmt.Fprintf(f, "%%!%c(*params.Bag=%s)", verb, b.Encode())
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (b *Bag) MarshalText() ([]byte, error) {
	return []byte(b.Encode()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *Bag) UnmarshalText(text []byte) error {
	*b = *Parse(string(text))
	return nil
}
