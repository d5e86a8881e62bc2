package params_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
	"github.com/ghettovoice/uribuilder/params"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		raw      string
		wantKeys []string
		wantMap  map[string]params.Value
	}{
		{"empty", "", nil, map[string]params.Value{}},
		{"single", "a=1", []string{"a"}, map[string]params.Value{"a": params.String("1")}},
		{
			"multiple",
			"b=2&a=1",
			[]string{"b", "a"},
			map[string]params.Value{"a": params.String("1"), "b": params.String("2")},
		},
		{"no equals", "flag", []string{"flag"}, map[string]params.Value{"flag": params.String("")}},
		{"empty value", "a=", []string{"a"}, map[string]params.Value{"a": params.String("")}},
		{"extra equals", "a=b=c", []string{"a"}, map[string]params.Value{"a": params.String("b=c")}},
		{"empty key", "=x", []string{""}, map[string]params.Value{"": params.String("x")}},
		{
			"empty pieces",
			"&a=1&&b=2&",
			[]string{"a", "b"},
			map[string]params.Value{"a": params.String("1"), "b": params.String("2")},
		},
		{
			"duplicate overwrites in place",
			"a=1&b=2&a=3",
			[]string{"a", "b"},
			map[string]params.Value{"a": params.String("3"), "b": params.String("2")},
		},
		{"kept verbatim", "q=a%20b+c", []string{"q"}, map[string]params.Value{"q": params.String("a%20b+c")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			b := params.Parse(c.raw)
			if diff := cmp.Diff(b.Keys(), c.wantKeys); diff != "" {
				t.Errorf("params.Parse(%q).Keys() mismatch\ndiff (-got +want):\n%v", c.raw, diff)
			}
			if diff := cmp.Diff(b.Map(), c.wantMap); diff != "" {
				t.Errorf("params.Parse(%q).Map() mismatch\ndiff (-got +want):\n%v", c.raw, diff)
			}
		})
	}
}

func TestBag_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		bag  *params.Bag
		want string
	}{
		{"nil", nil, ""},
		{"zero", &params.Bag{}, ""},
		{"parsed", params.Parse("b=2&a=1&flag"), "b=2&a=1&flag="},
		{
			"mixed values",
			new(params.Bag).
				Set("s", params.String("x")).
				Set("i", params.Int(-1)).
				Set("f", params.Float(0.5)).
				Set("t", params.Bool(true)).
				Set("n", params.Null()),
			"s=x&i=-1&f=0.5&t=true&n=",
		},
		{
			"from map is sorted",
			params.New(map[string]params.Value{"z": params.Int(1), "a": params.Int(2)}),
			"a=2&z=1",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.bag.Encode(); got != c.want {
				t.Errorf("bag.Encode() = %q, want %q", got, c.want)
			}
			if got := c.bag.String(); got != c.want {
				t.Errorf("bag.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestBag_SetGetDel(t *testing.T) {
	t.Parallel()

	var b params.Bag
	if b.Len() != 0 {
		t.Fatalf("zero bag Len() = %d, want 0", b.Len())
	}

	b.Set("a", params.Int(1)).Set("b", params.Int(2)).Set("a", params.String("x"))
	if got, ok := b.Get("a"); !ok || got != params.String("x") {
		t.Errorf("b.Get(\"a\") = %v, %v, want x, true", got, ok)
	}
	if _, ok := b.Get("A"); ok {
		t.Error("b.Get(\"A\") ok = true, want false (keys are case-sensitive)")
	}
	if diff := cmp.Diff(b.Keys(), []string{"a", "b"}); diff != "" {
		t.Errorf("b.Keys() mismatch\ndiff (-got +want):\n%v", diff)
	}

	b.Del("a").Del("missing")
	if b.Has("a") {
		t.Error("b.Has(\"a\") = true after Del, want false")
	}
	if diff := cmp.Diff(b.Keys(), []string{"b"}); diff != "" {
		t.Errorf("b.Keys() after Del mismatch\ndiff (-got +want):\n%v", diff)
	}

	b.Clear()
	if b.Len() != 0 || b.Has("b") {
		t.Errorf("b after Clear() = %q, want empty", b.Encode())
	}
	b.Set("c", params.Int(3))
	if got := b.Encode(); got != "c=3" {
		t.Errorf("b.Encode() after Clear and Set = %q, want \"c=3\"", got)
	}
}

func TestBag_MapIsSnapshot(t *testing.T) {
	t.Parallel()

	b := params.Parse("a=1")
	m := b.Map()
	m["a"] = params.String("changed")
	m["b"] = params.String("new")

	if got, _ := b.Get("a"); got != params.String("1") {
		t.Errorf("b.Get(\"a\") = %v after modifying snapshot, want 1", got)
	}
	if b.Has("b") {
		t.Error("b.Has(\"b\") = true after modifying snapshot, want false")
	}

	keys := b.Keys()
	keys[0] = "z"
	if got := b.Encode(); got != "a=1" {
		t.Errorf("b.Encode() = %q after modifying keys copy, want \"a=1\"", got)
	}
}

func TestBag_All(t *testing.T) {
	t.Parallel()

	b := params.Parse("c=3&a=1&b=2")

	var got []string
	for k, v := range b.All() {
		got = append(got, k+":"+v.String())
	}
	if diff := cmp.Diff(got, []string{"c:3", "a:1", "b:2"}); diff != "" {
		t.Errorf("b.All() mismatch\ndiff (-got +want):\n%v", diff)
	}

	got = got[:0]
	for k := range b.All() {
		got = append(got, k)
		break
	}
	if diff := cmp.Diff(got, []string{"c"}); diff != "" {
		t.Errorf("b.All() with break mismatch\ndiff (-got +want):\n%v", diff)
	}

	for range (*params.Bag)(nil).All() {
		t.Error("nil bag All() yielded a value")
	}
}

func TestBag_Clone(t *testing.T) {
	t.Parallel()

	if got := (*params.Bag)(nil).Clone(); got != nil {
		t.Errorf("nil bag Clone() = %v, want nil", got)
	}

	b := params.Parse("a=1&b=2")
	b2 := b.Clone()
	b2.Set("a", params.Int(9)).Del("b").Set("c", params.Int(3))

	if got := b.Encode(); got != "a=1&b=2" {
		t.Errorf("b.Encode() after modifying clone = %q, want \"a=1&b=2\"", got)
	}
	if got := b2.Encode(); got != "a=9&c=3" {
		t.Errorf("b2.Encode() = %q, want \"a=9&c=3\"", got)
	}
}

func TestBag_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		bag  *params.Bag
		val  any
		want bool
	}{
		{"nil ptr to nil", nil, nil, false},
		{"nil ptr to nil ptr", nil, (*params.Bag)(nil), true},
		{"zero to nil ptr", &params.Bag{}, (*params.Bag)(nil), false},
		{"zero to zero", &params.Bag{}, &params.Bag{}, true},
		{"zero to zero val", &params.Bag{}, params.Bag{}, true},
		{"type mismatch", params.Parse("a=1"), "a=1", false},
		{"same", params.Parse("a=1&b=2"), params.Parse("a=1&b=2"), true},
		{"order ignored", params.Parse("a=1&b=2"), params.Parse("b=2&a=1"), true},
		{"value kind differs", params.Parse("a=1"), new(params.Bag).Set("a", params.Int(1)), false},
		{"value differs", params.Parse("a=1"), params.Parse("a=2"), false},
		{"key missing", params.Parse("a=1&b=2"), params.Parse("a=1"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.bag.Equal(c.val); got != c.want {
				t.Errorf("bag.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestFromPairs(t *testing.T) {
	t.Parallel()

	b, err := params.FromPairs("z", 1, "a", true, "m", "x", "n", nil)
	if err != nil {
		t.Fatalf("params.FromPairs() error = %v, want nil", err)
	}
	if got, want := b.Encode(), "z=1&a=true&m=x&n="; got != want {
		t.Errorf("b.Encode() = %q, want %q", got, want)
	}

	if _, err := params.FromPairs("a"); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("params.FromPairs(\"a\") error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
	if _, err := params.FromPairs(1, "a"); !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("params.FromPairs(1, \"a\") error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
	if _, err := params.FromPairs("a", []int{1}); !errors.Is(err, params.ErrInvalidType) {
		t.Errorf("params.FromPairs(\"a\", []int{1}) error = %v, want %v", err, params.ErrInvalidType)
	}
}

func TestBag_RenderTo(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	n, err := params.Parse("a=1&b").RenderTo(&sb)
	if err != nil {
		t.Fatalf("bag.RenderTo() error = %v, want nil", err)
	}
	if got := sb.String(); got != "a=1&b=" {
		t.Errorf("sb.String() = %q, want \"a=1&b=\"", got)
	}
	if n != sb.Len() {
		t.Errorf("bag.RenderTo() n = %d, want %d", n, sb.Len())
	}
}

func TestBag_Format(t *testing.T) {
	t.Parallel()

	b := params.Parse("a=1&b=x")
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "a=1&b=x"},
		{"%v", "a=1&b=x"},
		{"%q", `"a=1&b=x"`},
	}

	for _, c := range cases {
		if got := fmt.Sprintf(c.format, b); got != c.want {
			t.Errorf("fmt.Sprintf(%q, bag) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestBag_MarshalText(t *testing.T) {
	t.Parallel()

	text, err := params.Parse("a=1&b=2").MarshalText()
	if err != nil {
		t.Fatalf("bag.MarshalText() error = %v, want nil", err)
	}
	if string(text) != "a=1&b=2" {
		t.Errorf("bag.MarshalText() = %q, want \"a=1&b=2\"", text)
	}

	b := params.Parse("old=1")
	if err := b.UnmarshalText([]byte("x=9&y")); err != nil {
		t.Fatalf("bag.UnmarshalText() error = %v, want nil", err)
	}
	if got := b.Encode(); got != "x=9&y=" {
		t.Errorf("b.Encode() after UnmarshalText = %q, want \"x=9&y=\"", got)
	}
}
