// Package uri provides [Builder], a fluent builder that assembles a URI from
// scheme, host, path, query parameters and fragment, and parses existing URIs back into it.
//
// # Building
//
//	s := uri.New().
//	    SetScheme("https").
//	    SetHost("example.com").
//	    SetPath("search").
//	    SetQueryParam("q", "go").
//	    SetQueryParam("page", 2).
//	    SetFragment("results").
//	    String()
//	// https://example.com/search?q=go&page=2#results
//
// The path always starts with '/' and the fragment with '#', both are prepended when missing.
// Query parameters are kept in a [params.Bag] in insertion order and rendered without escaping.
//
// # Absent components
//
// The empty string means "absent" for all string setters:
//
//   - SetScheme(""), SetHost("") and SetQuery("") fail with [ErrMissingComponent];
//   - SetPath("") and SetFragment("") do nothing, they never clear a value that was set before.
//
// # Errors
//
// Setters never break a chain. A failing setter leaves the Builder as it was and records
// the error, [Builder.Err] returns what was recorded and [Builder.Build] returns the URI
// only when nothing failed:
//
//	s, err := uri.New().SetScheme("https").SetHost(host).Build()
//	if errors.Is(err, uri.ErrMissingComponent) {
//	    ...
//	}
//
// # Parsing
//
// [Parse] decomposes a URI with [net/url] and fills a new Builder:
//
//	b, err := uri.Parse("https://example.com/foo/bar?a=1#section")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b.SetQueryParam("b", true, uri.BoolAsString()).SetPath("baz")
//	b.String() // https://example.com/baz?a=1&b=true#section
//
// Text that can not be decomposed results in [ErrMalformedURI], URIs without scheme or
// host (e.g. "/path" or "mailto:user@example.com") in [ErrMissingComponent].
// [ParseWith] accepts a custom [Decomposer].
//
// # Thread Safety
//
// Builders are not safe for concurrent modification. When sharing builders across
// goroutines, either use synchronization or create copies using the Clone method.
package uri

//go:generate go tool errtrace -w .
