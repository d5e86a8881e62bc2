// Package params implements [Bag], an ordered container of scalar query parameters,
// and [Value], the scalar stored in it.
//
// A Bag is usually obtained from a raw query string:
//
//	q := params.Parse("a=1&b=two&flag")
//	v, _ := q.Get("b")  // params.String("two")
//	q.Set("c", params.Int(3))
//	q.Encode()          // "a=1&b=two&flag=&c=3"
//
// Parsing and encoding are symmetric and verbatim: keys and values are neither
// decoded nor escaped.
//
// Bags are not safe for concurrent modification.
package params

//go:generate go tool errtrace -w .
