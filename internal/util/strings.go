package util

import (
	"strings"
	"sync"
)

// EnsurePrefix returns s with the leading byte c, adding it only when missing.
func EnsurePrefix(s string, c byte) string {
	if len(s) > 0 && s[0] == c {
		return s
	}
	return string(c) + s
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
