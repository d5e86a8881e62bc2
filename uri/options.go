package uri

// QueryParamOption configures [Builder.SetQueryParam].
type QueryParamOption interface {
	ApplyQueryParam(opts *QueryParamOptions)
}

// QueryParamOptions holds the settings of [Builder.SetQueryParam].
// It is an option itself, so settings can be passed as a struct literal.
type QueryParamOptions struct {
	// BoolAsString stores boolean values as the strings "true" and "false".
	BoolAsString bool
}

// ApplyQueryParam implements [QueryParamOption].
func (o QueryParamOptions) ApplyQueryParam(opts *QueryParamOptions) { *opts = o }

type boolAsString struct{}

func (boolAsString) ApplyQueryParam(opts *QueryParamOptions) { opts.BoolAsString = true }

// BoolAsString returns an option that stores boolean values as strings.
func BoolAsString() QueryParamOption { return boolAsString{} }
