package uri

// Param is a single query parameter of [Components].
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// Components is a plain snapshot of a Builder, suitable for encoding.
type Components struct {
	URI      string  `json:"uri" yaml:"uri"`
	Scheme   string  `json:"scheme" yaml:"scheme"`
	Host     string  `json:"host" yaml:"host"`
	Path     string  `json:"path,omitempty" yaml:"path,omitempty"`
	Query    []Param `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment string  `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Components returns a snapshot of the Builder's components.
// Query parameter values keep their Go types (string, int64, uint64, float64, bool or nil).
func (b *Builder) Components() Components {
	if b == nil {
		return Components{}
	}

	c := Components{
		URI:      b.String(),
		Scheme:   b.scheme,
		Host:     b.host,
		Path:     b.path,
		Fragment: b.fragment,
	}
	for k, v := range b.query.All() {
		c.Query = append(c.Query, Param{Key: k, Value: v.Interface()})
	}
	return c
}
