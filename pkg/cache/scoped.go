package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or
// projects sharing one backend get isolated namespaces.
//
// Example usage:
//
//	// Keys scoped to one project
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "storefront:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ConversionKey generates a prefixed key for converted graphs.
func (k *ScopedKeyer) ConversionKey(format, docHash string) string {
	return k.prefix + k.inner.ConversionKey(format, docHash)
}

// RenderKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) RenderKey(graphHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(graphHash, opts)
}
