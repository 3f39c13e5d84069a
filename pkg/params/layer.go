// Package params resolves the layered default-parameter chain: collection
// defaults, page defaults and item-level overrides collapse into one
// effective parameter set per item, innermost definition winning per key.
package params

// Layer is one scope's set of named default values in the override chain.
type Layer map[string]any

// unsetMarker is the type backing Unset.
type unsetMarker struct{}

// Unset is the explicit "not set" value. A layer entry holding Unset is
// treated identically to the key being absent: it never shadows an outer
// layer's concrete value, and it contributes nothing of its own.
var Unset = unsetMarker{}

// IsUnset reports whether a value is the explicit unset marker.
func IsUnset(v any) bool {
	_, ok := v.(unsetMarker)
	return ok
}

// Clone returns an independent copy of the layer. Collections hand clones
// to pages so sibling collections never share parameter state.
func (l Layer) Clone() Layer {
	if l == nil {
		return nil
	}
	dup := make(Layer, len(l))
	for k, v := range l {
		dup[k] = v
	}
	return dup
}
