package params

import (
	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/schema"
)

// Resolve computes the effective parameter set for an item of the given
// kind. The result holds exactly one value for every parameter the kind
// recognizes: the one from the innermost layer that defines it, falling back
// to the schema default when no layer does.
//
// Collection and page layers may carry parameters for many kinds at once;
// names the kind does not recognize are simply not applicable and are
// skipped. Local overrides are stricter: they were written against this
// item, so an unrecognized name there fails with UnknownParameterError and
// an ill-typed value with ValidationError.
//
// An entry holding the Unset marker, in any layer, is identical to the key
// being absent; it does not shadow an outer layer's concrete value.
func Resolve(kind domain.Kind, collection, page Layer, local map[string]any) (map[string]any, error) {
	strict := make(map[string]any, len(local))
	for name, value := range local {
		if IsUnset(value) {
			continue
		}
		strict[name] = value
	}
	if err := schema.ValidateParams(kind, strict); err != nil {
		return nil, err
	}

	s := schema.ForKind(kind)
	resolved := s.Defaults()
	for _, layer := range []map[string]any{collection, page} {
		for name, value := range layer {
			if IsUnset(value) {
				continue
			}
			if field, ok := s[name]; ok {
				if err := field.Type.Validate(value); err != nil {
					return nil, &schema.ValidationError{Key: name, Reason: err.Error(), Value: value}
				}
				resolved[name] = value
			}
		}
	}
	for name, value := range strict {
		resolved[name] = value
	}
	return resolved, nil
}
