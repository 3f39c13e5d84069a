package schema

import "github.com/dashwright/dashwright/pkg/domain"

// ValidateParams checks explicit overrides against the closed schema for an
// item kind. Returns an error with all failures found: unknown names become
// UnknownParameterError (with a closest-match suggestion), recognized names
// with ill-typed values become ValidationError. Values equal to the unset
// marker are skipped by the caller before reaching here, so nil means "value
// must validate".
func ValidateParams(kind domain.Kind, params map[string]any) error {
	if len(params) == 0 {
		return nil
	}

	s := ForKind(kind)
	var errs []error

	for name, value := range params {
		field, ok := s[name]
		if !ok {
			errs = append(errs, &UnknownParameterError{
				Name:       name,
				Kind:       string(kind),
				Suggestion: closest(name, s.Names()),
			})
			continue
		}
		if err := field.Type.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
