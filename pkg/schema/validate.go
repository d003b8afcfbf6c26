package schema

import "sort"

// Schema is a map of field names to their expected types.
type Schema map[string]Type

// Fields returns the field names in sorted order.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks if data conforms to the schema. Every schema field is required.
// Errors are reported in field-name order.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	var errs []error
	for _, fieldName := range schema.Fields() {
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{Key: fieldName, Reason: "required"})
			continue
		}
		if err := schema[fieldName].Validate(value); err != nil {
			errs = append(errs, &ValidationError{Key: fieldName, Reason: err.Error(), Value: value})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// ValidatePresent checks only the schema fields present in data.
// Absent fields and explicit nulls are skipped; unknown keys are ignored.
func ValidatePresent(schema Schema, data map[string]any) error {
	var errs []error
	for _, fieldName := range schema.Fields() {
		value, exists := data[fieldName]
		if !exists || value == nil {
			continue
		}
		if err := schema[fieldName].Validate(value); err != nil {
			errs = append(errs, &ValidationError{Key: fieldName, Reason: err.Error(), Value: value})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
