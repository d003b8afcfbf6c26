// Package schema validates the shape of loosely typed input maps.
//
// Request bodies and input files are first decoded into map[string]any; a Schema
// maps field names to the primitive type each field must have. Validation collects
// every failure into an AggregateError so callers can report all of them at once.
//
//	s := schema.Schema{
//	    "topic":        schema.String(),
//	    "includeImage": schema.Bool(),
//	}
//
//	if err := schema.ValidatePresent(s, data); err != nil {
//	    // 400 Bad Request
//	}
//
// Validate treats every schema field as required. ValidatePresent only checks the
// fields that are present and non-null, which is how optional configuration
// fields are handled.
package schema
