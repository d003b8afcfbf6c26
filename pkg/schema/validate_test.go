package schema

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidate_Success(t *testing.T) {
	schema := Schema{
		"topic":        String(),
		"includeImage": Bool(),
	}

	data := map[string]any{
		"topic":        "AI",
		"includeImage": true,
	}

	if err := Validate(schema, data); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MissingField(t *testing.T) {
	schema := Schema{
		"topic": String(),
		"niche": String(),
	}

	err := Validate(schema, map[string]any{"topic": "AI"})
	if err == nil {
		t.Fatal("Validate() should return error for missing field")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(aggr.Errors))
	}

	validErr, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}
	if validErr.Key != "niche" || validErr.Reason != "required" {
		t.Errorf("got %+v, want niche/required", validErr)
	}
}

func TestValidate_MultipleErrorsSorted(t *testing.T) {
	schema := Schema{
		"topic":        String(),
		"enableDMs":    Bool(),
		"includeImage": Bool(),
	}

	data := map[string]any{
		"topic":        42.0,
		"enableDMs":    "yes",
		"includeImage": 1.0,
	}

	errs := ValidationErrors(Validate(schema, data))
	if len(errs) != 3 {
		t.Fatalf("Validate() = %d errors, want 3", len(errs))
	}

	want := []string{"enableDMs", "includeImage", "topic"}
	for i, err := range errs {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error %d should be *ValidationError, got %T", i, err)
		}
		if ve.Key != want[i] {
			t.Errorf("error %d Key = %q, want %q", i, ve.Key, want[i])
		}
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	if err := Validate(nil, map[string]any{"topic": "AI"}); err != nil {
		t.Errorf("Validate() with nil schema should return nil, got %v", err)
	}
}

func TestValidatePresent(t *testing.T) {
	schema := Schema{
		"topic":          String(),
		"targetAccounts": String(),
		"enableDMs":      Bool(),
	}

	tests := []struct {
		name    string
		data    map[string]any
		wantErr []string
	}{
		{name: "all absent", data: map[string]any{}},
		{name: "null skipped", data: map[string]any{"targetAccounts": nil}},
		{name: "unknown ignored", data: map[string]any{"extra": 1}},
		{name: "wrong type", data: map[string]any{"enableDMs": "true"}, wantErr: []string{"enableDMs"}},
		{
			name:    "several wrong",
			data:    map[string]any{"topic": []any{"a"}, "targetAccounts": false},
			wantErr: []string{"targetAccounts", "topic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidationErrors(ValidatePresent(schema, tt.data))
			if len(errs) != len(tt.wantErr) {
				t.Fatalf("ValidatePresent() = %v, want keys %v", errs, tt.wantErr)
			}
			for i, err := range errs {
				if ve := err.(*ValidationError); ve.Key != tt.wantErr[i] {
					t.Errorf("error %d Key = %q, want %q", i, ve.Key, tt.wantErr[i])
				}
			}
		})
	}
}

func TestAggregateError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("decode: %w", &AggregateError{Errors: []error{
		&ValidationError{Key: "tone", Reason: "expected string, got float64", Value: 1.0},
	}})

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should reach the ValidationError")
	}
	if got := wrapped.Error(); got != `decode: field "tone": expected string, got float64` {
		t.Errorf("Error() = %q", got)
	}
	if len(ValidationErrors(wrapped)) != 1 {
		t.Error("ValidationErrors should see through wrapping")
	}
}

func TestCustomType(t *testing.T) {
	nonEmpty := Custom("non_empty", func(v any) error {
		s, ok := v.(string)
		if !ok || s == "" {
			return fmt.Errorf("must be a non-empty string")
		}
		return nil
	})

	if err := Validate(Schema{"topic": nonEmpty}, map[string]any{"topic": ""}); err == nil {
		t.Error("custom validator should reject empty string")
	}
	if nonEmpty.Name() != "non_empty" {
		t.Errorf("Name() = %q", nonEmpty.Name())
	}
}
