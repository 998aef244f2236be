package models

import (
	"errors"
	"testing"
)

func TestValidate_NegativeIdsAreUnknownNodes(t *testing.T) {
	start := -2

	tests := []struct {
		name string
		err  error
	}{
		{"traverse start", (&TraverseRequest{Mode: ModeBFS, Scope: ScopeSingle, Start: &start}).Validate()},
		{"edge source", ValidateEdges([]Edge{{U: 0, V: 1}, {U: -1, V: 2}})},
		{"edge target", ValidateEdges([]Edge{{U: 3, V: -7}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrUnknownNode) {
				t.Errorf("error = %v, want ErrUnknownNode", tt.err)
			}
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", tt.err)
			}
		})
	}
}

func TestValidate_OtherErrorsAreNotUnknownNodes(t *testing.T) {
	err := (&TraverseRequest{Mode: "zigzag", Scope: ScopeAll}).Validate()
	if !errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrUnknownNode) {
		t.Errorf("error = %v, want only ErrInvalidArgument", err)
	}

	if err := ValidateEdges([]Edge{{U: 0, V: 0}}); err != nil {
		t.Errorf("ValidateEdges: %v", err)
	}
}
