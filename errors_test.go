package litedb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{name: "nil", err: nil, want: ErrorClassNone},
		{name: "closed", err: ErrClosed, want: ErrorClassMisuse},
		{name: "wrapped arity", err: fmt.Errorf("row 2: %w", ErrRowArity), want: ErrorClassMisuse},
		{name: "empty batch", err: ErrEmptyBatch, want: ErrorClassMisuse},
		{name: "foreign error", err: errors.New("boom"), want: ErrorClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassifyEngineError(t *testing.T) {
	assert.Equal(t, ErrorClassConstraint, classifyEngineError(true, "UNIQUE constraint failed: users.id"))
	assert.Equal(t, ErrorClassSyntax, classifyEngineError(false, `near "TABL": syntax error`))
	assert.Equal(t, ErrorClassSyntax, classifyEngineError(false, "incomplete input"))
	assert.Equal(t, ErrorClassOperational, classifyEngineError(false, "no such table: ghost"))
}

func TestErrorClassesEnum(t *testing.T) {
	assert.Equal(t, 6, ErrorClasses.Len())
	assert.Equal(t, &ErrorClassSyntax, ErrorClasses.Parse("syntax"))
	assert.Nil(t, ErrorClasses.Parse("fatal"))
}
