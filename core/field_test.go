package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", Field{Type: StringType, Str: "hello"}, "hello"},
		{"Int field", Field{Type: IntType, Int64: 42}, "42"},
		{"Bool field (true)", Field{Type: BoolType, Int64: 1}, "true"},
		{"Bool field (false)", Field{Type: BoolType, Int64: 0}, "false"},
		{"Float64 field", Field{Type: Float64Type, Float64: 3.14}, "3.14"},
		{"Duration field", Field{Type: DurationType, Int64: int64(5 * time.Second)}, "5s"},
		{"Error field", Field{Type: ErrorType, Str: "an error occurred"}, "an error occurred"},
		{"Any nil", Field{Type: AnyType}, "<nil>"},
		{"Any slice", Field{Type: AnyType, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.StringValue())
		})
	}
}

func TestField_Value(t *testing.T) {
	assert.Equal(t, 42, Field{Type: IntType, Int64: 42}.Value())
	assert.Equal(t, true, Field{Type: BoolType, Int64: 1}.Value())
	assert.Equal(t, 5*time.Second, Field{Type: DurationType, Int64: int64(5 * time.Second)}.Value())

	err := errors.New("boom")
	assert.Equal(t, err, Field{Type: AnyType, Any: err}.Value())
}
