package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Count int `mapstructure:"count" validate:"gt=0"`
}

type sample struct {
	Mode  string `json:"mode" validate:"oneof=easy medium hard"`
	Inner inner  `mapstructure:"inner"`
}

func TestStruct_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(sample{Mode: "easy", Inner: inner{Count: 1}}))
}

func TestStruct_FieldsError(t *testing.T) {
	v := NewValidator()
	err := v.Struct(sample{Mode: "extreme"})
	require.Error(t, err)

	var fe *FieldsError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Fields, "mode")
	assert.Contains(t, fe.Fields, "inner.count")
	assert.Contains(t, fe.Fields["mode"], "easy medium hard")
	assert.Contains(t, err.Error(), "inner.count")
}

func TestShared(t *testing.T) {
	v := Shared()
	require.NotNil(t, v)
	assert.Same(t, v, Shared())
	assert.NoError(t, v.Struct(sample{Mode: "hard", Inner: inner{Count: 2}}))
}
