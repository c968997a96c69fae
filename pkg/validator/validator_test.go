package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=low high"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&sample{Level: "mid"})
	require.Len(t, errs, 2)
	require.Equal(t, "sample.Name", errs[0].FailedField)
	require.Equal(t, "required", errs[0].Tag)
	require.Equal(t, "oneof", errs[1].Tag)
	require.Equal(t, "low high", errs[1].Value)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&sample{Name: "ok", Level: "low"}))

	err := Validate(&sample{Level: "low"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample.Name")
}
