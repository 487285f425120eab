package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Length  int    `json:"length" validate:"omitempty,min=8,max=128"`
	Exclude string `json:"exclude" validate:"max=4"`
	Name    string `json:"name" validate:"required"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Name: "x"}))
	assert.NoError(t, v.Validate(&sampleRequest{Name: "x", Length: 16, Exclude: "bob"}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Length: 4, Exclude: "alice"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"length", "exclude", "name"}, validationErr.Fields())
	assert.Contains(t, err.Error(), "length must be at least 8")
	assert.Contains(t, err.Error(), "exclude must be at most 4")
	assert.Contains(t, err.Error(), "name is required")
}
