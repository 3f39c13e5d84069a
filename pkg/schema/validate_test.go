package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashwright/dashwright/pkg/domain"
)

func TestValidateParams_Recognized(t *testing.T) {
	err := ValidateParams(domain.KindVisualization, map[string]any{
		"color":       "red",
		"bins":        20,
		"interactive": true,
		"theme":       "dark",
	})
	assert.NoError(t, err)
}

func TestValidateParams_UnknownSuggestsClosest(t *testing.T) {
	err := ValidateParams(domain.KindVisualization, map[string]any{
		"colour": "red",
	})
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "colour", unknown.Name)
	assert.Equal(t, "color", unknown.Suggestion)
	assert.Contains(t, unknown.Error(), `did you mean "color"`)
}

func TestValidateParams_UnknownWithoutNeighbor(t *testing.T) {
	err := ValidateParams(domain.KindVisualization, map[string]any{
		"zzzzzzzzzz": 1,
	})
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
}

func TestValidateParams_TypeMismatch(t *testing.T) {
	err := ValidateParams(domain.KindVisualization, map[string]any{
		"bins": "thirty",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "bins", vErr.Key)
}

func TestValidateParams_FloatAcceptsWholeNumbers(t *testing.T) {
	assert.NoError(t, ValidateParams(domain.KindVisualization, map[string]any{"opacity": 0.4}))
	assert.NoError(t, ValidateParams(domain.KindVisualization, map[string]any{"opacity": 1}))

	err := ValidateParams(domain.KindVisualization, map[string]any{"opacity": "faint"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "opacity", vErr.Key)
}

func TestValidateParams_EnumValues(t *testing.T) {
	assert.NoError(t, ValidateParams(domain.KindText, map[string]any{"align": "center"}))

	err := ValidateParams(domain.KindText, map[string]any{"align": "middle"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "align", vErr.Key)
}

func TestValidateParams_AggregatesFailures(t *testing.T) {
	err := ValidateParams(domain.KindVisualization, map[string]any{
		"colour": "red",
		"bins":   "thirty",
	})
	require.Error(t, err)
	assert.Len(t, ValidationErrors(err), 2)
}

func TestValidateParams_KindsWithoutParameters(t *testing.T) {
	// Dividers recognize nothing, so any override is unknown.
	err := ValidateParams(domain.KindDivider, map[string]any{"color": "red"})
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)

	assert.NoError(t, ValidateParams(domain.KindDivider, nil))
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("bins", "bins"))
	assert.Equal(t, 1, editDistance("colour", "color"))
	assert.Equal(t, 4, editDistance("", "bins"))
}
