package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	c, err := parseClassification(`{"tags": ["legal", "contract"], "complexity": 0.8}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"legal", "contract"}, c.Tags)
	assert.Equal(t, 0.8, c.ComplexityScore)
}

func TestParseClassification_CodeFence(t *testing.T) {
	raw := "```json\n{\"tags\": [\"medical\"], \"complexity\": 0.55}\n```"
	c, err := parseClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"medical"}, c.Tags)
	assert.Equal(t, 0.55, c.ComplexityScore)
}

func TestParseClassification_NormalizesTags(t *testing.T) {
	c, err := parseClassification(`{"tags": [" Legal ", "", "MEDICAL"], "complexity": 0.4}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"legal", "medical"}, c.Tags)
}

func TestParseClassification_ClampsComplexity(t *testing.T) {
	c, err := parseClassification(`{"tags": [], "complexity": 1.7}`)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.ComplexityScore)

	c, err = parseClassification(`{"tags": [], "complexity": -0.2}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.ComplexityScore)
}

func TestParseClassification_InvalidJSON(t *testing.T) {
	_, err := parseClassification("the document looks legal to me")
	assert.Error(t, err)
}
