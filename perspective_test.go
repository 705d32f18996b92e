package perspective

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	cases := map[string]Method{
		"nearest":           NearestNeighbor,
		"NN":                NearestNeighbor,
		" nearest-neighbor": NearestNeighbor,
		"bilinear":          Bilinear,
		"Linear":            Bilinear,
	}
	for s, expected := range cases {
		m, err := ParseMethod(s)
		assert.NoError(t, err, s)
		assert.Equal(t, expected, m, s)
	}

	_, err := ParseMethod("bicubic")
	assert.True(t, IsValidationError(err))
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "nearest", NearestNeighbor.String())
	assert.Equal(t, "bilinear", Bilinear.String())
	assert.Equal(t, "unknown", Method(7).String())

	assert.NoError(t, Bilinear.Validate())
	assert.Error(t, Method(-1).Validate())
}
