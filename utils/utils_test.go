package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hola mundo", Normalize("  Hola Mundo\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 2, RuneLen("sí"))
	assert.Equal(t, 2, RuneLen("ia"))
	assert.Equal(t, 0, RuneLen(""))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, -3, Min(4, -3))
}
