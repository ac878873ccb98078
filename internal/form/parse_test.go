package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 2.5, ParseFloat("2.5", 1))
	assert.Equal(t, 4.0, ParseFloat(" 4 ", 1))
	assert.Equal(t, 1.0, ParseFloat("", 1))
	assert.Equal(t, 1.0, ParseFloat("abc", 1))
	assert.Equal(t, 1.0, ParseFloat("0", 1))
	assert.Equal(t, -2.0, ParseFloat("-2", 1))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 4, ParseInt("4", 3))
	assert.Equal(t, 3, ParseInt("", 3))
	assert.Equal(t, 3, ParseInt("4.5", 3))
	assert.Equal(t, 3, ParseInt("x", 3))
	assert.Equal(t, 3, ParseInt("0", 3))
}
