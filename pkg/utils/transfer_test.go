package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(7), Transfer(int64(7)))
	// JSON numbers in JWT claims arrive as float64
	assert.Equal(t, int64(7), Transfer(float64(7)))
	assert.Equal(t, int64(7), Transfer("7"))
	assert.Equal(t, int64(-1), Transfer("abc"))
	assert.Equal(t, int64(-1), Transfer(nil))
	assert.Equal(t, int64(-1), Transfer(struct{}{}))
}

func TestConvertStringToInt64(t *testing.T) {
	v, err := ConvertStringToInt64("123")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), v)

	_, err = ConvertStringToInt64("12x")
	assert.Error(t, err)
}
