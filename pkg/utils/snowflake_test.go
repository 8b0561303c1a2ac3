package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnowflakeRange(t *testing.T) {
	_, err := NewSnowflake(32, 0)
	assert.Error(t, err)
	_, err = NewSnowflake(0, 32)
	assert.Error(t, err)
	_, err = NewSnowflake(-1, 0)
	assert.Error(t, err)

	sf, err := NewSnowflake(31, 31)
	assert.NoError(t, err)
	assert.NotNil(t, sf)
}

func TestGenerateIDMonotonic(t *testing.T) {
	sf, err := NewSnowflake(1, 1)
	assert.NoError(t, err)

	prev := sf.GenerateID()
	for i := 0; i < 1000; i++ {
		id := sf.GenerateID()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestGenerateEntityIDWithoutInit(t *testing.T) {
	GlobalSnowflake = nil
	id := GenerateEntityID()
	assert.Positive(t, id)
}
