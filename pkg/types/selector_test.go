package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectModeString(t *testing.T) {
	assert.Equal(t, "bytes", SelectBytes.String())
	assert.Equal(t, "characters", SelectChars.String())
	assert.Equal(t, "fields", SelectFields.String())
	assert.Equal(t, "SelectMode(0)", SelectMode(0).String())
}

func TestSelectModeValid(t *testing.T) {
	assert.True(t, SelectBytes.Valid())
	assert.True(t, SelectChars.Valid())
	assert.True(t, SelectFields.Valid())

	// The zero value means "no selector chosen" and is invalid.
	assert.False(t, SelectMode(0).Valid())
	assert.False(t, SelectMode(99).Valid())
}
