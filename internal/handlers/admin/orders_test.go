package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range validStatuses {
		assert.True(t, IsValidStatus(status), status)
	}
}

func TestIsValidStatusInsensibleALaCasse(t *testing.T) {
	assert.True(t, IsValidStatus("PENDING"))
	assert.True(t, IsValidStatus("Delivered"))
	assert.True(t, IsValidStatus("Payment_Received"))
}

func TestIsValidStatusRejette(t *testing.T) {
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("shipped"))
	assert.False(t, IsValidStatus("payment pending")) // espace au lieu d'underscore
	assert.False(t, IsValidStatus("cancelled"))       // orthographe britannique
}
