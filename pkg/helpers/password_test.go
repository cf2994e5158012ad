package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

func TestHashPassword(t *testing.T) {
	h1, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := helpers.HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salted hashes must differ")
	assert.True(t, helpers.CompareHashAndPassword(h1, "hunter22"))
	assert.True(t, helpers.CompareHashAndPassword(h2, "hunter22"))
	assert.False(t, helpers.CompareHashAndPassword(h1, "hunter23"))
	assert.False(t, helpers.CompareHashAndPassword("not-a-hash", "hunter22"))
}
