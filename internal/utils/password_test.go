package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashOperatorPassword(t *testing.T) {
	hash, err := HashOperatorPassword("s3cret-pass", bcrypt.MinCost)

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, VerifyOperatorPassword("s3cret-pass", hash))
	assert.False(t, VerifyOperatorPassword("wrong-pass", hash))
}

func TestHashOperatorPassword_OutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hash, err := HashOperatorPassword("s3cret-pass", cost)

		assert.NoError(t, err)
		got, err := bcrypt.Cost([]byte(hash))
		assert.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, got)
	}
}
