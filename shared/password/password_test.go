package password_test

import (
	"airline/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndMatches(t *testing.T) {
	hasher := password.NewWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cretpass")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, hasher.Matches("s3cretpass", hash))
	assert.False(t, hasher.Matches("wrongpass", hash))
	assert.False(t, hasher.Matches("", hash))
	assert.False(t, hasher.Matches("s3cretpass", "not-a-hash"))
}

func TestHasher_EmptyPassword(t *testing.T) {
	_, err := password.New().Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := password.NewWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("s3cretpass")
	require.NoError(t, err)

	second, err := hasher.Hash("s3cretpass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewWithCost_OutOfRange(t *testing.T) {
	hasher := password.NewWithCost(bcrypt.MaxCost + 1)

	hash, err := hasher.Hash("s3cretpass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}

func TestVerify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.Verify("s3cretpass", string(hash)))
	assert.ErrorIs(t, password.Verify("nope", string(hash)), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", string(hash)), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("s3cretpass", ""), password.ErrInvalidPassword)
}
