package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/user-management/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("Sup3r$ecret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "Sup3r$ecret"))
}

func TestHashPassword_SaltVariesAcrossCalls(t *testing.T) {
	first, err := auth.HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := auth.HashPassword("same-input", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, auth.ComparePassword(first, "same-input"))
	assert.NoError(t, auth.ComparePassword(second, "same-input"))
}

func TestComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name    string
		hash    string
		plain   string
		wantErr bool
	}{
		{name: "matching password", hash: hash, plain: "correct-horse"},
		{name: "wrong password", hash: hash, plain: "battery-staple", wantErr: true},
		{name: "hash of different password", hash: hash, plain: "correct-horsE", wantErr: true},
		{name: "malformed digest", hash: "not-a-bcrypt-digest", plain: "correct-horse", wantErr: true},
		{name: "empty digest", hash: "", plain: "correct-horse", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ComparePassword(tt.hash, tt.plain)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
