package crypto

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, h.(*bcryptHasher).cost)
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{-1, 3, bcrypt.MaxCost + 1} {
		_, err := NewBcryptHasher(cost)
		assert.ErrorIs(t, err, ErrInvalidCost, "cost %d", cost)
	}
}

func TestHash_NeverEqualsPlaintextAndEncodesCost(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	cost, err := Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHash_SaltsEveryCall(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_TooLongPassword(t *testing.T) {
	h := newTestHasher(t)
	password := strings.Repeat("p", 73)

	_, err := h.Hash(password)
	require.ErrorIs(t, err, ErrHashingFailed)
	assert.NotContains(t, err.Error(), password)
}

func TestCompare(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hash      string
		candidate string
		want      bool
		wantErr   error
	}{
		{name: "match", hash: hash, candidate: "secret123", want: true},
		{name: "mismatch", hash: hash, candidate: "wrong", want: false},
		{name: "empty candidate", hash: hash, candidate: "", want: false},
		{name: "malformed hash", hash: "not-a-hash", candidate: "secret123", wantErr: ErrComparisonFailed},
		{name: "plaintext stored", hash: "secret123", candidate: "secret123", wantErr: ErrComparisonFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Compare(tt.hash, tt.candidate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsHash(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, h.IsHash(hash))
	assert.False(t, h.IsHash("secret123"))
	assert.False(t, h.IsHash(""))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := newTestHasher(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := h.Hash("parallel")
			assert.NoError(t, err)
			ok, err := h.Compare(hash, "parallel")
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
