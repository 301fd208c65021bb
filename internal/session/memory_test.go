package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

func testIdentity() Identity {
	return Identity{UserID: 1, Username: "arya", Role: models.RoleStudent}
}

func TestMemoryDirectoryCreateResolveRevoke(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: time.Minute})
	defer d.Close()
	ctx := context.Background()

	token, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := d.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.UserID)
	assert.Equal(t, models.RoleStudent, identity.Role)

	require.NoError(t, d.Revoke(ctx, token))
	_, err = d.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMemoryDirectoryUnknownToken(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: time.Minute})
	defer d.Close()

	_, err := d.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMemoryDirectoryExpiryIsTerminal(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: 10 * time.Millisecond})
	defer d.Close()
	ctx := context.Background()

	token, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	_, err = d.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)

	// A later resolve must stay invalid.
	_, err = d.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMemoryDirectorySlidingRefreshesTTL(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: 60 * time.Millisecond, Sliding: true})
	defer d.Close()
	ctx := context.Background()

	token, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)

	// Keep touching the session past the original TTL.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err = d.Resolve(ctx, token)
		require.NoError(t, err)
	}
}

func TestMemoryDirectoryFixedTTLDoesNotRefresh(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: 50 * time.Millisecond, Sliding: false})
	defer d.Close()
	ctx := context.Background()

	token, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = d.Resolve(ctx, token)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = d.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMemoryDirectoryConcurrentSessionsPerUser(t *testing.T) {
	d := NewMemoryDirectory(Options{TTL: time.Minute})
	defer d.Close()
	ctx := context.Background()

	first, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)
	second, err := d.Create(ctx, testIdentity())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, d.Revoke(ctx, first))
	_, err = d.Resolve(ctx, second)
	assert.NoError(t, err)
}

func TestTokensAreUnpredictableLength(t *testing.T) {
	token, err := newToken()
	require.NoError(t, err)
	// 32 random bytes base64url-encoded without padding.
	assert.Len(t, token, 43)
}
