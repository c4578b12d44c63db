package auth_test

import (
	"testing"
	"time"

	"turf-booking-service/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner(t *testing.T) {
	s := auth.NewSigner("secret", time.Hour)

	token, err := s.Sign("M07PMA", "Regular", "member@example.com")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "M07PMA", claims.Subject)
	assert.Equal(t, "member@example.com", claims.Email)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.NewSigner("other", time.Hour).Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := auth.NewSigner("secret", -time.Minute).Sign("M07PMA", "Regular", "member@example.com")
		require.NoError(t, err)
		_, err = s.Parse(expired)
		assert.Error(t, err)
	})
}
