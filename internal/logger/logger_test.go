package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndL(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		Init("development")
		require.NotNil(t, L())
	})

	t.Run("Production", func(t *testing.T) {
		Init("production")
		require.NotNil(t, L())
	})
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))

	// FromCtx must not panic either way
	assert.NotNil(t, FromCtx(context.Background()))
	assert.NotNil(t, FromCtx(ctx))
}
