// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDel(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "token", "claim"))

	got, err := m.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "claim", got)

	require.NoError(t, m.Del(ctx, "token", "absent"))

	_, err = m.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Zero(t, m.Len())
}

func TestMemory_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", "first"))
	require.NoError(t, m.Set(ctx, "k", "second"))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}
