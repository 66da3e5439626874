// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	// Must not panic even on error-level events.
	log.Error().Msg("discarded")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	parent := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(parent.Logger.WithContext(req.Context()))

	got := FromRequest(req)
	assert.NotNil(t, got)
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}
