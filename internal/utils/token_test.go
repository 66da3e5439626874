// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicket-proxy/wicket/models"
)

func TestCodec_IssueAndDecode(t *testing.T) {
	codec := NewCodec("test-secret")
	claim := models.Claim{UserID: "user-1", Username: "mctest"}

	token, err := codec.Issue(claim)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, claim, decoded)
}

func TestCodec_TokenIsTransportSafe(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Issue(models.Claim{UserID: "user-1", Username: "mctest"})
	require.NoError(t, err)

	// The outer layer must decode as URL-safe base64.
	_, err = base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
}

func TestCodec_Decode_TableTest(t *testing.T) {
	codec := NewCodec("test-secret")

	validToken, err := codec.Issue(models.Claim{UserID: "user-1", Username: "mctest"})
	require.NoError(t, err)

	otherSecret, err := NewCodec("other-secret").Issue(models.Claim{UserID: "user-1", Username: "mctest"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:  "valid token decodes",
			token: validToken,
		},
		{
			name:    "empty token rejected",
			token:   "",
			wantErr: true,
		},
		{
			name:    "not base64 rejected",
			token:   "!!not-base64!!",
			wantErr: true,
		},
		{
			name:    "base64 of garbage rejected",
			token:   base64.URLEncoding.EncodeToString([]byte("not a jwt")),
			wantErr: true,
		},
		{
			name:    "token signed with different secret rejected",
			token:   otherSecret,
			wantErr: true,
		},
		{
			name:    "tampered token rejected",
			token:   validToken[:len(validToken)-8] + "AAAAAAA=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim, err := codec.Decode(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Empty(t, claim.UserID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-1", claim.UserID)
				assert.Equal(t, "mctest", claim.Username)
			}
		})
	}
}

func TestCodec_EmptySecretStillRoundTrips(t *testing.T) {
	// Running without a signing secret is an explicit non-production path:
	// tokens still issue and verify, signed with the empty key.
	codec := NewCodec("")

	token, err := codec.Issue(models.Claim{UserID: "user-1", Username: "mctest"})
	require.NoError(t, err)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "mctest", decoded.Username)
}
