package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", "abc123", false},
		{"lowercase scheme", "bearer abc123", "abc123", false},
		{"missing header", "", "", true},
		{"no scheme", "abc123", "", true},
		{"wrong scheme", "Basic abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticVerifierDefaults(t *testing.T) {
	v := &StaticVerifier{}
	claims, err := v.VerifyToken(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "local-dev-user", claims.UID)
	assert.True(t, claims.Verified)

	v = &StaticVerifier{Claims: UserClaims{UID: "u1", Email: "a@b.c", Verified: true}}
	claims, err = v.VerifyToken(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
}
