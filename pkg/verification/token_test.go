package verification_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"strength-api/pkg/verification"
)

func TestGenerateToken_Format(t *testing.T) {
	token, err := verification.GenerateToken()
	require.NoError(t, err)
	require.Len(t, token, 128)

	_, err = hex.DecodeString(token)
	require.NoError(t, err)
}

func TestGenerateToken_Unique(t *testing.T) {
	first, err := verification.GenerateToken()
	require.NoError(t, err)

	second, err := verification.GenerateToken()
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
