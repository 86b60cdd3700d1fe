package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConfirmationCodeFormat(t *testing.T) {
	code := ConfirmationCode()

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	require.Equal(t, "TV", parts[0])
	require.NotEmpty(t, parts[1])
	require.Len(t, parts[2], confirmationSuffixLen)

	// Код должен состоять только из URL-safe символов base36 и дефисов
	require.Equal(t, strings.ToUpper(code), code)
	for _, part := range parts[1:] {
		for _, c := range part {
			require.Contains(t, base36Alphabet, string(c))
		}
	}
}

func TestConfirmationCodeUniqueness(t *testing.T) {
	const n = 1000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code := ConfirmationCode()
		_, dup := seen[code]
		require.False(t, dup, "duplicate confirmation code %s", code)
		seen[code] = struct{}{}
	}
}

func TestBlockIDIsUUID(t *testing.T) {
	id := BlockID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}
