package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida no formato da Graph API", func(t *testing.T) {
		date, err := ParseDate("2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("Entrada vazia é inválida", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})

	t.Run("Formato fora do layout é inválido", func(t *testing.T) {
		_, err := ParseDate("31/01/2024")
		assert.Error(t, err)
	})
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 7.5, RoundWithTwoDecimalPlace(7.499999999))
	assert.Equal(t, 41.15, RoundWithTwoDecimalPlace(41.151))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}