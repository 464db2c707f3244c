package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mrjar/internal/core/domain"
)

func TestParseMultiReleaseMode(t *testing.T) {
	for in, want := range map[string]domain.MultiReleaseMode{
		"":       domain.ModeAuto,
		"auto":   domain.ModeAuto,
		"always": domain.ModeAlways,
		"never":  domain.ModeNever,
	} {
		got, err := domain.ParseMultiReleaseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseMultiReleaseMode("sometimes")
	require.ErrorIs(t, err, domain.ErrInvalidMultiReleaseMode)
}
