package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveComputesTimingConstants(t *testing.T) {
	cases := []struct {
		name                   string
		minutes, blocks, qs    int
		perBlock, perQ, totals int
	}{
		{"single question", 1, 1, 1, 60, 60, 60},
		{"two by two", 1, 2, 2, 60, 30, 120},
		{"stock", 60, 2, 40, 3600, 90, 7200},
		{"uneven split", 1, 3, 7, 60, 8, 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := SessionConfig{TimePerBlockMinutes: tc.minutes, NumBlocks: tc.blocks, NumQuestionsPerBlock: tc.qs}
			config.Derive()
			assert.Equal(t, tc.perBlock, config.SecondsPerBlock())
			assert.Equal(t, tc.perQ, config.SecondsPerQuestion())
			assert.Equal(t, tc.totals, config.TotalSeconds())
		})
	}
}

func TestDeriveFallsBackWithoutQuestions(t *testing.T) {
	config := SessionConfig{TimePerBlockMinutes: 2, NumBlocks: 1}
	config.Derive()
	require.Equal(t, 120, config.SecondsPerQuestion())
}

func TestDeriveFollowsBaseFieldChanges(t *testing.T) {
	config := DefaultSessionConfig()
	config.TimePerBlockMinutes = 10
	config.Derive()
	assert.Equal(t, 600, config.SecondsPerBlock())
	assert.Equal(t, 1200, config.TotalSeconds())
	assert.Equal(t, 15, config.SecondsPerQuestion())
}

func TestTimingChangedIgnoresOpacity(t *testing.T) {
	base := DefaultSessionConfig()
	other := base
	other.OpacityPercent = 30
	assert.False(t, base.TimingChanged(other))

	other.NumBlocks++
	assert.True(t, base.TimingChanged(other))
}

func TestAlphaClampsOpacity(t *testing.T) {
	config := SessionConfig{OpacityPercent: 100}
	assert.Equal(t, uint8(255), config.Alpha())
	config.OpacityPercent = 5
	assert.Equal(t, uint8(51), config.Alpha())
	config.OpacityPercent = 75
	assert.Equal(t, uint8(191), config.Alpha())
}
