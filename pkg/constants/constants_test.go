package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	for _, known := range Locations {
		parsed, ok := ParseLocation(known.String())
		assert.True(t, ok)
		assert.Equal(t, known, parsed)
	}

	_, ok := ParseLocation("Basement")
	assert.False(t, ok)

	// Значения чувствительны к регистру: хранятся и сравниваются как есть.
	_, ok = ParseLocation("room 3.333")
	assert.False(t, ok)
}

func TestParseStatus(t *testing.T) {
	for _, known := range Statuses {
		parsed, ok := ParseStatus(known.String())
		assert.True(t, ok)
		assert.Equal(t, known, parsed)
	}

	_, ok := ParseStatus("Broken")
	assert.False(t, ok)
}

func TestLocationByIndex(t *testing.T) {
	require.Len(t, Locations, 6)

	first, ok := LocationByIndex(0)
	require.True(t, ok)
	assert.Equal(t, LocationRoom3333, first)

	last, ok := LocationByIndex(len(Locations) - 1)
	require.True(t, ok)
	assert.Equal(t, LocationInnerCourtyard, last)

	_, ok = LocationByIndex(-1)
	assert.False(t, ok)
	_, ok = LocationByIndex(len(Locations))
	assert.False(t, ok)
}

func TestStatusByIndex(t *testing.T) {
	require.Len(t, Statuses, 2)

	s, ok := StatusByIndex(1)
	require.True(t, ok)
	assert.Equal(t, StatusOccupied, s)

	_, ok = StatusByIndex(2)
	assert.False(t, ok)
}
