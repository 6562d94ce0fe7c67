package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(-1.2921, 36.8219, -1.2921, 36.8219))
}

func TestDistanceKnownPairs(t *testing.T) {
	// Nairobi CBD to Westlands is roughly 2.2km.
	d := Distance(-1.2864, 36.8172, -1.2673, 36.8111)
	assert.InDelta(t, 2.2, d, 0.2)

	// Nairobi to Mombasa is roughly 440km.
	d = Distance(-1.2921, 36.8219, -4.0435, 39.6682)
	assert.InDelta(t, 440, d, 5)
}

func TestDistanceRoundsToOneDecimal(t *testing.T) {
	d := Distance(-1.2864, 36.8172, -1.3000, 36.8300)
	assert.Equal(t, math.Round(d*10)/10, d)
}

func TestDistanceSymmetry(t *testing.T) {
	a := Distance(-1.2864, 36.8172, -4.0435, 39.6682)
	b := Distance(-4.0435, 39.6682, -1.2864, 36.8172)
	assert.Equal(t, a, b)
}

func TestFormatDistanceSubKilometer(t *testing.T) {
	assert.Equal(t, "750m away", FormatDistance(0.75))
	assert.Equal(t, "0m away", FormatDistance(0))
	assert.Equal(t, "900m away", FormatDistance(0.9))
}

func TestFormatDistanceKilometers(t *testing.T) {
	assert.Equal(t, "4.2km away", FormatDistance(4.2))
	assert.Equal(t, "1.0km away", FormatDistance(1))
	assert.Equal(t, "12.5km away", FormatDistance(12.5))
}
