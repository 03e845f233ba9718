package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDrawFlags_RoundTripsString(t *testing.T) {
	for _, f := range []DrawFlags{ShapeBit, ShapeBit | ParticleBit, JointBit | PairBit | CenterOfMassBit, AllFlags} {
		assert.Equal(t, f, ParseDrawFlags(f.String()), f.String())
	}
}

func TestParseDrawFlags_AllAndUnknown(t *testing.T) {
	assert.Equal(t, AllFlags, ParseDrawFlags("all"))
	assert.Equal(t, ShapeBit, ParseDrawFlags("shape|bogus"))
	assert.Equal(t, DrawFlags(0), ParseDrawFlags(""))
}
