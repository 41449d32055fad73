package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float64{0.5, 0.3, 0.2}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	assert.InDelta(t, -1.0, Cosine([]float64{1, 2}, []float64{-1, -2}), 1e-9)
}

func TestCosine_EmptyVector(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, []float64{1, 2}))
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, nil))
}

func TestCosine_ZeroMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 2}))
}

func TestCosine_MismatchedLengths(t *testing.T) {
	// Compared over the shorter prefix.
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{1, 0, 5}), 1e-9)
}
