// SPDX-License-Identifier: MIT

package orgmetrics_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orgindex/orgmetrics"
)

func TestIorg_Degenerate(t *testing.T) {
	assert.Zero(t, orgmetrics.Iorg(nil, 10))
	assert.Zero(t, orgmetrics.Iorg([]float64{1, 2}, 0))
	assert.Zero(t, orgmetrics.Iorg([]float64{1, 2}, -3))
	// 1.5·0.1/0.1 rounds up to two edges: a single bin cannot be integrated.
	assert.Zero(t, orgmetrics.Iorg([]float64{0.05}, 0.1))
}

// TestIorg_OutOfRange: distances beyond 1.5·L are dropped from the CDF.
func TestIorg_OutOfRange(t *testing.T) {
	assert.Zero(t, orgmetrics.Iorg([]float64{100, 200, 300}, 10))
}

func TestIorg_Reference(t *testing.T) {
	assert.InDelta(t, 0.568094326870596, orgmetrics.Iorg([]float64{3, 3}, 10), tol)
}

// TestIorg_Bounds: the index stays within [0, 1] and grows when
// neighbors move closer together.
func TestIorg_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(40)
		length := 5 + 30*rng.Float64()
		nnd := make([]float64, n)
		for i := range nnd {
			nnd[i] = rng.Float64() * length
		}
		v := orgmetrics.Iorg(nnd, length)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	near := orgmetrics.Iorg([]float64{1, 1, 1, 1}, 20)
	far := orgmetrics.Iorg([]float64{12, 12, 12, 12}, 20)
	assert.Greater(t, near, far)
}
