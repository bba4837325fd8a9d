package services

import (
	"math/rand"
	"site-route-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(domain.Point{X: 0, Y: 0}, domain.Point{X: 3, Y: 4}))
	assert.Equal(t, 5.0, Distance(domain.Point{X: -1, Y: -1}, domain.Point{X: 2, Y: 3}))
}

func TestDistanceSymmetricAndZeroOnSelf(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		a := domain.Point{X: r.NormFloat64() * 1e3, Y: r.NormFloat64() * 1e3}
		b := domain.Point{X: r.NormFloat64() * 1e3, Y: r.NormFloat64() * 1e3}

		assert.Equal(t, Distance(a, b), Distance(b, a))
		assert.Zero(t, Distance(a, a))
		assert.GreaterOrEqual(t, Distance(a, b), 0.0)
	}
}
