package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

func TestMag(t *testing.T) {
	v := vector.MakeVector2(3, 4)
	assert.Equal(t, 5.0, v.Mag())
}

func TestNormalize(t *testing.T) {
	v := vector.MakeVector2(0, 10).Normalize()
	assert.True(t, v.Equals(vector.MakeVector2(0, 1)))

	// normalizing the null vector must not divide by zero
	n := vector.MakeNullVector2().Normalize()
	assert.True(t, n.IsNull())
}

func TestMakeVector2FromPolar(t *testing.T) {
	// direction is normalized before scaling
	v := vector.MakeVector2FromPolar(vector.MakeVector2(0, -8), 0.7)
	assert.True(t, v.Equals(vector.MakeVector2(0, -0.7)))

	diagonal := vector.MakeVector2FromPolar(vector.MakeVector2(1, 1), 1)
	assert.InDelta(t, 1.0, diagonal.Mag(), 0.000001)
	assert.InDelta(t, math.Sqrt(2)/2, diagonal.GetX(), 0.000001)
}

func TestSubIsValueSemantics(t *testing.T) {
	a := vector.MakeVector2(1, 2)
	b := a.Sub(vector.MakeVector2(1, 2))

	assert.True(t, b.IsNull())
	assert.Equal(t, 1.0, a.GetX())
	assert.Equal(t, 2.0, a.GetY())
}

func TestLimit(t *testing.T) {
	v := vector.MakeVector2(0, 10).Limit(2)
	assert.InDelta(t, 2.0, v.Mag(), 0.000001)

	small := vector.MakeVector2(0.5, 0).Limit(2)
	assert.Equal(t, 0.5, small.Mag())
}
