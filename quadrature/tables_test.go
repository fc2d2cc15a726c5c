package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceVolumes are the measures of the canonical reference elements
// on the [0,1] frame.
var referenceVolumes = map[Geometry]float64{
	Line1_2:        1.0,
	Triangle2_3:    0.5,
	Quad2_4:        1.0,
	Tetrahedron3_4: 1.0 / 6.0,
	Hexahedron3_8:  1.0,
}

func TestTableWeightSums(t *testing.T) {
	for _, geom := range Geometries() {
		for _, order := range Orders(geom) {
			t.Run(fmt.Sprintf("%s_o%d", geom, order), func(t *testing.T) {
				qp, err := Rule(geom, order)
				assert.NoError(t, err)
				assert.Equal(t, referenceVolumes[geom], qp.Volume)
				if math.Abs(qp.WeightSum()-qp.Volume) > 1.e-12*math.Abs(qp.Volume) {
					t.Errorf("weight sum %v does not match volume %v", qp.WeightSum(), qp.Volume)
				}
			})
		}
	}
}

func TestTableCoordinateBounds(t *testing.T) {
	for _, geom := range Geometries() {
		for _, order := range Orders(geom) {
			qp, err := Rule(geom, order)
			assert.NoError(t, err)
			assert.Equal(t, [2]float64{0, 1}, qp.Bounds)
			if qp.Coors.Min() < -1.e-14 || qp.Coors.Max() > 1+1.e-14 {
				t.Errorf("%s order %d: coordinates [%v, %v] leave the canonical frame",
					geom, order, qp.Coors.Min(), qp.Coors.Max())
			}
		}
	}
}

func TestTableShapes(t *testing.T) {
	dims := map[Geometry]int{
		Line1_2:        1,
		Triangle2_3:    2,
		Quad2_4:        2,
		Tetrahedron3_4: 3,
		Hexahedron3_8:  3,
	}
	for _, geom := range Geometries() {
		for _, order := range Orders(geom) {
			qp, _ := Rule(geom, order)
			nr, nc := qp.Coors.Dims()
			assert.Equal(t, dims[geom], qp.Dim)
			assert.Equal(t, dims[geom], nc)
			assert.Equal(t, qp.NPoint, nr)
			assert.Equal(t, qp.NPoint, qp.Weights.Len())
		}
	}
}

func TestLineRulePointCounts(t *testing.T) {
	// The half-tabulated Gauss-Legendre rules unfold to n points for
	// order 2n-1.
	counts := map[int]int{
		1: 1, 3: 2, 5: 3, 7: 4, 9: 5, 11: 6, 13: 7,
		15: 8, 17: 9, 19: 10, 23: 12, 31: 16, 39: 20, 47: 24,
	}
	assert.Equal(t, len(counts), len(Orders(Line1_2)))
	for order, n := range counts {
		qp, err := Rule(Line1_2, order)
		assert.NoError(t, err)
		assert.Equal(t, n, qp.NPoint, "order %d", order)
	}
}

func TestTriangleRules(t *testing.T) {
	qp, err := Rule(Triangle2_3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, qp.NPoint)
	// Points stay inside the unit triangle x + y <= 1.
	for i := 0; i < qp.NPoint; i++ {
		assert.True(t, qp.Coors.At(i, 0)+qp.Coors.At(i, 1) <= 1+1.e-14)
	}

	// The order 3 rule carries a negative center weight but still sums
	// to the triangle area.
	qp, err = Rule(Triangle2_3, 3)
	assert.NoError(t, err)
	assert.True(t, qp.Weights.Min() < 0)
	assert.InDelta(t, 0.5, qp.WeightSum(), 1.e-14)
}

func TestTetrahedronRules(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6} {
		qp, err := Rule(Tetrahedron3_4, order)
		assert.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, qp.WeightSum(), 1.e-14)
		for i := 0; i < qp.NPoint; i++ {
			sum := qp.Coors.At(i, 0) + qp.Coors.At(i, 1) + qp.Coors.At(i, 2)
			assert.True(t, sum <= 1+1.e-14, "order %d point %d outside simplex", order, i)
		}
	}
}
