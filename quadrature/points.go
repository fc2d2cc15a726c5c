package quadrature

import (
	"fmt"
	"math"

	"github.com/notargets/goquad/utils"
)

// Canonical reference frame bounds. Every constructed rule has its
// coordinates expressed on [0,1] per axis regardless of the frame the raw
// table was tabulated on.
const (
	canonicalLo = 0.
	canonicalHi = 1.
)

// centerEps is the half-width of the band around the origin within which
// the first raw coordinate of a symmetric rule is treated as the symmetry
// center. The tabulated rules store the center as an exact 0.0; the
// epsilon guards against near-zero values from derived tables.
const centerEps = 1.e-14

// RawRule is the input contract for NewQuadraturePoints. Exactly one of
// two shapes must be supplied: Data, whose rows are dim coordinate
// components followed by one weight, or Coors together with Weights.
type RawRule struct {
	Data    [][]float64
	Coors   [][]float64
	Weights []float64

	// Bounds of the reference interval the raw coordinates are tabulated
	// on, when not already (0,1). Every axis shares the same bounds.
	Bounds *[2]float64

	// TPFix multiplies the tensor product element volume (= 1.0) to get
	// the true reference element volume, e.g. 1/2 for a triangle and 1/6
	// for a tetrahedron. Zero means 1.0.
	TPFix float64

	// Symmetric marks a 1D rule tabulated on its non-negative half only;
	// the mirrored half is synthesized during construction.
	Symmetric bool
}

// QuadraturePoints is a canonicalized set of quadrature points and
// weights for one reference element and accuracy order. Values are
// immutable after construction.
type QuadraturePoints struct {
	Coors   utils.Matrix // NPoint x Dim, canonical [0,1] frame
	Weights utils.Vector // NPoint, parallel to Coors rows
	NPoint  int
	Dim     int
	Volume  float64
	Bounds  [2]float64
}

// NewQuadraturePoints canonicalizes a raw tabulated rule: it splits the
// combined coordinate/weight table, remaps coordinates from the tabulated
// bounds to [0,1] with the matching weight rescale, and unfolds symmetric
// 1D rules to the full point set. The sum of the resulting weights equals
// Volume.
func NewQuadraturePoints(raw RawRule) (qp *QuadraturePoints, err error) {
	var (
		coors   utils.Matrix
		weights utils.Vector
	)
	switch {
	case raw.Coors == nil:
		if raw.Data == nil {
			return nil, fmt.Errorf("insufficient input: need Data or both Coors and Weights")
		}
		var M utils.Matrix
		if M, err = utils.NewMatrixFromRows(raw.Data); err != nil {
			return nil, err
		}
		_, nc := M.Dims()
		if nc < 2 {
			return nil, fmt.Errorf("insufficient input: Data rows need at least one coordinate and a weight, got %d columns", nc)
		}
		coors, weights = splitCoorsWeights(M)
	case raw.Weights != nil:
		if coors, err = utils.NewMatrixFromRows(raw.Coors); err != nil {
			return nil, err
		}
		nr, _ := coors.Dims()
		if len(raw.Weights) != nr {
			return nil, fmt.Errorf("insufficient input: %d points but %d weights", nr, len(raw.Weights))
		}
		weights = utils.NewVector(nr, raw.Weights).Copy()
	default:
		return nil, fmt.Errorf("insufficient input: both Coors and Weights have to be provided")
	}

	nPoint, dim := coors.Dims()
	// First raw coordinate, captured before the bounds remap, decides
	// whether a symmetric rule carries a center point.
	firstRaw := coors.At(0, 0)

	tpFix := raw.TPFix
	if tpFix == 0 {
		tpFix = 1.
	}
	volume := tpFix
	for i := 0; i < dim; i++ {
		volume *= canonicalHi - canonicalLo
	}
	qp = &QuadraturePoints{
		Coors:   coors,
		Weights: weights,
		NPoint:  nPoint,
		Dim:     dim,
		Volume:  volume,
		Bounds:  [2]float64{canonicalLo, canonicalHi},
	}

	if raw.Bounds != nil {
		a, b := raw.Bounds[0], raw.Bounds[1]
		c, d := qp.Bounds[0], qp.Bounds[1]

		srcVolume := tpFix
		for i := 0; i < dim; i++ {
			srcVolume *= b - a
		}

		// Affine map sending [a,b] to [c,d] componentwise.
		c1 := (d - c) / (b - a)
		c2 := ((b * c) - (a * d)) / (b - a)
		qp.Coors.Scale(c1).AddScalar(c2)

		// Weights are a density times a change of measure factor.
		qp.Weights.Scale(qp.Volume / srcVolume)
	}

	if raw.Symmetric {
		if dim != 1 {
			return nil, fmt.Errorf("symmetric point sets are only defined in one dimension, got dim = %d", dim)
		}
		qp.unfoldSymmetric(math.Abs(firstRaw) <= centerEps)
	}
	return
}

// splitCoorsWeights separates a combined table into its coordinate matrix
// (all but the last column) and weight vector (the last column).
func splitCoorsWeights(M utils.Matrix) (coors utils.Matrix, weights utils.Vector) {
	var (
		nr, nc = M.Dims()
		cData  = make([]float64, nr*(nc-1))
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc-1; j++ {
			cData[i*(nc-1)+j] = M.At(i, j)
		}
	}
	coors = utils.NewMatrix(nr, nc-1, cData)
	weights = M.Col(nc - 1)
	return
}

// unfoldSymmetric mirrors a half-tabulated 1D rule about the midpoint of
// the current bounds. The mirrored points are prepended in reversed
// order; when the first point is the symmetry center it is not
// duplicated. Weights mirror identically, with no change of sign.
func (qp *QuadraturePoints) unfoldSymmetric(hasCenter bool) {
	var (
		origin = 0.5 * (qp.Bounds[0] + qp.Bounds[1])
		cd     = qp.Coors.Data()
		wd     = qp.Weights.Data()
		lo     = 0
	)
	if hasCenter {
		lo = 1
	}
	var (
		n  = qp.NPoint
		nm = n - lo
	)
	if nm == 0 {
		// A lone center point has no mirrored half.
		return
	}
	var (
		cM = make([]float64, nm)
		wM = make([]float64, nm)
	)
	for i := 0; i < nm; i++ {
		cM[i] = 2*origin - cd[n-1-i]
		wM[i] = wd[n-1-i]
	}
	coors := utils.NewVector(nm, cM).Concat(qp.Coors.Col(0))
	qp.Weights = utils.NewVector(nm, wM).Concat(qp.Weights)
	qp.NPoint = coors.Len()
	qp.Coors = utils.NewMatrix(qp.NPoint, 1, coors.Data())
}
