package quadrature

import "gonum.org/v1/gonum/floats"

// Integrate approximates the integral of f over the canonical reference
// element as the weighted sum over the rule's points. The approximation
// is exact for polynomials up to the rule's tabulated order.
func (qp *QuadraturePoints) Integrate(f func(x []float64) float64) float64 {
	vals := make([]float64, qp.NPoint)
	for i := 0; i < qp.NPoint; i++ {
		vals[i] = f(qp.Coors.Row(i).Data())
	}
	return floats.Dot(vals, qp.Weights.Data())
}

// WeightSum returns the sum of the rule's weights. For a valid rule it
// equals Volume up to floating point tolerance.
func (qp *QuadraturePoints) WeightSum() float64 {
	return floats.Sum(qp.Weights.Data())
}
