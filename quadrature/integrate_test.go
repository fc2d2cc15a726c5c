package quadrature

import (
	"fmt"
	"math"
	"testing"
)

// TestLinePolynomialExactness verifies the order 7 Gauss rule integrates
// x^k on [0,1] exactly for k up to 7.
func TestLinePolynomialExactness(t *testing.T) {
	qp, err := Rule(Line1_2, 7)
	if err != nil {
		t.Fatalf("failed to look up rule: %v", err)
	}
	tolerance := 1.e-14
	for k := 0; k <= 7; k++ {
		k := k
		t.Run(fmt.Sprintf("x^%d", k), func(t *testing.T) {
			result := qp.Integrate(func(x []float64) float64 {
				return math.Pow(x[0], float64(k))
			})
			expected := 1.0 / float64(k+1)
			if math.Abs(result-expected) > tolerance {
				t.Errorf("got %v, expected %v", result, expected)
			}
		})
	}
}

func TestTrianglePolynomialExactness(t *testing.T) {
	qp, err := Rule(Triangle2_3, 2)
	if err != nil {
		t.Fatalf("failed to look up rule: %v", err)
	}
	tolerance := 1.e-14

	// Constant over the unit triangle.
	result := qp.Integrate(func(x []float64) float64 { return 1.0 })
	if math.Abs(result-0.5) > tolerance {
		t.Errorf("constant integration: got %v, expected 0.5", result)
	}

	// First moment: integral of x over the unit triangle is 1/6.
	result = qp.Integrate(func(x []float64) float64 { return x[0] })
	if math.Abs(result-1.0/6.0) > tolerance {
		t.Errorf("linear integration: got %v, expected 1/6", result)
	}

	// Second moment: integral of x^2 is 1/12, within reach of order 2.
	result = qp.Integrate(func(x []float64) float64 { return x[0] * x[0] })
	if math.Abs(result-1.0/12.0) > tolerance {
		t.Errorf("quadratic integration: got %v, expected 1/12", result)
	}
}

func TestTetrahedronPolynomialExactness(t *testing.T) {
	qp, err := Rule(Tetrahedron3_4, 2)
	if err != nil {
		t.Fatalf("failed to look up rule: %v", err)
	}
	tolerance := 1.e-14

	result := qp.Integrate(func(x []float64) float64 { return 1.0 })
	if math.Abs(result-1.0/6.0) > tolerance {
		t.Errorf("constant integration: got %v, expected 1/6", result)
	}

	// Centroid moment: integral of z over the unit tetrahedron is 1/24.
	result = qp.Integrate(func(x []float64) float64 { return x[2] })
	if math.Abs(result-1.0/24.0) > tolerance {
		t.Errorf("linear integration: got %v, expected 1/24", result)
	}
}

func TestHexahedronPolynomialExactness(t *testing.T) {
	qp, err := Rule(Hexahedron3_8, 3)
	if err != nil {
		t.Fatalf("failed to look up rule: %v", err)
	}
	tolerance := 1.e-14

	result := qp.Integrate(func(x []float64) float64 { return x[0] * x[0] })
	if math.Abs(result-1.0/3.0) > tolerance {
		t.Errorf("quadratic integration: got %v, expected 1/3", result)
	}

	result = qp.Integrate(func(x []float64) float64 { return x[0] * x[1] })
	if math.Abs(result-0.25) > tolerance {
		t.Errorf("bilinear integration: got %v, expected 1/4", result)
	}
}

func TestQuadCompositeGaussOrder(t *testing.T) {
	// The order key of a composite Gauss rule holds per component, so
	// the 2x2 rule integrates x^3 y^3 exactly.
	qp, err := Rule(Quad2_4, 3)
	if err != nil {
		t.Fatalf("failed to look up rule: %v", err)
	}
	result := qp.Integrate(func(x []float64) float64 {
		return x[0] * x[0] * x[0] * x[1] * x[1] * x[1]
	})
	if math.Abs(result-1.0/16.0) > 1.e-14 {
		t.Errorf("got %v, expected 1/16", result)
	}
}
