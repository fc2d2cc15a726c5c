// Package quadrature provides numerical integration rules for the
// reference elements used by finite element solvers. Rules are tabulated
// per geometry code and polynomial order and canonicalized once at load
// time to the [0,1] reference frame.
//
// Geometry codes follow the <dimension>_<vertex count> convention, e.g.
// "2_3" is the reference triangle and "3_8" the reference hexahedron.
package quadrature

import (
	"fmt"
	"sort"
)

type Geometry string

const (
	Line1_2        Geometry = "1_2"
	Triangle2_3    Geometry = "2_3"
	Quad2_4        Geometry = "2_4"
	Tetrahedron3_4 Geometry = "3_4"
	Hexahedron3_8  Geometry = "3_8"
)

// quadratureTables holds the canonicalized rules, keyed by geometry and
// then by polynomial order. It is populated once at init and read-only
// afterward.
var quadratureTables map[Geometry]map[int]*QuadraturePoints

func init() {
	quadratureTables = make(map[Geometry]map[int]*QuadraturePoints, len(rawTables))
	for geom, byOrder := range rawTables {
		quadratureTables[geom] = make(map[int]*QuadraturePoints, len(byOrder))
		for order, raw := range byOrder {
			qp, err := NewQuadraturePoints(raw)
			if err != nil {
				// The literal tables are fixed at compile time, so a
				// construction failure is a programmer error.
				panic(fmt.Errorf("quadrature table %s order %d: %v", geom, order, err))
			}
			quadratureTables[geom][order] = qp
		}
	}
}

// Rule returns the tabulated rule for the exact geometry and order.
func Rule(geom Geometry, order int) (*QuadraturePoints, error) {
	byOrder, ok := quadratureTables[geom]
	if !ok {
		return nil, fmt.Errorf("unknown geometry %q", geom)
	}
	qp, ok := byOrder[order]
	if !ok {
		return nil, fmt.Errorf("no order %d rule for geometry %q, available: %v", order, geom, Orders(geom))
	}
	return qp, nil
}

// RuleAtLeast returns the rule with the smallest tabulated order that is
// greater than or equal to the requested order, along with the order
// actually used.
func RuleAtLeast(geom Geometry, order int) (*QuadraturePoints, int, error) {
	byOrder, ok := quadratureTables[geom]
	if !ok {
		return nil, 0, fmt.Errorf("unknown geometry %q", geom)
	}
	best := -1
	for o := range byOrder {
		if o >= order && (best < 0 || o < best) {
			best = o
		}
	}
	if best < 0 {
		return nil, 0, fmt.Errorf("no rule of order >= %d for geometry %q, maximum is %d", order, geom, maxOrder(byOrder))
	}
	return byOrder[best], best, nil
}

// Orders returns the tabulated orders for a geometry, ascending.
func Orders(geom Geometry) (orders []int) {
	for o := range quadratureTables[geom] {
		orders = append(orders, o)
	}
	sort.Ints(orders)
	return
}

// Geometries returns the geometry codes with tabulated rules, ascending.
func Geometries() (geoms []Geometry) {
	for g := range quadratureTables {
		geoms = append(geoms, g)
	}
	sort.Slice(geoms, func(i, j int) bool { return geoms[i] < geoms[j] })
	return
}

func maxOrder(byOrder map[int]*QuadraturePoints) (max int) {
	for o := range byOrder {
		if o > max {
			max = o
		}
	}
	return
}
