package quadrature

import "math"

// Quadrature coordinates and weights for the 2D and 3D elements are from
// The Finite Element Method Displayed, Gouri Dhatt and Gilbert Touzot,
// Wiley-Interscience, 1984. The line rules are from Abramowitz, M. and
// Stegun, I.A., Handbook of Mathematical Functions, Dover, 1972.
//
// Line rules are tabulated on their non-negative half only and unfolded
// during construction. Rules tabulated on (-1,1) are remapped to the
// canonical [0,1] frame. The order key for tensor product geometries
// (Quad2_4, Hexahedron3_8) holds per component, so the actual polynomial
// order of a composite Gauss rule can be up to order * dimension.

var biunit = [2]float64{-1, 1}

var rawTables = map[Geometry]map[int]RawRule{
	Line1_2: {
		1: {Data: [][]float64{
			{0.000000000000000e+00, 2.0},
		}, Bounds: &biunit, Symmetric: true},

		3: {Data: [][]float64{
			{0.577350269189626e+00, 1.0},
		}, Bounds: &biunit, Symmetric: true},

		5: {Data: [][]float64{
			{0.000000000000000e+00, 0.888888888888889e+00},
			{0.774596669241483e+00, 0.555555555555556e+00},
		}, Bounds: &biunit, Symmetric: true},

		7: {Data: [][]float64{
			{0.339981043584856e+00, 0.652145154862546e+00},
			{0.861136311594053e+00, 0.347854845137454e+00},
		}, Bounds: &biunit, Symmetric: true},

		9: {Data: [][]float64{
			{0.000000000000000e+00, 0.568888888888889e+00},
			{0.538469310105683e+00, 0.478628670499366e+00},
			{0.906179845938664e+00, 0.236926885056189e+00},
		}, Bounds: &biunit, Symmetric: true},

		11: {Data: [][]float64{
			{0.238619186083197e+00, 0.467913934572691e+00},
			{0.661209386466265e+00, 0.360761573048139e+00},
			{0.932469514203152e+00, 0.171324492379170e+00},
		}, Bounds: &biunit, Symmetric: true},

		13: {Data: [][]float64{
			{0.000000000000000e+00, 0.417959183673469e+00},
			{0.405845151377397e+00, 0.381830050505119e+00},
			{0.741531185599394e+00, 0.279705391489277e+00},
			{0.949107912342759e+00, 0.129484966168870e+00},
		}, Bounds: &biunit, Symmetric: true},

		15: {Data: [][]float64{
			{0.183434642495650e+00, 0.362683783378362e+00},
			{0.525532409916329e+00, 0.313706645877887e+00},
			{0.796666477413627e+00, 0.222381034453374e+00},
			{0.960289856497536e+00, 0.101228536290376e+00},
		}, Bounds: &biunit, Symmetric: true},

		17: {Data: [][]float64{
			{0.000000000000000e+00, 0.330239355001260e+00},
			{0.324253423403809e+00, 0.312347077040003e+00},
			{0.613371432700590e+00, 0.260610696402935e+00},
			{0.836031107326636e+00, 0.180648160694857e+00},
			{0.968160239507626e+00, 0.081274388361574e+00},
		}, Bounds: &biunit, Symmetric: true},

		19: {Data: [][]float64{
			{0.148874338981631e+00, 0.295524224714753e+00},
			{0.433395394129247e+00, 0.269266719309996e+00},
			{0.679409568299024e+00, 0.219086362515982e+00},
			{0.865063366688985e+00, 0.149451349150581e+00},
			{0.973906528517172e+00, 0.066671344308688e+00},
		}, Bounds: &biunit, Symmetric: true},

		23: {Data: [][]float64{
			{0.125233408511469e+00, 0.249147045813403e+00},
			{0.367831498998180e+00, 0.233492536538355e+00},
			{0.587317954286617e+00, 0.203167426723066e+00},
			{0.769902674194305e+00, 0.160078328543346e+00},
			{0.904117256370475e+00, 0.106939325995318e+00},
			{0.981560634246719e+00, 0.047175336386512e+00},
		}, Bounds: &biunit, Symmetric: true},

		31: {Data: [][]float64{
			{0.095012509837637440185e+00, 0.189450610455068496285e+00},
			{0.281603550779258913230e+00, 0.182603415044923588867e+00},
			{0.458016777657227386342e+00, 0.169156519395002538189e+00},
			{0.617876244402643748447e+00, 0.149595988816576732081e+00},
			{0.755404408355003033895e+00, 0.124628971255533872052e+00},
			{0.865631202387831743880e+00, 0.095158511682492784810e+00},
			{0.944575023073232576078e+00, 0.062253523938647892863e+00},
			{0.989400934991649932596e+00, 0.027152459411754094852e+00},
		}, Bounds: &biunit, Symmetric: true},

		39: {Data: [][]float64{
			{0.076526521133497333755e+00, 0.152753387130725850698e+00},
			{0.227785851141645078080e+00, 0.149172986472603746788e+00},
			{0.373706088715419560673e+00, 0.142096109318382051329e+00},
			{0.510867001950827098004e+00, 0.131688638449176626898e+00},
			{0.636053680726515025453e+00, 0.118194531961518417312e+00},
			{0.746331906460150792614e+00, 0.101930119817240435037e+00},
			{0.839116971822218823395e+00, 0.083276741576704748725e+00},
			{0.912234428251325905868e+00, 0.062672048334109063570e+00},
			{0.963971927277913791268e+00, 0.040601429800386941331e+00},
			{0.993128599185094924786e+00, 0.017614007139152118312e+00},
		}, Bounds: &biunit, Symmetric: true},

		47: {Data: [][]float64{
			{0.064056892862605626085e+00, 0.127938195346752156974e+00},
			{0.191118867473616309159e+00, 0.125837456346828296121e+00},
			{0.315042679696163374387e+00, 0.121670472927803391204e+00},
			{0.433793507626045138487e+00, 0.115505668053725601353e+00},
			{0.545421471388839535658e+00, 0.107444270115965634783e+00},
			{0.648093651936975569252e+00, 0.097618652104113888270e+00},
			{0.740124191578554364244e+00, 0.086190161531953275917e+00},
			{0.820001985973902921954e+00, 0.073346481411080305734e+00},
			{0.886415527004401034213e+00, 0.059298584915436780746e+00},
			{0.938274552002732758524e+00, 0.044277438817419806169e+00},
			{0.974728555971309498198e+00, 0.028531388628933663181e+00},
			{0.995187219997021360180e+00, 0.012341229799987199547e+00},
		}, Bounds: &biunit, Symmetric: true},
	},

	Triangle2_3: {
		1: {Data: [][]float64{
			{1.0 / 3.0, 1.0 / 3.0, 0.5},
		}, TPFix: 0.5},

		2: {Data: [][]float64{
			{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
		}, TPFix: 0.5},

		3: {Data: [][]float64{
			{1.0 / 3.0, 1.0 / 3.0, -27.0 / 96.0},
			{1.0 / 5.0, 1.0 / 5.0, 25.0 / 96.0},
			{3.0 / 5.0, 1.0 / 5.0, 25.0 / 96.0},
			{1.0 / 5.0, 3.0 / 5.0, 25.0 / 96.0},
		}, TPFix: 0.5},
	},

	Quad2_4: {
		2: {Data: [][]float64{
			{math.Sqrt(2.0 / 3.0), 0.0, 4.0 / 3.0},
			{-1 / math.Sqrt(6), 1 / math.Sqrt(2), 4.0 / 3.0},
			{-1 / math.Sqrt(6), -1 / math.Sqrt(2), 4.0 / 3.0},
		}, Bounds: &biunit},

		3: {Data: [][]float64{
			{-1 / math.Sqrt(3), -1 / math.Sqrt(3), 1.0},
			{1 / math.Sqrt(3), -1 / math.Sqrt(3), 1.0},
			{1 / math.Sqrt(3), 1 / math.Sqrt(3), 1.0},
			{-1 / math.Sqrt(3), 1 / math.Sqrt(3), 1.0},
		}, Bounds: &biunit},

		5: {Data: [][]float64{
			{math.Sqrt(7.0 / 15.0), 0.0, 0.816326530612245},
			{-math.Sqrt(7.0 / 15.0), 0.0, 0.816326530612245},
			{0.0, math.Sqrt(7.0 / 15.0), 0.816326530612245},
			{0.0, -math.Sqrt(7.0 / 15.0), 0.816326530612245},
			{0.881917103688197, 0.881917103688197, 0.183673469387755},
			{0.881917103688197, -0.881917103688197, 0.183673469387755},
			{-0.881917103688197, 0.881917103688197, 0.183673469387755},
			{-0.881917103688197, -0.881917103688197, 0.183673469387755},
		}, Bounds: &biunit},
	},

	Tetrahedron3_4: {
		1: {Data: [][]float64{
			{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
		}, TPFix: 1.0 / 6.0},

		2: {Data: [][]float64{
			{(5 - math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, 1.0 / 24.0},
			{(5 - math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, (5 + 3*math.Sqrt(5)) / 20, 1.0 / 24.0},
			{(5 - math.Sqrt(5)) / 20, (5 + 3*math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, 1.0 / 24.0},
			{(5 + 3*math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, (5 - math.Sqrt(5)) / 20, 1.0 / 24.0},
		}, TPFix: 1.0 / 6.0},

		3: {Data: [][]float64{
			{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, -2.0 / 15.0},
			{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
			{1.0 / 6.0, 1.0 / 6.0, 1.0 / 2.0, 3.0 / 40.0},
			{1.0 / 6.0, 1.0 / 2.0, 1.0 / 6.0, 3.0 / 40.0},
			{1.0 / 2.0, 1.0 / 6.0, 1.0 / 6.0, 3.0 / 40.0},
		}, TPFix: 1.0 / 6.0},

		4: {Data: [][]float64{
			{-0.5000000000000000, -0.5000000000000000, -0.5000000000000000, -0.1052444444444440},
			{-0.8571428571428570, -0.8571428571428570, -0.8571428571428570, 0.0609777777777780},
			{-0.8571428571428570, -0.8571428571428570, 0.5714285714285710, 0.0609777777777780},
			{-0.8571428571428570, 0.5714285714285710, -0.8571428571428570, 0.0609777777777780},
			{0.5714285714285710, -0.8571428571428570, -0.8571428571428570, 0.0609777777777780},
			{-0.2011928476664020, -0.2011928476664020, -0.7988071523335980, 0.1991111111111110},
			{-0.2011928476664020, -0.7988071523335980, -0.2011928476664020, 0.1991111111111110},
			{-0.7988071523335980, -0.2011928476664020, -0.2011928476664020, 0.1991111111111110},
			{-0.2011928476664020, -0.7988071523335980, -0.7988071523335980, 0.1991111111111110},
			{-0.7988071523335980, -0.2011928476664020, -0.7988071523335980, 0.1991111111111110},
			{-0.7988071523335980, -0.7988071523335980, -0.2011928476664020, 0.1991111111111110},
		}, Bounds: &biunit, TPFix: 1.0 / 6.0},

		6: {Data: [][]float64{
			{-0.5707942574816960, -0.5707942574816960, -0.5707942574816960, 0.0532303336775570},
			{-0.2876172275549120, -0.5707942574816960, -0.5707942574816960, 0.0532303336775570},
			{-0.5707942574816960, -0.2876172275549120, -0.5707942574816960, 0.0532303336775570},
			{-0.5707942574816960, -0.5707942574816960, -0.2876172275549120, 0.0532303336775570},
			{-0.9186520829307770, -0.9186520829307770, -0.9186520829307770, 0.0134362814070940},
			{0.7559562487923320, -0.9186520829307770, -0.9186520829307770, 0.0134362814070940},
			{-0.9186520829307770, 0.7559562487923320, -0.9186520829307770, 0.0134362814070940},
			{-0.9186520829307770, -0.9186520829307770, 0.7559562487923320, 0.0134362814070940},
			{-0.3553242197154490, -0.3553242197154490, -0.3553242197154490, 0.0738095753915400},
			{-0.9340273408536530, -0.3553242197154490, -0.3553242197154490, 0.0738095753915400},
			{-0.3553242197154490, -0.9340273408536530, -0.3553242197154490, 0.0738095753915400},
			{-0.3553242197154490, -0.3553242197154490, -0.9340273408536530, 0.0738095753915400},
			{-0.8726779962499650, -0.8726779962499650, -0.4606553370833680, 0.0642857142857140},
			{-0.8726779962499650, -0.4606553370833680, -0.8726779962499650, 0.0642857142857140},
			{-0.8726779962499650, -0.8726779962499650, 0.2060113295832980, 0.0642857142857140},
			{-0.8726779962499650, 0.2060113295832980, -0.8726779962499650, 0.0642857142857140},
			{-0.8726779962499650, -0.4606553370833680, 0.2060113295832980, 0.0642857142857140},
			{-0.8726779962499650, 0.2060113295832980, -0.4606553370833680, 0.0642857142857140},
			{-0.4606553370833680, -0.8726779962499650, -0.8726779962499650, 0.0642857142857140},
			{-0.4606553370833680, -0.8726779962499650, 0.2060113295832980, 0.0642857142857140},
			{-0.4606553370833680, 0.2060113295832980, -0.8726779962499650, 0.0642857142857140},
			{0.2060113295832980, -0.8726779962499650, -0.4606553370833680, 0.0642857142857140},
			{0.2060113295832980, -0.8726779962499650, -0.8726779962499650, 0.0642857142857140},
			{0.2060113295832980, -0.4606553370833680, -0.8726779962499650, 0.0642857142857140},
		}, Bounds: &biunit, TPFix: 1.0 / 6.0},
	},

	Hexahedron3_8: {
		2: {Data: [][]float64{
			{0.0, math.Sqrt(2.0 / 3.0), -1 / math.Sqrt(3), 2.0},
			{0.0, -math.Sqrt(2.0 / 3.0), -1 / math.Sqrt(3), 2.0},
			{math.Sqrt(2.0 / 3.0), 0.0, 1 / math.Sqrt(3), 2.0},
			{-math.Sqrt(2.0 / 3.0), 0.0, 1 / math.Sqrt(3), 2.0},
		}, Bounds: &biunit},

		3: {Data: [][]float64{
			{-1.0, 0.0, 0.0, 4.0 / 3.0},
			{1.0, 0.0, 0.0, 4.0 / 3.0},
			{0.0, -1.0, 0.0, 4.0 / 3.0},
			{0.0, 1.0, 0.0, 4.0 / 3.0},
			{0.0, 0.0, -1.0, 4.0 / 3.0},
			{0.0, 0.0, 1.0, 4.0 / 3.0},
		}, Bounds: &biunit},

		5: {Data: [][]float64{
			{-math.Sqrt(19.0 / 30.0), 0.0, 0.0, 320.0 / 361.0},
			{math.Sqrt(19.0 / 30.0), 0.0, 0.0, 320.0 / 361.0},
			{0.0, -math.Sqrt(19.0 / 30.0), 0.0, 320.0 / 361.0},
			{0.0, math.Sqrt(19.0 / 30.0), 0.0, 320.0 / 361.0},
			{0.0, 0.0, -math.Sqrt(19.0 / 30.0), 320.0 / 361.0},
			{0.0, 0.0, math.Sqrt(19.0 / 30.0), 320.0 / 361.0},
			{math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{-math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{-math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{-math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
			{-math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), -math.Sqrt(19.0 / 33.0), 121.0 / 361.0},
		}, Bounds: &biunit},
	},
}
