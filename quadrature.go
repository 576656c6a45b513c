package axionfield

import "math"

// Adaptive quadrature in the spirit of the QUADPACK QAG/QAWO routines:
// interval bisection driven by per-interval error estimates from a 15-point
// Gauss-Kronrod rule, with a bounded number of stored intervals. Each
// routine reports (estimate, absolute error, status); a non-zero status is a
// hard failure for the call.

// Quadrature status codes.
const (
	quadOK       = 0
	quadMaxIter  = 11 // interval limit reached before the tolerance
	quadRoundoff = 18 // tolerance unreachable at machine precision
)

// 15-point Kronrod nodes on [-1, 1] (positive half) and the matching
// Kronrod and 7-point Gauss weights, from the QUADPACK qk15 rule.
var (
	xgk15 = [8]float64{
		0.991455371120813, 0.949107912342759, 0.864864423359769,
		0.741531185599394, 0.586087235467691, 0.405845151377397,
		0.207784955007898, 0.000000000000000,
	}
	wgk15 = [8]float64{
		0.022935322010529, 0.063092092629979, 0.104790010322250,
		0.140653259715525, 0.169004726639267, 0.190350578064785,
		0.204432940075298, 0.209482141084728,
	}
	wg7 = [4]float64{
		0.129484966168870, 0.279705391489277,
		0.381830050505119, 0.417959183673469,
	}
)

type quadInterval struct {
	a, b   float64
	result float64
	abserr float64
}

// kronrod15 applies the 15-point Gauss-Kronrod rule on [a, b] and returns
// the Kronrod estimate with the QUADPACK error estimate derived from the
// Gauss-Kronrod difference.
func kronrod15(f func(float64) float64, a, b float64) (result, abserr float64) {
	center := 0.5 * (a + b)
	halfLength := 0.5 * (b - a)

	fc := f(center)
	resultGauss := wg7[3] * fc
	resultKronrod := wgk15[7] * fc
	resabs := wgk15[7] * math.Abs(fc)

	var fv1, fv2 [8]float64
	fv1[7], fv2[7] = fc, fc
	for j := 0; j < 7; j++ {
		abscissa := halfLength * xgk15[j]
		f1 := f(center - abscissa)
		f2 := f(center + abscissa)
		fv1[j], fv2[j] = f1, f2
		resultKronrod += wgk15[j] * (f1 + f2)
		resabs += wgk15[j] * (math.Abs(f1) + math.Abs(f2))
		if j%2 == 1 {
			resultGauss += wg7[j/2] * (f1 + f2)
		}
	}

	mean := resultKronrod * 0.5
	resasc := wgk15[7] * math.Abs(fc-mean)
	for j := 0; j < 7; j++ {
		resasc += wgk15[j] * (math.Abs(fv1[j]-mean) + math.Abs(fv2[j]-mean))
	}

	result = resultKronrod * halfLength
	resabs *= math.Abs(halfLength)
	resasc *= math.Abs(halfLength)

	abserr = math.Abs((resultKronrod - resultGauss) * halfLength)
	if resasc != 0 && abserr != 0 {
		abserr = resasc * math.Min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	eps := math.Nextafter(1, 2) - 1
	uflow := math.SmallestNonzeroFloat64
	if resabs > uflow/(50*eps) {
		abserr = math.Max(abserr, 50*eps*resabs)
	}
	return result, abserr
}

// adaptiveQuadrature bisects the worst interval until the summed error
// satisfies max(epsAbs, epsRel*|result|) or the interval store is full.
func adaptiveQuadrature(f func(float64) float64, initial []quadInterval,
	epsAbs, epsRel float64, limit int) (float64, float64, int) {
	if limit < len(initial) {
		limit = len(initial)
	}
	intervals := make([]quadInterval, 0, limit)
	for _, iv := range initial {
		iv.result, iv.abserr = kronrod15(f, iv.a, iv.b)
		intervals = append(intervals, iv)
	}

	eps := math.Nextafter(1, 2) - 1
	for {
		result, errSum := 0.0, 0.0
		worst := 0
		for i, iv := range intervals {
			result += iv.result
			errSum += iv.abserr
			if iv.abserr > intervals[worst].abserr {
				worst = i
			}
		}

		tolerance := math.Max(epsAbs, epsRel*math.Abs(result))
		if errSum <= tolerance {
			return result, errSum, quadOK
		}
		if len(intervals) >= limit {
			return result, errSum, quadMaxIter
		}

		iv := intervals[worst]
		mid := 0.5 * (iv.a + iv.b)
		if mid <= iv.a || mid >= iv.b || math.Abs(iv.b-iv.a) < 100*eps*math.Abs(mid) {
			// Interval can no longer be split at machine precision.
			return result, errSum, quadRoundoff
		}
		left := quadInterval{a: iv.a, b: mid}
		right := quadInterval{a: mid, b: iv.b}
		left.result, left.abserr = kronrod15(f, left.a, left.b)
		right.result, right.abserr = kronrod15(f, right.a, right.b)
		intervals[worst] = left
		intervals = append(intervals, right)
	}
}

// integrateQAG integrates a smooth function over [a, b] adaptively.
func integrateQAG(f func(float64) float64, a, b, epsAbs, epsRel float64,
	limit int) (float64, float64, int) {
	return adaptiveQuadrature(f, []quadInterval{{a: a, b: b}}, epsAbs, epsRel, limit)
}

// Oscillatory weight selection for integrateQAWO.
type qawoWeight int

const (
	qawoCosine qawoWeight = iota
	qawoSine
)

// integrateQAWO integrates f(x)*cos(omega*x) or f(x)*sin(omega*x) over
// [a, a+length]. The interval is pre-partitioned so that no initial segment
// spans more than half an oscillation period, bounded by 2^levels segments;
// the adaptive loop then refines as for the plain rule.
func integrateQAWO(f func(float64) float64, a, length, omega float64,
	weight qawoWeight, levels int, epsAbs, epsRel float64, limit int) (float64, float64, int) {

	g := func(x float64) float64 { return f(x) * math.Cos(omega*x) }
	if weight == qawoSine {
		g = func(x float64) float64 { return f(x) * math.Sin(omega*x) }
	}

	segments := 1
	if omega != 0 {
		periods := math.Abs(omega) * length / math.Pi
		for segments < int(periods)+1 {
			segments *= 2
		}
	}
	if levels > 0 && levels < 31 && segments > 1<<uint(levels) {
		segments = 1 << uint(levels)
	}
	if segments > limit/2 && limit >= 2 {
		segments = limit / 2
	}
	if segments < 1 {
		segments = 1
	}

	initial := make([]quadInterval, segments)
	step := length / float64(segments)
	for i := range initial {
		initial[i] = quadInterval{a: a + float64(i)*step, b: a + float64(i+1)*step}
	}
	initial[segments-1].b = a + length

	return adaptiveQuadrature(g, initial, epsAbs, epsRel, limit)
}
