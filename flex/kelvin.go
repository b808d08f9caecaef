package flex

import "math"

const gamma = 0.57721566490153286

// kei Kelvin function, the radial Green's function of a point load on a thin
// elastic plate over a fluid substrate. Series solution for x<=8 (converges
// to machine precision well past the truncation radius used here), leading
// asymptotic term beyond.
func kei(x float64) float64 {
	if x <= 0. {
		return -math.Pi / 4.
	}
	if x > 8. {
		// kei(x) ~ -sqrt(pi/2x) exp(-x/√2) sin(x/√2 + pi/8)
		u := x / math.Sqrt2
		return -math.Sqrt(math.Pi/(2.*x)) * math.Exp(-u) * math.Sin(u+math.Pi/8.)
	}
	h := x / 2.
	lnterm := math.Log(h) + gamma
	ber, bei, ser := 0., 0., 0.
	t2k := 1.  // (x/2)^{4k} / ((2k)!)²
	hrm := 0.  // harmonic number H_{2k+1}
	sgn := 1.
	for k := 0; k < 20; k++ {
		f2k1 := float64(2*k + 1)
		t2k1 := t2k * h * h / (f2k1 * f2k1) // (x/2)^{4k+2} / ((2k+1)!)²
		hrm += 1. / f2k1
		if k > 0 {
			hrm += 1. / float64(2*k)
		}
		ber += sgn * t2k
		bei += sgn * t2k1
		ser += sgn * hrm * t2k1
		t2k = t2k1 * h * h / (f2k1 + 1.) / (f2k1 + 1.)
		sgn = -sgn
		if t2k < 1e-18 {
			break
		}
	}
	return -lnterm*bei - math.Pi/4.*ber + ser
}
