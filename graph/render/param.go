package render

import "math"

// paramCurve selects the interpolation of a scheduled segment.
type paramCurve int

const (
	curveLinear paramCurve = iota
	curveExponential
)

// param is one automatable value. At most one scheduled segment is active
// at a time: scheduling replaces whatever was in flight, so the most
// recent call wins regardless of how the segments overlap.
type param struct {
	value float64

	active bool
	curve  paramCurve
	v0, v1 float64
	t0, t1 float64
}

func newParam(v float64) param {
	return param{value: v}
}

// set applies v immediately and cancels any scheduled segment.
func (p *param) set(v float64) {
	p.value = v
	p.active = false
}

// rampTo schedules a segment from the value at now toward v1, ending at
// t1. An exponential segment whose endpoints straddle or touch zero is
// downgraded to linear, keeping the output finite.
func (p *param) rampTo(v1, t1, now float64, curve paramCurve) {
	v0 := p.at(now)
	if t1 <= now {
		p.set(v1)
		return
	}
	if curve == curveExponential && v0*v1 <= 0 {
		curve = curveLinear
	}

	p.value = v0
	p.active = true
	p.curve = curve
	p.v0, p.v1 = v0, v1
	p.t0, p.t1 = now, t1
}

// at returns the parameter value at time t. Once t passes the end of the
// active segment, the target becomes the new resting value.
func (p *param) at(t float64) float64 {
	if !p.active {
		return p.value
	}
	if t >= p.t1 {
		p.value = p.v1
		p.active = false
		return p.value
	}
	if t <= p.t0 {
		return p.v0
	}

	u := (t - p.t0) / (p.t1 - p.t0)
	if p.curve == curveExponential {
		return p.v0 * math.Pow(p.v1/p.v0, u)
	}
	return p.v0 + (p.v1-p.v0)*u
}
