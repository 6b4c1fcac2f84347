package render

import (
	"math"

	"github.com/cwbudde/algo-synth/graph"
)

const defaultQ = 1 / math.Sqrt2

// biquadCoefficients holds the transfer function of a second-order
// section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = b0*x + d0
//	d0 = b1*x - a1*y + d1
//	d1 = b2*x - a2*y
type biquadCoefficients struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// biquadSection is a single biquad with coefficients and delay-line
// state. Replacing the coefficients keeps the state, so parameter
// changes do not click the delay line back to zero.
type biquadSection struct {
	biquadCoefficients
	d0, d1 float64
}

func (s *biquadSection) setCoefficients(c biquadCoefficients) {
	s.biquadCoefficients = c
}

func (s *biquadSection) reset() {
	s.d0 = 0
	s.d1 = 0
}

// processBlock filters buf in place. Zero-alloc.
func (s *biquadSection) processBlock(buf []float64) {
	b0, b1, b2 := s.b0, s.b1, s.b2
	a1, a2 := s.a1, s.a2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// response computes the complex frequency response H(e^jw) at freqHz.
func (c *biquadCoefficients) response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := complex(math.Cos(w), -math.Sin(w))
	ej2w := complex(math.Cos(2*w), -math.Sin(2*w))

	num := complex(c.b0, 0) + complex(c.b1, 0)*ejw + complex(c.b2, 0)*ej2w
	den := complex(1, 0) + complex(c.a1, 0)*ejw + complex(c.a2, 0)*ej2w
	return num / den
}

// designBiquad computes RBJ cookbook coefficients for the given filter
// kind. gainDB only affects the peak and shelf kinds. Out-of-range
// frequencies yield identity coefficients rather than blowing up.
func designBiquad(kind graph.FilterType, freq, gainDB, q, sampleRate float64) biquadCoefficients {
	switch kind {
	case graph.FilterTypeLowpass:
		return designLowpass(freq, q, sampleRate)
	case graph.FilterTypeHighpass:
		return designHighpass(freq, q, sampleRate)
	case graph.FilterTypeBandpass:
		return designBandpass(freq, q, sampleRate)
	case graph.FilterTypeNotch:
		return designNotch(freq, q, sampleRate)
	case graph.FilterTypeAllpass:
		return designAllpass(freq, q, sampleRate)
	case graph.FilterTypePeak:
		return designPeak(freq, gainDB, q, sampleRate)
	case graph.FilterTypeLowShelf:
		return designLowShelf(freq, gainDB, q, sampleRate)
	case graph.FilterTypeHighShelf:
		return designHighShelf(freq, gainDB, q, sampleRate)
	default:
		return identityBiquad()
	}
}

func designLowpass(freq, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designHighpass(freq, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designBandpass(freq, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := sw / 2
	b1 := 0.0
	b2 := -sw / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designNotch(freq, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1.0
	b1 := -2 * cw
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designAllpass(freq, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1 - alpha
	b1 := -2 * cw
	b2 := 1 + alpha
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designPeak(freq, gainDB, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designLowShelf(freq, gainDB, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func designHighShelf(freq, gainDB, q, sampleRate float64) biquadCoefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identityBiquad()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func identityBiquad() biquadCoefficients {
	return biquadCoefficients{b0: 1}
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquadCoefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return identityBiquad()
	}

	return biquadCoefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}
