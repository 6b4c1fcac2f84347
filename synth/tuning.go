package synth

import "math"

// Equal-tempered tuning anchored at A4 (MIDI note 69) = 440 Hz.
const (
	referenceNote      = 69
	referenceFrequency = 440
	notesPerOctave     = 12
)

// NoteFrequency converts a MIDI note number to a frequency in Hz using
// twelve-tone equal temperament. Fractional notes land between semitones,
// which is how pitch bends are applied.
func NoteFrequency(note float64) float64 {
	return referenceFrequency * mathPower2((note-referenceNote)/notesPerOctave)
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
