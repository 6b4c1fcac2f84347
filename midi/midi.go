package midi

import "github.com/cwbudde/algo-synth/synth"

// Status nibbles of the channel messages the decoder understands.
const (
	statusNoteOff         = 0x80
	statusNoteOn          = 0x90
	statusControlChange   = 0xB0
	statusChannelPressure = 0xD0
	statusPitchBend       = 0xE0
)

// bendRangeSemitones is the pitch range a full wheel deflection covers.
const bendRangeSemitones = 2.0

// pitchBendCenter is the 14-bit wheel value at rest.
const pitchBendCenter = 8192

// Decode translates a short MIDI message into a synthesizer event. The
// second return value is false for messages the synthesizer has no use
// for (system messages, program changes, polyphonic aftertouch) and for
// malformed messages with data bytes out of the 7-bit range.
//
// A note-on with velocity zero decodes as a note-off, as the wire
// format prescribes.
func Decode(status, data1, data2 byte) (synth.Event, bool) {
	if data1 > 0x7F || data2 > 0x7F {
		return synth.Event{}, false
	}

	channel := int(status & 0x0F)

	switch status & 0xF0 {
	case statusNoteOn:
		if data2 == 0 {
			return synth.NoteOff(channel), true
		}
		return synth.NoteOn(channel, int(data1)), true

	case statusNoteOff:
		return synth.NoteOff(channel), true

	case statusChannelPressure:
		return synth.Pressure(channel, int(data1)), true

	case statusControlChange:
		return synth.ControlChange(channel, int(data2)), true

	case statusPitchBend:
		wheel := int(data1) | int(data2)<<7
		semitones := float64(wheel-pitchBendCenter) / pitchBendCenter * bendRangeSemitones
		return synth.PitchBend(channel, semitones), true
	}

	return synth.Event{}, false
}
