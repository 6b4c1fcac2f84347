package synth

import "fmt"

// EventKind identifies a performance event variant.
type EventKind int

const (
	// EventNoteOn starts or retunes the voice of a channel.
	EventNoteOn EventKind = iota
	// EventNoteOff fades the voice of a channel to silence.
	EventNoteOff
	// EventPressure adjusts the loudness of a sounding voice.
	EventPressure
	// EventPitchBend glides a sounding voice by fractional semitones.
	EventPitchBend
	// EventControlChange modulates the filter frequency relative to the
	// first control value seen on the channel.
	EventControlChange

	eventKindCount // sentinel for validation
)

var eventKindNames = [eventKindCount]string{
	"note-on", "note-off", "pressure", "pitch-bend", "control-change",
}

// String returns the name of the event kind.
func (k EventKind) String() string {
	if k >= 0 && k < eventKindCount {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k >= 0 && k < eventKindCount
}

// Event is one performance message addressed to a channel. Events are
// plain values, produced by an external source and never mutated by the
// engine. Only the fields relevant to the Kind are meaningful.
type Event struct {
	Kind    EventKind
	Channel int
	Note    int     // NoteOn
	Value   int     // Pressure, ControlChange
	Bend    float64 // PitchBend, in semitones
}

// NoteOn returns an event starting (or retuning) note on channel.
func NoteOn(channel, note int) Event {
	return Event{Kind: EventNoteOn, Channel: channel, Note: note}
}

// NoteOff returns an event releasing the voice of channel.
func NoteOff(channel int) Event {
	return Event{Kind: EventNoteOff, Channel: channel}
}

// Pressure returns an aftertouch event for channel. Values follow the
// 7-bit convention: 0 is silent, 127 is full pressure.
func Pressure(channel, value int) Event {
	return Event{Kind: EventPressure, Channel: channel, Value: value}
}

// PitchBend returns a bend event gliding the voice of channel by the
// given number of semitones. Fractions are allowed; negative values bend
// downward.
func PitchBend(channel int, semitones float64) Event {
	return Event{Kind: EventPitchBend, Channel: channel, Bend: semitones}
}

// ControlChange returns a controller event for channel.
func ControlChange(channel, value int) Event {
	return Event{Kind: EventControlChange, Channel: channel, Value: value}
}
