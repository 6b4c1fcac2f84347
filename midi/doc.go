// Package midi decodes raw MIDI channel messages into synthesizer
// events.
//
// The decoder is transport-agnostic: it works on the three bytes of a
// short message, so it serves both live input (portmidi events) and
// messages read from a file or the network. [Decode] maps note on/off,
// channel pressure, control change and pitch bend to their
// [synth.Event] counterparts and rejects everything else, so callers
// can feed it an unfiltered stream.
package midi
