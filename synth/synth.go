package synth

import (
	"fmt"

	"github.com/cwbudde/algo-synth/graph"
)

const (
	// modulationRampSeconds is the duration of pressure and pitch-bend
	// ramps.
	modulationRampSeconds = 0.1

	// controlFrequencyScale converts a control-change delta into a filter
	// frequency offset in Hz.
	controlFrequencyScale = 10

	// pressureDivisorBase normalizes 7-bit pressure values; Config.Gain
	// is added to it before dividing.
	pressureDivisorBase = 128
)

// channelVoice is the oscillator/gain pair driving sound for one channel.
// A voice is created on the channel's first NoteOn and reused for the
// synthesizer's whole lifetime; retuning is cheap, node churn is not.
type channelVoice struct {
	osc  graph.Oscillator
	gain graph.Gain

	note    int
	hasNote bool

	controlBaseline int
	hasBaseline     bool
}

// Synthesizer turns performance events into control-signal updates on an
// audio graph. Each channel is monophonic: it holds at most one voice,
// and a new note retunes the existing one instead of allocating a second.
// All voices feed one shared Filter.
//
// Dispatch is synchronous and never blocks; ramps are scheduled on the
// graph timeline and rendered asynchronously by the graph. Callers must
// serialize events per instance.
type Synthesizer struct {
	graph  graph.Graph
	filter *Filter
	cfg    Config

	voices map[int]*channelVoice

	// initOscillator configures a freshly created oscillator. It is the
	// only point where the basic and custom variants differ.
	initOscillator func(graph.Oscillator)
}

// New creates a synthesizer playing the basic waveform shape from its
// configuration (sine unless changed with WithShape).
func New(g graph.Graph, f *Filter, opts ...Option) (*Synthesizer, error) {
	s, err := newSynthesizer(g, f, opts)
	if err != nil {
		return nil, err
	}
	shape := s.cfg.Shape
	s.initOscillator = func(osc graph.Oscillator) {
		osc.SetShape(shape)
	}
	return s, nil
}

// NewCustom creates a synthesizer playing the given custom waveform.
// The graph renders the waveform peak-normalized unless
// [WithDisableNormalization] is among the options. It fails with
// ErrPeriodicWavesUnsupported when the graph cannot create periodic
// waveforms, so a degraded instrument is never constructed silently.
func NewCustom(g graph.Graph, f *Filter, w Waveform, opts ...Option) (*Synthesizer, error) {
	s, err := newSynthesizer(g, f, opts)
	if err != nil {
		return nil, err
	}
	if !g.SupportsPeriodicWaves() {
		return nil, ErrPeriodicWavesUnsupported
	}
	wave, err := g.NewPeriodicWave(w.Sine, w.Cosine, s.cfg.DisableNormalization)
	if err != nil {
		return nil, fmt.Errorf("synth: build periodic wave: %w", err)
	}
	s.initOscillator = func(osc graph.Oscillator) {
		osc.SetWave(wave)
	}
	return s, nil
}

func newSynthesizer(g graph.Graph, f *Filter, opts []Option) (*Synthesizer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if f == nil {
		return nil, ErrNilFilter
	}
	return &Synthesizer{
		graph:  g,
		filter: f,
		cfg:    ApplyOptions(opts...),
		voices: make(map[int]*channelVoice),
	}, nil
}

// Name returns the instrument label.
func (s *Synthesizer) Name() string { return s.cfg.Name }

// SetGain adjusts the pressure scaling offset after construction. The
// value is read the next time a pressure event is dispatched. Values at
// or below -128 are ignored.
func (s *Synthesizer) SetGain(gain float64) {
	if gain > -pressureDivisorBase {
		s.cfg.Gain = gain
	}
}

// Dispatch applies one event to the per-channel state machine. Events
// addressing a channel without a voice are no-ops, except NoteOn, which
// creates the voice. Dispatch never panics on malformed input.
func (s *Synthesizer) Dispatch(ev Event) {
	switch ev.Kind {
	case EventNoteOn:
		s.noteOn(ev.Channel, ev.Note)
	case EventNoteOff:
		s.noteOff(ev.Channel)
	case EventPressure:
		s.pressure(ev.Channel, ev.Value)
	case EventPitchBend:
		s.pitchBend(ev.Channel, ev.Bend)
	case EventControlChange:
		s.controlChange(ev.Channel, ev.Value)
	}
}

func (s *Synthesizer) noteOn(channel, note int) {
	// Notes far enough out of range overflow the tuning curve; ignore
	// them like non-finite bend targets.
	hz := NoteFrequency(float64(note))
	if !isFinite(hz) {
		return
	}
	voice, ok := s.voices[channel]
	if !ok {
		voice = s.newVoice(hz)
		s.voices[channel] = voice
	} else {
		voice.osc.SetFrequency(hz)
	}
	voice.note = note
	voice.hasNote = true
}

// newVoice allocates and wires the oscillator/gain pair for a channel.
// The gain starts at zero, so the voice is inaudible until a pressure
// event raises it.
func (s *Synthesizer) newVoice(hz float64) *channelVoice {
	osc := s.graph.NewOscillator()
	s.initOscillator(osc)
	osc.SetFrequency(hz)

	gain := s.graph.NewGain()
	gain.SetGain(0)

	osc.Connect(gain)
	gain.Connect(s.filter.node)
	osc.Start()

	return &channelVoice{osc: osc, gain: gain}
}

func (s *Synthesizer) noteOff(channel int) {
	voice, ok := s.voices[channel]
	if !ok {
		return
	}
	voice.gain.RampGainLinear(0, s.graph.Now()+s.cfg.FadeTime)
	s.filter.resetFrequency()
	voice.hasBaseline = false
}

func (s *Synthesizer) pressure(channel, value int) {
	voice, ok := s.voices[channel]
	if !ok {
		return
	}
	target := float64(value) / (pressureDivisorBase + s.cfg.Gain)
	voice.gain.RampGainLinear(target, s.graph.Now()+modulationRampSeconds)
}

func (s *Synthesizer) pitchBend(channel int, semitones float64) {
	voice, ok := s.voices[channel]
	if !ok || !voice.hasNote {
		return
	}
	modulated := float64(voice.note) + semitones
	if !isFinite(modulated) {
		return
	}
	hz := NoteFrequency(modulated)
	if !isFinite(hz) {
		return
	}
	voice.osc.RampFrequencyExponential(hz, s.graph.Now()+modulationRampSeconds)
}

func (s *Synthesizer) controlChange(channel, value int) {
	voice, ok := s.voices[channel]
	if !ok {
		return
	}
	if !voice.hasBaseline {
		voice.controlBaseline = value
		voice.hasBaseline = true
		return
	}
	delta := value - voice.controlBaseline
	s.filter.UpdateFrequency(s.filter.defaultFrequency + float64(delta)*controlFrequencyScale)
}
