// Command synthdemo drives the monophonic-per-channel synthesizer,
// either rendering a built-in demo sequence to a WAV file or playing
// live from a MIDI input device.
//
// Usage:
//
//	synthdemo [flags]
//
// Examples:
//
//	synthdemo -list
//	synthdemo -wav demo.wav
//	synthdemo -wav demo.wav -shape sawtooth -rate 44100
//	synthdemo -wav demo.wav -custom
//	synthdemo -play
//	synthdemo -play -device 3
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rakyll/portmidi"

	"github.com/cwbudde/algo-synth/graph"
	"github.com/cwbudde/algo-synth/graph/render"
	"github.com/cwbudde/algo-synth/midi"
	"github.com/cwbudde/algo-synth/synth"
)

func main() {
	list := flag.Bool("list", false, "list MIDI devices and exit")
	play := flag.Bool("play", false, "play live from a MIDI input device")
	wavPath := flag.String("wav", "", "render the demo sequence to this WAV file")
	device := flag.Int("device", -1, "MIDI input device ID (-1 for the system default)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	shapeName := flag.String("shape", "sine", "oscillator shape (sine, square, sawtooth, triangle)")
	custom := flag.Bool("custom", false, "use a custom 1/n harmonic waveform instead of -shape")
	gain := flag.Float64("gain", 0, "pressure damping; higher values make aftertouch quieter")
	fade := flag.Float64("fade", 0.2, "release fade time in seconds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synthdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a demo sequence to WAV or plays live from MIDI input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  synthdemo -list\n")
		fmt.Fprintf(os.Stderr, "  synthdemo -wav demo.wav -shape square\n")
		fmt.Fprintf(os.Stderr, "  synthdemo -play\n")
	}
	flag.Parse()

	var err error
	switch {
	case *list:
		err = listDevices()
	case *wavPath != "":
		err = renderDemo(*wavPath, *rate, *shapeName, *custom, *gain, *fade)
	case *play:
		err = playLive(*device, *rate, *shapeName, *custom, *gain, *fade)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildSynth assembles the engine, the shared tone filter, and the
// synthesizer on top of them.
func buildSynth(rate float64, shapeName string, custom bool, gain, fade float64) (*render.Engine, *synth.Synthesizer, error) {
	shape, err := graph.ParseShape(shapeName)
	if err != nil {
		return nil, nil, err
	}

	engine, err := render.New(rate, render.WithMasterGain(0.8))
	if err != nil {
		return nil, nil, err
	}

	filter, err := synth.NewFilter(engine, graph.FilterTypeLowpass, 350, 0, 1)
	if err != nil {
		return nil, nil, err
	}
	filter.Connect(engine.Destination())

	opts := []synth.Option{
		synth.WithName("synthdemo"),
		synth.WithGain(gain),
		synth.WithFadeTime(fade),
		synth.WithShape(shape),
	}

	if custom {
		wf, err := synth.WaveformFromFunc(func(n int) float64 { return 1 / float64(n) }, 16)
		if err != nil {
			return nil, nil, err
		}
		syn, err := synth.NewCustom(engine, filter, wf, opts...)
		if err != nil {
			return nil, nil, err
		}
		return engine, syn, nil
	}

	syn, err := synth.New(engine, filter, opts...)
	if err != nil {
		return nil, nil, err
	}
	return engine, syn, nil
}

func listDevices() error {
	if err := portmidi.Initialize(); err != nil {
		return fmt.Errorf("initialize portmidi: %w", err)
	}
	defer portmidi.Terminate()

	count := portmidi.CountDevices()
	if count == 0 {
		fmt.Println("no MIDI devices found")
		return nil
	}

	defaultIn := portmidi.DefaultInputDeviceID()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tName\tInterface\tDirection\n")
	fmt.Fprintf(tw, "--\t----\t---------\t---------\n")
	for i := range count {
		id := portmidi.DeviceID(i)
		info := portmidi.Info(id)
		if info == nil {
			continue
		}

		dir := ""
		switch {
		case info.IsInputAvailable && info.IsOutputAvailable:
			dir = "input+output"
		case info.IsInputAvailable:
			dir = "input"
		case info.IsOutputAvailable:
			dir = "output"
		}
		if id == defaultIn && info.IsInputAvailable {
			dir += " (default)"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, info.Name, info.Interface, dir)
	}
	return tw.Flush()
}

// timedEvent is one step of the built-in demo sequence.
type timedEvent struct {
	at float64
	ev synth.Event
}

// demoScore is a short two-channel performance touching every event
// kind: chord entry, aftertouch, a pitch glide up and back, and a
// filter sweep, followed by the release fades.
func demoScore() []timedEvent {
	return []timedEvent{
		{0.0, synth.NoteOn(0, 60)},
		{0.0, synth.Pressure(0, 100)},
		{0.8, synth.NoteOn(1, 64)},
		{0.8, synth.Pressure(1, 80)},
		{1.6, synth.PitchBend(0, 2)},
		{2.0, synth.ControlChange(0, 30)},
		{2.1, synth.ControlChange(0, 60)},
		{2.2, synth.ControlChange(0, 90)},
		{2.6, synth.PitchBend(0, 0)},
		{3.2, synth.NoteOff(0)},
		{3.4, synth.NoteOff(1)},
	}
}

const demoSeconds = 4.0

func renderDemo(path string, rate float64, shapeName string, custom bool, gain, fade float64) error {
	engine, syn, err := buildSynth(rate, shapeName, custom, gain, fade)
	if err != nil {
		return err
	}

	samples := renderScore(engine, syn, demoScore(), demoSeconds)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(f, &bufferStreamer{samples: samples}, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	fmt.Printf("wrote %.1fs of audio to %s\n", demoSeconds, path)
	return nil
}

// renderScore renders the score offline, dispatching each event at its
// sample-accurate position. The score must be ordered by time.
func renderScore(engine *render.Engine, syn *synth.Synthesizer, score []timedEvent, total float64) []float64 {
	out := make([]float64, int(total*engine.SampleRate()))

	cursor := 0
	for _, te := range score {
		until := int(te.at * engine.SampleRate())
		if until > len(out) {
			until = len(out)
		}
		if until > cursor {
			engine.Render(out[cursor:until])
			cursor = until
		}
		syn.Dispatch(te.ev)
	}
	engine.Render(out[cursor:])

	return out
}

func playLive(device int, rate float64, shapeName string, custom bool, gain, fade float64) error {
	engine, syn, err := buildSynth(rate, shapeName, custom, gain, fade)
	if err != nil {
		return err
	}

	if err := portmidi.Initialize(); err != nil {
		return fmt.Errorf("initialize portmidi: %w", err)
	}
	defer portmidi.Terminate()

	id := portmidi.DeviceID(device)
	if device < 0 {
		id = portmidi.DefaultInputDeviceID()
	}

	in, err := portmidi.NewInputStream(id, 1024)
	if err != nil {
		return fmt.Errorf("open MIDI device %d: %w", id, err)
	}
	defer in.Close()

	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(&engineStreamer{engine: engine})

	name := "default input"
	if info := portmidi.Info(id); info != nil {
		name = info.Name
	}
	fmt.Printf("playing from %q; press Ctrl-C to quit\n", name)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	events := in.Listen()
	for {
		select {
		case pe := <-events:
			ev, ok := midi.Decode(byte(pe.Status), byte(pe.Data1), byte(pe.Data2))
			if !ok {
				continue
			}
			// The speaker lock serializes dispatch with the render
			// callback.
			speaker.Lock()
			syn.Dispatch(ev)
			speaker.Unlock()
		case <-interrupt:
			speaker.Clear()
			return nil
		}
	}
}

// engineStreamer adapts the mono engine to beep's stereo streamer for
// live playback.
type engineStreamer struct {
	engine *render.Engine
	buf    []float64
}

func (s *engineStreamer) Stream(samples [][2]float64) (int, bool) {
	if len(s.buf) < len(samples) {
		s.buf = make([]float64, len(samples))
	}

	mono := s.buf[:len(samples)]
	s.engine.Render(mono)
	for i, v := range mono {
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *engineStreamer) Err() error { return nil }

// bufferStreamer streams a pre-rendered mono buffer, duplicated to both
// channels. It reports drained once the buffer is exhausted.
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (b *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}

	n := 0
	for i := range out {
		if b.pos >= len(b.samples) {
			break
		}
		v := b.samples[b.pos]
		out[i][0] = v
		out[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }
