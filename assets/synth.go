package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gopkg.in/yaml.v3"
)

// SampleRate is the rate every sound is synthesized at.
const SampleRate = 44100

// attack is the linear fade-in that keeps the start of a sound click free.
const attack = 0.005

var ErrInvalidSound = errors.New("assets: invalid sound")

type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

var waveNames = map[string]Waveform{
	"sine":     WaveSine,
	"square":   WaveSquare,
	"saw":      WaveSaw,
	"triangle": WaveTriangle,
	"noise":    WaveNoise,
}

func (w Waveform) String() string {
	for name, v := range waveNames {
		if v == w {
			return name
		}
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

func (w *Waveform) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("wave must be a string")
	}
	v, ok := waveNames[value.Value]
	if !ok {
		return fmt.Errorf("unknown wave %q", value.Value)
	}
	*w = v
	return nil
}

// sample returns the waveform value in [-1, 1] at phase in [0, 1).
func (w Waveform) sample(phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// SoundDef describes one procedural sound.
type SoundDef struct {
	Wave     Waveform  `yaml:"wave"`
	Freq     float64   `yaml:"freq"`
	SweepTo  float64   `yaml:"sweep_to"`
	Notes    []float64 `yaml:"notes"`
	Duration float64   `yaml:"duration"`
	Decay    float64   `yaml:"decay"`
	Pulse    float64   `yaml:"pulse"`
	Volume   float64   `yaml:"volume"`
	Loop     bool      `yaml:"loop"`
}

type SoundTable struct {
	Sounds map[string]SoundDef `yaml:"sounds"`
}

// Names returns the sound names in sorted order.
func (t SoundTable) Names() []string {
	names := make([]string, 0, len(t.Sounds))
	for name := range t.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t SoundTable) Validate() error {
	if len(t.Sounds) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidSound)
	}
	for _, name := range t.Names() {
		def := t.Sounds[name]
		if def.Duration <= 0 {
			return fmt.Errorf("%w: %s: duration must be positive", ErrInvalidSound, name)
		}
		if def.Volume < 0 || def.Volume > 1 {
			return fmt.Errorf("%w: %s: volume %v outside [0, 1]", ErrInvalidSound, name, def.Volume)
		}
		if def.Wave != WaveNoise && def.Freq <= 0 && len(def.Notes) == 0 {
			return fmt.Errorf("%w: %s: tonal sound needs freq or notes", ErrInvalidSound, name)
		}
	}
	return nil
}

// Synthesize renders def as 16-bit little-endian stereo PCM at SampleRate,
// the layout ebiten's audio players expect. The same seed always yields the
// same bytes.
func Synthesize(def SoundDef, seed uint64) []byte {
	n := int(def.Duration * SampleRate)
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq, local := def.frequencyAt(t)
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		v := def.Wave.sample(phase, rng) * envelope(local, def.Decay) * def.Volume
		v = math.Max(-1, math.Min(1, v))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

// frequencyAt returns the pitch at time t and the time since the envelope
// was last triggered.
func (d SoundDef) frequencyAt(t float64) (freq, local float64) {
	switch {
	case len(d.Notes) > 0:
		noteLen := d.Duration / float64(len(d.Notes))
		idx := min(int(t/noteLen), len(d.Notes)-1)
		return d.Notes[idx], t - float64(idx)*noteLen
	case d.Pulse > 0:
		return d.Freq, math.Mod(t, d.Pulse)
	case d.SweepTo > 0:
		return d.Freq + (d.SweepTo-d.Freq)*t/d.Duration, t
	}
	return d.Freq, t
}

func envelope(t, decay float64) float64 {
	gain := 1.0
	if t < attack {
		gain = t / attack
	}
	if decay > 0 {
		gain *= math.Exp(-decay * t)
	}
	return gain
}
