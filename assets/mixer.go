package assets

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var ErrUnknownSound = errors.New("assets: unknown sound")

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	if c := audio.CurrentContext(); c != nil {
		return c
	}
	return audio.NewContext(SampleRate)
}

// Mixer owns one player per synthesized sound. One-shots restart on every
// Play; looping sounds resume where they were paused.
type Mixer struct {
	players map[string]*audio.Player
	loops   map[string]bool
	muted   bool
}

// NewMixer synthesizes every sound in the table on the given context.
func NewMixer(ctx *audio.Context, table SoundTable) (*Mixer, error) {
	m := &Mixer{
		players: make(map[string]*audio.Player, len(table.Sounds)),
		loops:   make(map[string]bool),
	}
	for i, name := range table.Names() {
		def := table.Sounds[name]
		pcm := Synthesize(def, uint64(i+1))
		var (
			p   *audio.Player
			err error
		)
		if def.Loop {
			p, err = ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
			if err != nil {
				return nil, fmt.Errorf("assets: player %s: %w", name, err)
			}
			m.loops[name] = true
		} else {
			p = ctx.NewPlayerFromBytes(pcm)
		}
		m.players[name] = p
	}
	slog.Debug("sounds synthesized", "system", "audio", "count", len(m.players))
	return m, nil
}

func (m *Mixer) player(name string) (*audio.Player, error) {
	p, ok := m.players[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return p, nil
}

// Play restarts a sound from the beginning.
func (m *Mixer) Play(name string) error {
	p, err := m.player(name)
	if err != nil {
		return err
	}
	if m.muted {
		return nil
	}
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("assets: rewind %s: %w", name, err)
	}
	p.Play()
	return nil
}

// Loop starts or resumes a looping sound. It is a no-op if already playing.
func (m *Mixer) Loop(name string) error {
	p, err := m.player(name)
	if err != nil {
		return err
	}
	if m.muted || p.IsPlaying() {
		return nil
	}
	p.Play()
	return nil
}

func (m *Mixer) Pause(name string) {
	if p, err := m.player(name); err == nil {
		p.Pause()
	}
}

// Stop pauses a sound and rewinds it so the next start begins at zero.
func (m *Mixer) Stop(name string) {
	p, err := m.player(name)
	if err != nil {
		return
	}
	p.Pause()
	if err := p.Rewind(); err != nil {
		slog.Warn("audio rewind failed", "system", "audio", "sound", name, "err", err)
	}
}

// SetMuted silences every sound. Muting pauses what is playing.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
	if !muted {
		return
	}
	for _, p := range m.players {
		p.Pause()
	}
}

func (m *Mixer) Muted() bool {
	return m.muted
}

// Close releases every player.
func (m *Mixer) Close() error {
	var errs []error
	for name, p := range m.players {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("assets: close %s: %w", name, err))
		}
	}
	m.players = nil
	return errors.Join(errs...)
}
