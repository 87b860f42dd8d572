package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yumeututucosmology/RPG-sub000/prefabs"
)

const SampleRate = 44100

// Tone renders a short sine blip with a linear fade out as 16-bit little
// endian stereo PCM, the layout audio.Context.NewPlayerFromBytes expects.
func Tone(spec prefabs.AudioSpec, sampleRate int) []byte {
	n := int(math.Round(spec.Duration * float64(sampleRate)))
	if n <= 0 || spec.Frequency <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, spec.Volume))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		s := math.Sin(2*math.Pi*spec.Frequency*float64(i)/float64(sampleRate)) * vol * env
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// SoundBank plays the synthesized sound effects listed in the cast.
type SoundBank struct {
	ctx     *audio.Context
	players map[string]*audio.Player
}

func NewSoundBank(specs []prefabs.AudioSpec) (*SoundBank, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	b := &SoundBank{ctx: ctx, players: map[string]*audio.Player{}}
	for _, spec := range specs {
		pcm := Tone(spec, ctx.SampleRate())
		if pcm == nil {
			return nil, fmt.Errorf("assets: sound %q has no samples", spec.Name)
		}
		b.players[spec.Name] = ctx.NewPlayerFromBytes(pcm)
	}
	return b, nil
}

// PlaySE restarts the named effect from the beginning.
func (b *SoundBank) PlaySE(name string) error {
	p, ok := b.players[name]
	if !ok {
		return fmt.Errorf("assets: unknown sound %q", name)
	}
	if err := p.Rewind(); err != nil {
		return err
	}
	p.Play()
	return nil
}
