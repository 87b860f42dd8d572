package assets

import (
	"encoding/binary"
	"testing"

	"github.com/yumeututucosmology/RPG-sub000/prefabs"
)

func TestTone(t *testing.T) {
	cases := []struct {
		name    string
		spec    prefabs.AudioSpec
		samples int
	}{
		{"jump", prefabs.AudioSpec{Frequency: 520, Duration: 0.08, Volume: 0.4}, 3528},
		{"zero_duration", prefabs.AudioSpec{Frequency: 520, Volume: 1}, 0},
		{"zero_frequency", prefabs.AudioSpec{Duration: 0.1, Volume: 1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pcm := Tone(c.spec, SampleRate)
			if len(pcm) != c.samples*4 {
				t.Fatalf("expected %d bytes, got %d", c.samples*4, len(pcm))
			}
		})
	}
}

func TestToneStaysUnderVolumeAndFades(t *testing.T) {
	spec := prefabs.AudioSpec{Frequency: 440, Duration: 0.05, Volume: 0.5}
	pcm := Tone(spec, SampleRate)
	limit := int16(spec.Volume*32767) + 1
	for i := 0; i+3 < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("channels differ at frame %d", i/4)
		}
		if l > limit || l < -limit {
			t.Fatalf("sample %d exceeds volume: %d", i/4, l)
		}
	}
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 1000 || last < -1000 {
		t.Fatalf("tail should have faded, got %d", last)
	}
}
