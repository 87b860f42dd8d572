package prefabs

import (
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yumeututucosmology/RPG-sub000/ai"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"golang.org/x/image/colornames"
)

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	spec, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if *spec != DefaultTuningSpec() {
		t.Fatalf("tuning.yaml drifted from the defaults:\n%+v\n%+v", *spec, DefaultTuningSpec())
	}
}

func TestParseTuningSpec(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, s *TuningSpec)
	}{
		{
			name: "partial_keeps_defaults",
			yaml: "locomotion:\n  walk_speed: 6\n",
			check: func(t *testing.T, s *TuningSpec) {
				if s.Locomotion.WalkSpeed != 6 {
					t.Fatalf("walk_speed = %v", s.Locomotion.WalkSpeed)
				}
				if s.Locomotion.DashSpeed != DefaultTuningSpec().Locomotion.DashSpeed {
					t.Fatalf("dash_speed lost its default")
				}
			},
		},
		{name: "negative_speed", yaml: "locomotion:\n  walk_speed: -1\n", wantErr: true},
		{name: "inset_too_large", yaml: "locomotion:\n  vertical_inset: 1\n", wantErr: true},
		{name: "insets_swapped", yaml: "locomotion:\n  horizontal_skin: 0.2\n  vertical_inset: 0.05\n", wantErr: true},
		{name: "not_yaml", yaml: "locomotion: [", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := ParseTuningSpec([]byte(c.yaml))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			c.check(t, s)
		})
	}
}

func TestLoadCastSpec(t *testing.T) {
	spec, err := LoadCastSpec()
	if err != nil {
		t.Fatalf("load cast: %v", err)
	}
	for _, m := range spec.Party {
		if m.Name == "" || m.Color == nil || m.Size <= 0 {
			t.Fatalf("incomplete party member %+v", m)
		}
	}
	defined := map[string]bool{}
	for _, snd := range spec.Sounds {
		defined[snd.Name] = true
	}
	for _, name := range []string{
		locomotion.SEJump, locomotion.SELand, locomotion.SEAttack,
		locomotion.SEDash, locomotion.SEFootstep, locomotion.SERespawn,
	} {
		if !defined[name] {
			t.Fatalf("cast has no sound for %q", name)
		}
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := DiskDir
	DiskDir = dir
	defer func() { DiskDir = old }()

	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("locomotion:\n  walk_speed: 2.5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Locomotion.WalkSpeed != 2.5 {
		t.Fatalf("disk copy ignored, walk_speed = %v", spec.Locomotion.WalkSpeed)
	}
	if dirs := WatchDirs(); len(dirs) != 1 || dirs[0] != dir {
		t.Fatalf("WatchDirs = %v", dirs)
	}
}

func TestWanderScriptDecisions(t *testing.T) {
	src, err := LoadScript("wander.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	tuning := ai.DefaultWanderTuning()
	d, err := ai.NewScriptDecider("wander.tengo", src, rand.New(rand.NewSource(5)), &tuning, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	for i := 0; i < 200; i++ {
		walk := d.Decide(ai.ModeIdle)
		if walk.Mode != ai.ModeWalk {
			t.Fatalf("idle should lead to walk, got %v", walk.Mode)
		}
		if walk.Duration < tuning.WalkMin || walk.Duration > tuning.WalkMax {
			t.Fatalf("walk duration %v out of range", walk.Duration)
		}
		if walk.Heading < 0 || walk.Heading >= 2*math.Pi {
			t.Fatalf("heading %v out of range", walk.Heading)
		}
		if idle := d.Decide(ai.ModeWalk); idle.Mode != ai.ModeIdle {
			t.Fatalf("walk should lead to idle, got %v", idle.Mode)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, TuningFile), []byte("party: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		for _, name := range w.Drain() {
			if name == "notes.txt" {
				t.Fatalf("non-spec file reported")
			}
			if name == TuningFile {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("no event for %s", TuningFile)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "peru", want: colornames.Peru},
		{in: "MediumSeaGreen", want: colornames.Mediumseagreen},
		{in: "#e8c547", want: color.NRGBA{R: 0xe8, G: 0xc5, B: 0x47, A: 0xff}},
		{in: "10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "#abc", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}
