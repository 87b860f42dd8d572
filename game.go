package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yumeututucosmology/RPG-sub000/assets"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/config"
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/entity"
	"github.com/yumeututucosmology/RPG-sub000/ecs/system"
	"github.com/yumeututucosmology/RPG-sub000/input"
	"github.com/yumeututucosmology/RPG-sub000/input/keyboard"
	"github.com/yumeututucosmology/RPG-sub000/levels"
	"github.com/yumeututucosmology/RPG-sub000/prefabs"
	"github.com/yumeututucosmology/RPG-sub000/stage"
	"go.uber.org/zap"
)

type Game struct {
	cfg   *config.Config
	debug bool
	log   *zap.Logger

	level  *levels.Level
	stage  *stage.Stage
	tuning *prefabs.TuningSpec
	input  *input.State

	world    *ecs.World
	sched    *ecs.Scheduler
	inputSys *system.InputSystem
	watcher  *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	frames  int
}

func NewGame(cfg *config.Config, debug bool, log *zap.Logger) (*Game, error) {
	lvl, err := loadLevel(cfg.Level.Name)
	if err != nil {
		return nil, err
	}
	st, err := stage.FromLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		log.Warn("tuning unavailable, using defaults", zap.Error(err))
		def := prefabs.DefaultTuningSpec()
		tuning = &def
	}
	applySimulation(tuning, cfg.Simulation)

	cast, err := prefabs.LoadCastSpec()
	if err != nil {
		return nil, err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		debug:  debug,
		log:    log,
		level:  lvl,
		stage:  st,
		tuning: tuning,
		input:  input.NewState(input.NewFileStore(cfg.Storage.Dir)),
		world:  ecs.NewWorld(),
	}

	deps := &entity.Deps{
		Stage:      st,
		Tuning:     tuning,
		Cast:       cast,
		Input:      g.input,
		Rand:       rand.New(rand.NewSource(seed)),
		Log:        log,
		LoadScript: prefabs.LoadScript,
	}
	if err := entity.BuildLevel(g.world, lvl, deps); err != nil {
		return nil, err
	}

	var se system.SEPlayer
	if bank, err := assets.NewSoundBank(cast.Sounds); err != nil {
		log.Warn("sound effects disabled", zap.Error(err))
	} else {
		se = bank
	}

	g.inputSys = system.NewInputSystem(g.input, keyboard.NewSource())
	g.sched = ecs.NewScheduler(
		g.inputSys,
		system.NewPartySystem(),
		system.NewLocomotionSystem(),
		system.NewWanderSystem(),
		system.NewAudioSystem(se, log),
	)
	g.pauseUI = NewPauseUI(g)

	if debug {
		if w, err := prefabs.NewWatcher(prefabs.WatchDirs()...); err != nil {
			log.Warn("tuning hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func loadLevel(name string) (*levels.Level, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err == nil {
		return lvl, nil
	}
	if fileLvl, fileErr := levels.LoadLevelFile(name); fileErr == nil {
		return fileLvl, nil
	}
	return nil, err
}

func applySimulation(t *prefabs.TuningSpec, sim config.SimulationConfig) {
	if sim.MaxDT > 0 {
		t.Locomotion.MaxDT = sim.MaxDT
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reloadTuning()

	dt := 1.0 / float64(common.TPS)
	if g.paused {
		g.inputSys.Update(g.world, dt)
		g.pauseUI.Update()
		if g.input.IsJustPressed(input.ActionPause) {
			g.resume()
		}
		return nil
	}

	g.sched.Update(g.world, dt)
	if g.input.IsJustPressed(input.ActionPause) {
		g.input.ConsumeAction(input.ActionPause)
		g.paused = true
	}
	return nil
}

func (g *Game) resume() {
	g.paused = false
	// Keys released while the menu was open must not stay down.
	g.input.ReleaseAll()
}

func (g *Game) resetBindings() {
	if err := g.input.ResetToDefault(); err != nil {
		g.log.Warn("reset bindings: save failed", zap.Error(err))
		return
	}
	g.log.Info("key bindings reset to defaults")
}

// reloadTuning overwrites the shared tuning in place so every actor sees
// the new values on its next tick.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		if name != prefabs.TuningFile {
			g.log.Info("spec changed, restart to apply", zap.String("file", name))
			continue
		}
		spec, err := prefabs.LoadTuningSpec()
		if err != nil {
			g.log.Warn("tuning reload failed", zap.Error(err))
			continue
		}
		applySimulation(spec, g.cfg.Simulation)
		*g.tuning = *spec
		g.log.Info("tuning reloaded")
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.stage)
	drawHUD(screen, g.world, g.debug)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
