package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
	"github.com/yumeututucosmology/RPG-sub000/stage"
	"golang.org/x/image/colornames"
)

// pixels per metre in the top-down view
const zoom = 24.0

type camera struct {
	x, z float64
}

// toScreen maps the ground plane so -Z (forward) points up the screen.
func (c camera) toScreen(x, z float64) (float32, float32) {
	return float32((x-c.x)*zoom + common.BaseWidth/2), float32((z-c.z)*zoom + common.BaseHeight/2)
}

func focus(w *ecs.World) camera {
	_, pc, ok := ecs.First(w, component.PartyComponent.Kind())
	if !ok || pc.Party == nil {
		return camera{}
	}
	p := pc.Party.Active().State().Position
	return camera{x: p.X, z: p.Z}
}

func blockShade(h float64) color.Color {
	v := uint8(50 + math.Min(h, 5)/5*150)
	return color.RGBA{R: v, G: v, B: v + 10, A: 255}
}

func drawWorld(screen *ebiten.Image, w *ecs.World, st *stage.Stage) {
	screen.Fill(colornames.Black)
	cam := focus(w)

	blocks := append([]stage.ColliderBlock(nil), st.Blocks()...)
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Height < blocks[j].Height })
	for _, b := range blocks {
		x0, y0 := cam.toScreen(b.Footprint.L, b.Footprint.B)
		x1, y1 := cam.toScreen(b.Footprint.R, b.Footprint.T)
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, blockShade(b.Height), false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Dimgray, false)
		if b.Height > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", b.Height), int(x0)+2, int(y0)+2)
		}
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AppearanceComponent.Kind(), func(e ecs.Entity, tr *component.Transform, ap *component.Appearance) {
		half := ap.Size / 2
		x0, y0 := cam.toScreen(tr.Position.X-half, tr.Position.Z-half)
		size := float32(ap.Size * zoom)
		vector.FillRect(screen, x0, y0, size, size, ap.Color, false)

		cx, cy := cam.toScreen(tr.Position.X, tr.Position.Z)
		fx, fy := cam.toScreen(tr.Position.X+math.Sin(tr.Yaw)*ap.Size, tr.Position.Z-math.Cos(tr.Yaw)*ap.Size)
		vector.StrokeLine(screen, cx, cy, fx, fy, 2, colornames.White, true)

		if wp, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok && wp.Visible {
			a := tr.Yaw + wp.Swing
			sx, sy := cam.toScreen(tr.Position.X+math.Sin(a)*1.2, tr.Position.Z-math.Cos(a)*1.2)
			vector.StrokeLine(screen, cx, cy, sx, sy, 3, colornames.Orangered, true)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s y=%.2f", ap.Label, tr.Position.Y), int(x0), int(y0)-16)
	})
}

func drawHUD(screen *ebiten.Image, w *ecs.World, debug bool) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 4, 4)

	_, pc, ok := ecs.First(w, component.PartyComponent.Kind())
	if !ok || pc.Party == nil {
		return
	}
	p := pc.Party
	active := p.Active()
	s := active.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("party: %s  active: %s  anim: %s", p.Mode(), active.Name(), s.Animation), 4, 20)
	if !debug {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos (%.2f, %.2f, %.2f) vel (%.2f, %.2f, %.2f) ground %.2f",
		s.Position.X, s.Position.Y, s.Position.Z, s.Velocity.X, s.Velocity.Y, s.Velocity.Z, s.GroundHeight), 4, 36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("grounded %v dashing %v attacking %v", s.Grounded, s.Dashing, s.Attacking), 4, 52)
	partner := p.Partner()
	if c, ok := p.Control(partner); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", partner.Name(), c), 4, 68)
	}
}
