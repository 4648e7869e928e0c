// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
	"go-lane-defense/pkg/render"
)

// RenderSystem рисует мир: ряды, метки местности, порталы, защитников, юнитов, снаряды и эффекты.
// Только читает состояние мира.
type RenderSystem struct {
	Layout render.LaneLayout
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Layout: render.LaneLayout{
		OffsetX:    config.FieldOffsetX,
		OffsetY:    config.FieldOffsetY,
		CellWidth:  config.CellWidth,
		LaneHeight: config.LaneHeight,
	}}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, w *entity.World) {
	screen.Fill(config.BackgroundColor)
	s.drawLanes(screen, w)
	s.drawTerrain(screen, w)
	s.drawPortals(screen, w)
	s.drawDefenders(screen, w)
	s.drawUnits(screen, w)
	s.drawProjectiles(screen, w)
	s.drawEffects(screen, w)
}

func (s *RenderSystem) drawLanes(screen *ebiten.Image, w *entity.World) {
	cols := int(w.Config.Field.LaneLength)
	for lane := 0; lane < w.Config.Field.LaneCount; lane++ {
		for col := 0; col < cols; col++ {
			clr := config.LaneColor
			if (lane+col)%2 == 1 {
				clr = config.LaneAltColor
			}
			x, y, cw, ch := s.Layout.CellRect(lanegrid.Cell{Lane: lane, Col: col})
			vector.DrawFilledRect(screen, x, y, cw, ch, clr, false)
		}
	}
}

func (s *RenderSystem) drawTerrain(screen *ebiten.Image, w *entity.World) {
	for _, cell := range w.Terrain.Cells() {
		m, _ := w.Terrain.At(cell)
		alpha := float64(m.Remaining) / float64(w.Config.Terrain.Lifetime)
		x, y, cw, ch := s.Layout.CellRect(cell)
		vector.DrawFilledRect(screen, x, y, cw, ch, render.FadeColor(config.TerrainColor, alpha), false)
	}
}

func (s *RenderSystem) drawPortals(screen *ebiten.Image, w *entity.World) {
	for _, link := range w.Portals {
		clr := config.PortalColor
		if !link.Active {
			clr = config.PortalOffColor
		}
		for _, n := range link.Nodes() {
			x, y := s.Layout.Point(float64(n.Lane), n.Pos)
			vector.StrokeCircle(screen, x, y, config.PortalRadius, config.StrokeWidth*2, clr, true)
		}
	}
}

func (s *RenderSystem) drawDefenders(screen *ebiten.Image, w *entity.World) {
	w.Defenders.Each(func(_ types.Handle, d *component.Defender) {
		if d.Destroyed {
			return
		}
		clr := config.DefenderColor
		if def, ok := w.Library.Defender(d.DefID); ok && def.Visuals.Color.A > 0 {
			clr = def.Visuals.Color
		}
		x, y := s.Layout.Point(float64(d.Lane()), d.Pos())
		vector.DrawFilledCircle(screen, x, y, config.DefenderRadius, clr, true)
		// Полоска здоровья
		if d.MaxHealth > 0 && d.Health < d.MaxHealth {
			frac := float32(d.Health) / float32(d.MaxHealth)
			barW := float32(config.DefenderRadius * 2)
			vector.DrawFilledRect(screen, x-barW/2, y+config.DefenderRadius+4, barW*frac, 4, config.TextLightColor, false)
		}
	})
}

func (s *RenderSystem) drawUnits(screen *ebiten.Image, w *entity.World) {
	w.Units.Each(func(_ types.Handle, u *component.Unit) {
		if u.Removed {
			return
		}
		clr := config.HostileColor
		if u.Converted() {
			clr = config.AlliedColor
		}
		if u.Frozen {
			clr = config.FrozenColor
		}
		if len(u.Flashes) > 0 {
			f := u.Flashes[len(u.Flashes)-1]
			clr = render.LightenColor(clr, 1-float64(f.Timer)/float64(f.Duration))
		}
		if u.Dying {
			clr = render.FadeColor(clr, u.Opacity)
		}

		x, y := s.Layout.Point(float64(u.Lane), u.Pos)
		r := float32(config.UnitRadius * u.Size)
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		if u.Armor > 0 {
			vector.StrokeCircle(screen, x, y, r+2, config.StrokeWidth, config.ArmorStrokeColor, true)
		}
		if u.Stunned {
			vector.StrokeCircle(screen, x, y, r+5, config.StrokeWidth, config.StunnedColor, true)
		}
	})
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image, w *entity.World) {
	w.Projectiles.Each(func(_ types.Handle, p *component.Projectile) {
		if p.Done {
			return
		}
		x, y := s.Layout.Point(p.Row, p.Pos)
		y -= float32(p.ArcOffset() * config.LaneHeight / 2)
		clr := config.ProjectileColor
		if p.Effect == defs.EffectFreeze {
			clr = config.FrozenColor
		}
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, clr, true)
	})
}

func (s *RenderSystem) drawEffects(screen *ebiten.Image, w *entity.World) {
	for i := range w.Effects {
		e := &w.Effects[i]
		fade := 1 - e.Progress()
		x, y := s.Layout.Point(e.FromY, e.FromX)
		switch e.Kind {
		case component.EffectBlast, component.EffectSplash:
			r := float32(e.Radius*config.CellWidth) * float32(0.5+0.5*e.Progress())
			vector.StrokeCircle(screen, x, y, r, 3, render.FadeColor(config.ExplosionColor, fade), true)
		case component.EffectArc:
			tx, ty := s.Layout.Point(e.ToY, e.ToX)
			vector.StrokeLine(screen, x, y, tx, ty, 3, render.FadeColor(color.RGBA{160, 220, 255, 255}, fade), true)
		case component.EffectSpray:
			tx, _ := s.Layout.Point(e.ToY, e.ToX)
			vector.DrawFilledRect(screen, x, y-config.LaneHeight/4, tx-x, config.LaneHeight/2,
				render.FadeColor(config.TerrainColor, fade), false)
		}
	}
}
