package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/tombs/internal/game"
	"github.com/samdwyer/tombs/internal/gamedata"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// layout holds the panel geometry derived from the config.
type layout struct {
	panelY    int
	msgX      int
	msgWidth  int
	msgHeight int
}

func layoutFor(cfg game.Config) layout {
	return layout{
		panelY:    cfg.ScreenHeight - cfg.PanelHeight,
		msgX:      cfg.BarWidth + 2,
		msgWidth:  cfg.ScreenWidth - cfg.BarWidth - 3,
		msgHeight: cfg.PanelHeight - 1,
	}
}

// Render draws the map, the visible objects and the status panel.
// The mouse position selects which names are shown in the panel.
func (r *Renderer) Render(g *game.Game, mouseX, mouseY int) {
	cfg := g.Config()
	l := layoutFor(cfg)

	r.screen.Clear()
	r.drawMap(g)
	r.drawObjects(g)

	player := g.Player()
	maxHP := 0
	if player.Fighter != nil {
		maxHP = player.Fighter.MaxHP
	}
	r.drawBar(1, l.panelY+1, cfg.BarWidth, "HP", player.HP(), maxHP)
	r.drawMessages(g, l)

	names := wrapText(g.NamesAt(mouseX, mouseY), cfg.BarWidth)
	if len(names) > 0 {
		r.drawText(1, l.panelY+cfg.PanelHeight-2, names[0], r.palette.Names)
	}

	r.screen.Show()
}

// drawMap paints the background of every explored tile. Cells never seen stay black.
func (r *Renderer) drawMap(g *game.Game) {
	d := g.Dungeon
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if !g.IsExplored(x, y) {
				continue
			}
			r.screen.SetBackground(x, y, r.tileColor(g.Tile(x, y).BlockSight, g.IsVisible(x, y)))
		}
	}
}

func (r *Renderer) tileColor(wall, visible bool) tcell.Color {
	switch {
	case wall && visible:
		return r.palette.LightWall
	case wall:
		return r.palette.DarkWall
	case visible:
		return r.palette.LightGround
	default:
		return r.palette.DarkGround
	}
}

// drawObjects draws glyphs in draw order, with a marker for a pending swing.
func (r *Renderer) drawObjects(g *game.Game) {
	for _, o := range g.DrawList() {
		r.screen.SetRune(o.X, o.Y, o.Glyph, o.Color)
		if o.Attacking != nil {
			r.screen.SetRune(o.X+o.Attacking.DX, o.Y+o.Attacking.DY, swingGlyph(o.Attacking.DX), r.palette.Weapon)
		}
	}
}

func swingGlyph(dx int) rune {
	if dx == 0 {
		return '|'
	}
	return '-'
}

// drawBar renders a labelled gauge such as the HP bar.
func (r *Renderer) drawBar(x, y, width int, name string, value, maximum int) {
	filled := barFill(value, maximum, width)
	for i := 0; i < width; i++ {
		color := r.palette.HPBarBack
		if i < filled {
			color = r.palette.HPBar
		}
		r.screen.SetBackground(x+i, y, color)
	}

	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	r.drawText(x+width/2-runewidth.StringWidth(label)/2, y, label, tcell.ColorWhite)
}

// barFill returns how many of width cells a gauge at value/maximum covers.
func barFill(value, maximum, width int) int {
	if maximum <= 0 || value <= 0 {
		return 0
	}
	if value >= maximum {
		return width
	}
	return int(float64(value) / float64(maximum) * float64(width))
}

// drawMessages fills the message area from the bottom up, newest last,
// stopping at the first message that no longer fits.
func (r *Renderer) drawMessages(g *game.Game, l layout) {
	entries := g.Messages.Entries()
	y := l.msgHeight
	for i := len(entries) - 1; i >= 0; i-- {
		lines := wrapText(entries[i].Text, l.msgWidth)
		y -= len(lines)
		if y < 0 {
			break
		}
		for j, line := range lines {
			r.drawText(l.msgX, l.panelY+y+j, line, entries[i].Color)
		}
	}
}

// drawText writes a single line, advancing by display width.
func (r *Renderer) drawText(x, y int, text string, fg tcell.Color) {
	for _, ch := range text {
		r.screen.SetRune(x, y, ch, fg)
		x += runewidth.RuneWidth(ch)
	}
}

// wrapText breaks text into lines no wider than width display cells.
// Words wider than a line are split. Empty text yields no lines.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		for _, ch := range word {
			cw := runewidth.RuneWidth(ch)
			if lineWidth+cw > width && lineWidth > 0 {
				flush()
			}
			line.WriteRune(ch)
			lineWidth += cw
		}
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}
