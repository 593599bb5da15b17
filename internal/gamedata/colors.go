package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// PaletteDef is the raw form of palette.json.
type PaletteDef struct {
	DarkWall    string `json:"darkWall"`
	LightWall   string `json:"lightWall"`
	DarkGround  string `json:"darkGround"`
	LightGround string `json:"lightGround"`
	HPBar       string `json:"hpBar"`
	HPBarBack   string `json:"hpBarBack"`
	Weapon      string `json:"weapon"`
	Names       string `json:"names"`
}

// Palette holds the resolved map and panel colours.
type Palette struct {
	DarkWall    tcell.Color // explored, out of sight
	LightWall   tcell.Color
	DarkGround  tcell.Color
	LightGround tcell.Color
	HPBar       tcell.Color
	HPBarBack   tcell.Color
	Weapon      tcell.Color // attack swing marker
	Names       tcell.Color // names under the cursor
}

// Resolve parses every colour in the definition.
func (d PaletteDef) Resolve() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"darkWall", d.DarkWall, &p.DarkWall},
		{"lightWall", d.LightWall, &p.LightWall},
		{"darkGround", d.DarkGround, &p.DarkGround},
		{"lightGround", d.LightGround, &p.LightGround},
		{"hpBar", d.HPBar, &p.HPBar},
		{"hpBarBack", d.HPBarBack, &p.HPBarBack},
		{"weapon", d.Weapon, &p.Weapon},
		{"names", d.Names, &p.Names},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// LoadPalette loads and resolves the embedded palette.json.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Resolve()
}
