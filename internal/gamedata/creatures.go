package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerID is the creature id of the player's stat block.
const PlayerID = "player"

// CreatureDef defines a creature loaded from JSON.
type CreatureDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name used in messages
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "o")
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	Blocks      bool   `json:"blocks"`      // Occupies its cell for movement
	HP          int    `json:"hp"`          // Starting and maximum hit points
	Defense     int    `json:"defense"`     // Subtracted from incoming power
	Power       int    `json:"power"`       // Melee damage before defense
	Speed       int    `json:"speed"`       // Ticks between AI actions; 0 means no AI
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency; 0 never spawns
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	for _, r := range c.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
