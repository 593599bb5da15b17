package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/tombs/internal/gamedata"
	"github.com/samdwyer/tombs/internal/world"
)

// Config holds game configuration options.
// Defaults come from the embedded config.json.
type Config struct {
	ScreenWidth        int  `json:"screen_width"`
	ScreenHeight       int  `json:"screen_height"`
	MapWidth           int  `json:"map_width"`
	MapHeight          int  `json:"map_height"`
	FOVRadius          int  `json:"fov_radius"` // 0 means unlimited
	LightWalls         bool `json:"light_walls"`
	MaxRooms           int  `json:"max_rooms"`
	RoomMinSize        int  `json:"room_min_size"`
	RoomMaxSize        int  `json:"room_max_size"`
	MaxMonstersPerRoom int  `json:"max_monsters_per_room"`
	BarWidth           int  `json:"bar_width"`
	PanelHeight        int  `json:"panel_height"`
	LimitFPS           int  `json:"limit_fps"`
	AttackTicks        int  `json:"attack_ticks"` // ticks a melee swing stays armed

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() (Config, error) {
	return gamedata.Load[Config]("config.json")
}

// LoadConfig returns the defaults with environment overrides applied:
// TOMBS_SEED, TOMBS_FOV_RADIUS, TOMBS_LIGHT_WALLS and TOMBS_MAX_ROOMS.
func LoadConfig() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("TOMBS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TOMBS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("TOMBS_FOV_RADIUS"); ok {
		r, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TOMBS_FOV_RADIUS: %w", err)
		}
		c.FOVRadius = r
	}
	if v, ok := os.LookupEnv("TOMBS_LIGHT_WALLS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TOMBS_LIGHT_WALLS: %w", err)
		}
		c.LightWalls = b
	}
	if v, ok := os.LookupEnv("TOMBS_MAX_ROOMS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TOMBS_MAX_ROOMS: %w", err)
		}
		c.MaxRooms = n
	}
	return nil
}

// Validate reports the first setting that would break generation or layout.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"map_width", c.MapWidth},
		{"map_height", c.MapHeight},
		{"max_rooms", c.MaxRooms},
		{"room_min_size", c.RoomMinSize},
		{"room_max_size", c.RoomMaxSize},
		{"limit_fps", c.LimitFPS},
		{"attack_ticks", c.AttackTicks},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid config: %s must be positive, got %d", p.name, p.value)
		}
	}

	switch {
	case c.FOVRadius < 0:
		return fmt.Errorf("invalid config: fov_radius must not be negative, got %d", c.FOVRadius)
	case c.MaxMonstersPerRoom < 0:
		return fmt.Errorf("invalid config: max_monsters_per_room must not be negative, got %d", c.MaxMonstersPerRoom)
	case c.RoomMinSize < 3:
		return fmt.Errorf("invalid config: room_min_size %d leaves no interior", c.RoomMinSize)
	case c.RoomMinSize > c.RoomMaxSize:
		return fmt.Errorf("invalid config: room_min_size %d exceeds room_max_size %d", c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize >= c.MapWidth || c.RoomMaxSize >= c.MapHeight:
		return fmt.Errorf("invalid config: room_max_size %d does not fit a %dx%d map", c.RoomMaxSize, c.MapWidth, c.MapHeight)
	case c.MapWidth > c.ScreenWidth || c.MapHeight+c.PanelHeight > c.ScreenHeight:
		return fmt.Errorf("invalid config: %dx%d map with a %d-row panel does not fit a %dx%d screen",
			c.MapWidth, c.MapHeight, c.PanelHeight, c.ScreenWidth, c.ScreenHeight)
	case c.PanelHeight < 0 || c.BarWidth < 0 || c.BarWidth > c.ScreenWidth:
		return fmt.Errorf("invalid config: panel_height %d / bar_width %d out of range", c.PanelHeight, c.BarWidth)
	}
	return nil
}

// DungeonParams returns the generator settings.
func (c Config) DungeonParams() world.Params {
	return world.Params{
		Width:       c.MapWidth,
		Height:      c.MapHeight,
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}
