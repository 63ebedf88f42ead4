package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "morning"

var ErrInvalidLevel = errors.New("levels: invalid level")

type Level struct {
	Name        string   `json:"name"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	GroundY     float64  `json:"ground_y"`
	ViewportW   float64  `json:"viewport_w"`
	ViewportH   float64  `json:"viewport_h"`
	SpeedFactor float64  `json:"background_speed_factor"`
	Entities    []Entity `json:"entities,omitempty"`
}

// Entity places one prefab (Type + ".yaml") at a world position.
type Entity struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Load resolves a level by basename (".json" optional), preferring an
// on-disk copy under levels/ over the embedded one.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	file := filepath.Base(name)
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}

	data, err := os.ReadFile(filepath.Join("levels", file))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, file)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", file, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if lvl.ViewportW == 0 {
		lvl.ViewportW = 800
	}
	if lvl.ViewportH == 0 {
		lvl.ViewportH = 600
	}
	if lvl.SpeedFactor == 0 {
		lvl.SpeedFactor = 1
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	switch {
	case l.Width < l.ViewportW:
		return fmt.Errorf("%w: width %.0f narrower than viewport %.0f", ErrInvalidLevel, l.Width, l.ViewportW)
	case l.GroundY <= 0 || (l.Height > 0 && l.GroundY > l.Height):
		return fmt.Errorf("%w: ground_y %.0f outside level", ErrInvalidLevel, l.GroundY)
	}
	players := 0
	for i, e := range l.Entities {
		if e.Type == "" {
			return fmt.Errorf("%w: entity %d has no type", ErrInvalidLevel, i)
		}
		if e.Type == "player" {
			players++
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: want exactly one player, got %d", ErrInvalidLevel, players)
	}
	return nil
}
