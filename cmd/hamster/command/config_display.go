package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hamster/internal/display"
	"github.com/pixil98/go-hamster/internal/entity"
	"github.com/pixil98/go-hamster/internal/environment"
	"github.com/pixil98/go-hamster/internal/overlay"
)

type DisplayConfig struct {
	CellWidth      float64 `json:"cell_width"`
	CellHeight     float64 `json:"cell_height"`
	ASCII          bool    `json:"ascii"`
	StatusTemplate string  `json:"status_template"`
	EmphasisSize   float64 `json:"emphasis_size"`
}

func (c *DisplayConfig) validate() error {
	el := errors.NewErrorList()

	if c.CellWidth < 0 {
		el.Add(fmt.Errorf("display: cell_width must not be negative"))
	}
	if c.CellHeight < 0 {
		el.Add(fmt.Errorf("display: cell_height must not be negative"))
	}
	if c.EmphasisSize < 0 {
		el.Add(fmt.Errorf("display: emphasis_size must not be negative"))
	}
	if c.StatusTemplate != "" {
		if _, err := display.NewHUD(c.StatusTemplate); err != nil {
			el.Add(fmt.Errorf("display: %w", err))
		}
	}

	return el.Err()
}

func (c *DisplayConfig) hostOpts() ([]overlay.HostOpt, error) {
	canvasOpts := []display.CanvasOpt{display.WithASCII(c.ASCII)}
	if c.EmphasisSize > 0 {
		canvasOpts = append(canvasOpts, display.WithEmphasisSize(c.EmphasisSize))
	}
	opts := []overlay.HostOpt{overlay.WithCanvasOpts(canvasOpts...)}

	width, height := float64(overlay.DefaultCellWidth), float64(overlay.DefaultCellHeight)
	if c.CellWidth > 0 {
		width = c.CellWidth
	}
	if c.CellHeight > 0 {
		height = c.CellHeight
	}
	opts = append(opts, overlay.WithCellSize(width, height))

	if c.StatusTemplate != "" {
		hud, err := display.NewHUD(c.StatusTemplate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, overlay.WithHUD(hud))
	}

	return opts, nil
}

type DrawerConfig struct {
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	FontSize float64      `json:"font_size"`
	Anchor   *entity.Vec2 `json:"anchor,omitempty"`
	Grass    *int         `json:"grass,omitempty"`
}

func (c *DrawerConfig) validate() error {
	el := errors.NewErrorList()

	if c.Rows < 0 {
		el.Add(fmt.Errorf("drawer: rows must not be negative"))
	}
	if c.Cols < 0 {
		el.Add(fmt.Errorf("drawer: cols must not be negative"))
	}
	if c.FontSize < 0 {
		el.Add(fmt.Errorf("drawer: font_size must not be negative"))
	}
	if c.Grass != nil && *c.Grass < 0 {
		el.Add(fmt.Errorf("drawer: grass must not be negative"))
	}

	return el.Err()
}

// seed overlays the configured values on the default first-launch seed.
func (c *DrawerConfig) seed() environment.Seed {
	s := environment.DefaultSeed()
	if c.Rows > 0 {
		s.Rows = c.Rows
	}
	if c.Cols > 0 {
		s.Cols = c.Cols
	}
	if c.FontSize > 0 {
		s.FontSize = c.FontSize
	}
	if c.Anchor != nil {
		s.Anchor = *c.Anchor
	}
	if c.Grass != nil {
		s.Grass = *c.Grass
	}
	return s
}
