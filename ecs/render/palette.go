// Package render projects world state into flat draw lists. It does not
// draw anything itself, so the host can use any backend.
package render

import (
	"image/color"
	"strings"

	"github.com/milk9111/dungeonroom/prefabs"
	"golang.org/x/image/colornames"
)

// Palette resolves texture names to colors.
type Palette struct {
	background color.Color
	colors     map[string]color.Color
}

// NewPalette builds a palette from the prefab spec. Textures missing from
// the palette prefab fall back to the CSS color of the same name, then to
// magenta.
func NewPalette(spec prefabs.PaletteSpec) *Palette {
	p := &Palette{
		background: colornames.Black,
		colors:     make(map[string]color.Color, len(spec.Textures)),
	}
	if spec.Background != nil && spec.Background.Color != nil {
		p.background = spec.Background.Color
	}
	for name, c := range spec.Textures {
		if c == nil || c.Color == nil {
			continue
		}
		p.colors[strings.ToLower(name)] = c.Color
	}
	return p
}

func (p *Palette) Background() color.Color {
	return p.background
}

func (p *Palette) Color(texture string) color.Color {
	key := strings.ToLower(strings.TrimSpace(texture))
	if c, ok := p.colors[key]; ok {
		return c
	}
	if c, ok := colornames.Map[key]; ok {
		return c
	}
	return colornames.Magenta
}
