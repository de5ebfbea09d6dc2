package chart

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// InterpolateRGB returns steps colours evenly spaced from just after from
// up to and including to. Colours are "#rrggbb"; the input may omit "#".
func InterpolateRGB(from, to string, steps int) ([]string, error) {
	if steps <= 0 {
		return []string{}, nil
	}
	start, err := parseHex(from)
	if err != nil {
		return nil, err
	}
	end, err := parseHex(to)
	if err != nil {
		return nil, err
	}

	colors := make([]string, 0, steps)
	for i := 1; i <= steps; i++ {
		colors = append(colors, start.BlendRgb(end, float64(i)/float64(steps)).Hex())
	}
	return colors, nil
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}
