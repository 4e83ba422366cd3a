// Package cssgen builds CSS declarations for box shadows, linear gradients
// and border radii from validated parameters.
package cssgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

// Declaration is a single CSS property and value.
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// String renders the declaration as "property: value;".
func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

var (
	hexColorPattern   = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// ValidColor accepts #rgb, #rrggbb, #rrggbbaa and keyword colors.
func ValidColor(c string) bool {
	return hexColorPattern.MatchString(c) || namedColorPattern.MatchString(c)
}

func invalid(format string, args ...interface{}) error {
	return errors.NewInvalidInput(errors.ErrCodeInvalidArgument, fmt.Sprintf(format, args...))
}

// Shadow describes a box-shadow layer. Opacity applies to hex colors only.
type Shadow struct {
	OffsetX int
	OffsetY int
	Blur    int
	Spread  int
	Color   string
	Opacity float64
	Inset   bool
}

// DefaultShadow is a soft drop shadow.
func DefaultShadow() Shadow {
	return Shadow{OffsetX: 0, OffsetY: 4, Blur: 12, Spread: 0, Color: "#000000", Opacity: 0.25}
}

// BoxShadow renders s as a box-shadow declaration.
func BoxShadow(s Shadow) (Declaration, error) {
	if s.Blur < 0 {
		return Declaration{}, invalid("blur must not be negative, got %d", s.Blur)
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return Declaration{}, invalid("opacity must be between 0 and 1, got %g", s.Opacity)
	}
	color, err := shadowColor(s.Color, s.Opacity)
	if err != nil {
		return Declaration{}, err
	}

	value := fmt.Sprintf("%dpx %dpx %dpx %dpx %s", s.OffsetX, s.OffsetY, s.Blur, s.Spread, color)
	if s.Inset {
		value = "inset " + value
	}
	return Declaration{Property: "box-shadow", Value: value}, nil
}

func shadowColor(c string, opacity float64) (string, error) {
	if !ValidColor(c) {
		return "", invalid("invalid color %q", c)
	}
	if !strings.HasPrefix(c, "#") {
		return c, nil
	}
	r, g, b, err := hexRGB(c)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, opacity), nil
}

// hexRGB expands #rgb and reads the first three channels of #rrggbb[aa].
func hexRGB(c string) (r, g, b int64, err error) {
	h := strings.TrimPrefix(c, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	channels := make([]int64, 3)
	for i := range channels {
		channels[i], err = strconv.ParseInt(h[2*i:2*i+2], 16, 64)
		if err != nil {
			return 0, 0, 0, invalid("invalid color %q", c)
		}
	}
	return channels[0], channels[1], channels[2], nil
}

// Stop is a gradient color stop at Position percent.
type Stop struct {
	Color    string
	Position int
}

// Gradient describes a linear gradient.
type Gradient struct {
	Angle int
	Stops []Stop
}

// LinearGradient renders g as a background declaration. It needs at least
// two stops with non-decreasing positions between 0 and 100.
func LinearGradient(g Gradient) (Declaration, error) {
	if g.Angle < 0 || g.Angle > 360 {
		return Declaration{}, invalid("angle must be between 0 and 360, got %d", g.Angle)
	}
	if len(g.Stops) < 2 {
		return Declaration{}, invalid("a gradient needs at least two color stops")
	}

	parts := make([]string, 0, len(g.Stops)+1)
	parts = append(parts, fmt.Sprintf("%ddeg", g.Angle))
	prev := 0
	for i, s := range g.Stops {
		if !ValidColor(s.Color) {
			return Declaration{}, invalid("invalid color %q in stop %d", s.Color, i+1)
		}
		if s.Position < 0 || s.Position > 100 {
			return Declaration{}, invalid("stop %d position must be between 0 and 100, got %d", i+1, s.Position)
		}
		if s.Position < prev {
			return Declaration{}, invalid("stop %d is before the previous stop", i+1)
		}
		prev = s.Position
		parts = append(parts, fmt.Sprintf("%s %d%%", s.Color, s.Position))
	}

	return Declaration{
		Property: "background",
		Value:    "linear-gradient(" + strings.Join(parts, ", ") + ")",
	}, nil
}

// ParseStops reads stops written as "color position" pairs separated by
// commas, e.g. "#ff0000 0, blue 100". A missing position spreads the stops
// evenly.
func ParseStops(s string) ([]Stop, error) {
	fields := strings.Split(s, ",")
	stops := make([]Stop, 0, len(fields))
	for i, f := range fields {
		parts := strings.Fields(f)
		switch len(parts) {
		case 1:
			pos := 0
			if len(fields) > 1 {
				pos = i * 100 / (len(fields) - 1)
			}
			stops = append(stops, Stop{Color: parts[0], Position: pos})
		case 2:
			pos, err := strconv.Atoi(strings.TrimSuffix(parts[1], "%"))
			if err != nil {
				return nil, invalid("invalid stop position %q", parts[1])
			}
			stops = append(stops, Stop{Color: parts[0], Position: pos})
		default:
			return nil, invalid("invalid color stop %q", strings.TrimSpace(f))
		}
	}
	return stops, nil
}

// Units accepted by BorderRadius.
var Units = []string{"px", "%", "rem", "em"}

// Radius holds one value per corner, clockwise from the top left.
type Radius struct {
	TopLeft     int
	TopRight    int
	BottomRight int
	BottomLeft  int
	Unit        string
}

// UniformRadius uses v for every corner.
func UniformRadius(v int, unit string) Radius {
	return Radius{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v, Unit: unit}
}

// BorderRadius renders r, collapsing to a single value when all corners
// match. An empty unit means px.
func BorderRadius(r Radius) (Declaration, error) {
	unit := r.Unit
	if unit == "" {
		unit = "px"
	}
	known := false
	for _, u := range Units {
		if u == unit {
			known = true
			break
		}
	}
	if !known {
		return Declaration{}, invalid("unknown unit %q", unit)
	}

	corners := []int{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft}
	for _, c := range corners {
		if c < 0 {
			return Declaration{}, invalid("radius must not be negative, got %d", c)
		}
	}

	if r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft {
		return Declaration{Property: "border-radius", Value: fmt.Sprintf("%d%s", r.TopLeft, unit)}, nil
	}

	values := make([]string, len(corners))
	for i, c := range corners {
		values[i] = fmt.Sprintf("%d%s", c, unit)
	}
	return Declaration{Property: "border-radius", Value: strings.Join(values, " ")}, nil
}
