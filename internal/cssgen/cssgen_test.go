package cssgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
)

func TestBoxShadow(t *testing.T) {
	testCases := []struct {
		name     string
		shadow   Shadow
		expected string
	}{
		{"default", DefaultShadow(), "box-shadow: 0px 4px 12px 0px rgba(0, 0, 0, 0.25);"},
		{"short hex inset", Shadow{OffsetX: 2, OffsetY: -2, Blur: 4, Spread: 1, Color: "#f80", Opacity: 1, Inset: true},
			"box-shadow: inset 2px -2px 4px 1px rgba(255, 136, 0, 1.00);"},
		{"keyword color", Shadow{Blur: 3, Color: "red"}, "box-shadow: 0px 0px 3px 0px red;"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := BoxShadow(tc.shadow)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestBoxShadowInvalid(t *testing.T) {
	for _, s := range []Shadow{
		{Blur: -1, Color: "#000"},
		{Color: "#000", Opacity: 1.5},
		{Color: "#12"},
		{Color: "rgb(0,0,0)"},
	} {
		_, err := BoxShadow(s)
		assert.True(t, errors.IsInvalidInput(err), "%+v", s)
	}
}

func TestLinearGradient(t *testing.T) {
	d, err := LinearGradient(Gradient{Angle: 90, Stops: []Stop{{"#ff0000", 0}, {"blue", 100}}})
	require.NoError(t, err)
	assert.Equal(t, "background: linear-gradient(90deg, #ff0000 0%, blue 100%);", d.String())
}

func TestLinearGradientInvalid(t *testing.T) {
	testCases := []struct {
		name string
		g    Gradient
	}{
		{"angle", Gradient{Angle: 400, Stops: []Stop{{"red", 0}, {"blue", 100}}}},
		{"one stop", Gradient{Stops: []Stop{{"red", 0}}}},
		{"bad color", Gradient{Stops: []Stop{{"red", 0}, {"#zzz", 100}}}},
		{"out of range", Gradient{Stops: []Stop{{"red", 0}, {"blue", 120}}}},
		{"decreasing", Gradient{Stops: []Stop{{"red", 60}, {"blue", 40}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LinearGradient(tc.g)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestParseStops(t *testing.T) {
	stops, err := ParseStops("#ff0000 0, white 40%, blue 100")
	require.NoError(t, err)
	assert.Equal(t, []Stop{{"#ff0000", 0}, {"white", 40}, {"blue", 100}}, stops)

	stops, err = ParseStops("red, green, blue")
	require.NoError(t, err)
	assert.Equal(t, []Stop{{"red", 0}, {"green", 50}, {"blue", 100}}, stops)

	_, err = ParseStops("red x")
	assert.True(t, errors.IsInvalidInput(err))

	_, err = ParseStops("red 1 2")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestBorderRadius(t *testing.T) {
	d, err := BorderRadius(UniformRadius(8, ""))
	require.NoError(t, err)
	assert.Equal(t, "border-radius: 8px;", d.String())

	d, err = BorderRadius(Radius{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4, Unit: "rem"})
	require.NoError(t, err)
	assert.Equal(t, "border-radius: 1rem 2rem 3rem 4rem;", d.String())

	_, err = BorderRadius(UniformRadius(-2, "px"))
	assert.True(t, errors.IsInvalidInput(err))

	_, err = BorderRadius(UniformRadius(2, "pt"))
	assert.True(t, errors.IsInvalidInput(err))
}
