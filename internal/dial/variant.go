package dial

import (
	"sort"
	"strings"
)

// Palette holds the hex colors a variant draws with.
type Palette struct {
	Rings      []string
	Track      string
	Readout    string
	Play       string
	Pause      string
	Button     string
	Background string
}

// Ring is one decorative arc. Radius and dash lengths are in viewbox units
// (the dial is drawn in a 100x100 box centered on the origin).
type Ring struct {
	Radius float64
	Dash   float64
	Gap    float64
}

// Segment is a directional adjustment control placed on the dial's rim.
type Segment struct {
	Label string
	Angle float64 // degrees, screen orientation (0 = right, 90 = down)
	Delta int     // seconds
}

// Variant enumerates everything that differs between dial flavours.
type Variant struct {
	Name         string
	Palette      Palette
	Rings        []Ring
	ButtonRadius float64
	Sensitivity  float64
	Segments     []Segment
}

const (
	VariantOffekt = "offekt"
	VariantPulse  = "pulse"
)

func standardRings() []Ring {
	return []Ring{
		{Radius: 48, Dash: 75, Gap: 25},
		{Radius: 44, Dash: 65, Gap: 35},
		{Radius: 40, Dash: 55, Gap: 45},
		{Radius: 36, Dash: 45, Gap: 55},
		{Radius: 32, Dash: 35, Gap: 65},
	}
}

// Offekt is the default dial: slow drag feel, glyph buttons.
func Offekt() Variant {
	return Variant{
		Name: VariantOffekt,
		Palette: Palette{
			Rings:      []string{"#ff8e80", "#ffffff", "#051f39", "#c53a9d", "#4a2480"},
			Track:      "#2f4858",
			Readout:    "#ffffff",
			Play:       "#4a2480",
			Pause:      "#c53a9d",
			Button:     "#ffffff",
			Background: "#0b0b14",
		},
		Rings:        standardRings(),
		ButtonRadius: 55,
		Sensitivity:  2,
		Segments: []Segment{
			{Label: "-", Angle: 180, Delta: -10},
			{Label: "+", Angle: 0, Delta: 10},
			{Label: "▲", Angle: 270, Delta: 60},
			{Label: "▼", Angle: 90, Delta: -60},
		},
	}
}

// Pulse is the fast-drag flavour with text labels.
func Pulse() Variant {
	return Variant{
		Name: VariantPulse,
		Palette: Palette{
			Rings:      []string{"#f9c74f", "#f8961e", "#f3722c", "#f94144", "#90be6d"},
			Track:      "#3a3a3a",
			Readout:    "#f9c74f",
			Play:       "#90be6d",
			Pause:      "#f94144",
			Button:     "#f8961e",
			Background: "#121212",
		},
		Rings:        standardRings(),
		ButtonRadius: 55,
		Sensitivity:  30,
		Segments: []Segment{
			{Label: "-10", Angle: 180, Delta: -10},
			{Label: "+10", Angle: 0, Delta: 10},
			{Label: "+1m", Angle: 270, Delta: 60},
			{Label: "-1m", Angle: 90, Delta: -60},
		},
	}
}

var variants = map[string]func() Variant{
	VariantOffekt: Offekt,
	VariantPulse:  Pulse,
}

// Lookup returns the named variant. Names are matched case-insensitively.
func Lookup(name string) (Variant, bool) {
	ctor, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, false
	}
	return ctor(), true
}

// VariantNames lists the built-in variants in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RingColor returns the palette color for ring i, cycling if the palette is short.
func (v Variant) RingColor(i int) string {
	if len(v.Palette.Rings) == 0 {
		return v.Palette.Readout
	}
	return v.Palette.Rings[i%len(v.Palette.Rings)]
}
