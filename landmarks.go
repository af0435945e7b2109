package mandelzoom

// DefaultZoomDecay is the per-frame zoom multiplier for continuous zooming.
const DefaultZoomDecay = 0.985

// DefaultViewport starts wide over the classic deep-zoom point; every frame
// of decay dives further into it.
var DefaultViewport = Viewport{
	CenterR: -0.743643887037151,
	CenterI: 0.131825904205330,
	Zoom:    1,
}

// Landmark is a named zoom target over a notable part of the set.
type Landmark struct {
	Name string
	View Viewport
}

// Landmarks are classic zoom targets. All start at zoom 1, so the full set
// is visible before the dive begins.
var Landmarks = []Landmark{
	// The default dive target – filament-rich and rewarding at every depth
	{Name: "classic", View: DefaultViewport},

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	{Name: "seahorse-valley", View: Viewport{CenterR: -0.75, CenterI: 0.1, Zoom: 1}},

	// Elephant Valley – large bulb with trunk-like tendrils
	{Name: "elephant-valley", View: Viewport{CenterR: -1.8, CenterI: -0.06, Zoom: 1}},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	{Name: "spiral-minibrot", View: Viewport{CenterR: -0.74275, CenterI: 0.13175, Zoom: 1}},

	// Triple Spiral – threefold symmetric spiral structure
	{Name: "triple-spiral", View: Viewport{CenterR: -0.7465, CenterI: 0.0965, Zoom: 1}},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	{Name: "dragon-valley", View: Viewport{CenterR: -0.7375, CenterI: 0.1825, Zoom: 1}},

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	{Name: "mini-spiral-minibrot", View: Viewport{CenterR: -1.73825, CenterI: -0.02275, Zoom: 1}},
}

// LandmarkByName returns the landmark's viewport, or false if no landmark
// has that name.
func LandmarkByName(name string) (Viewport, bool) {
	for _, l := range Landmarks {
		if l.Name == name {
			return l.View, true
		}
	}
	return Viewport{}, false
}

// LandmarkNames returns the names of all landmarks, in listing order.
func LandmarkNames() []string {
	names := make([]string, len(Landmarks))
	for i, l := range Landmarks {
		names[i] = l.Name
	}
	return names
}
