package mandelzoom

import "testing"

func TestLandmarkByName(t *testing.T) {
	view, ok := LandmarkByName("classic")
	if !ok {
		t.Fatal(`LandmarkByName("classic") not found`)
	}
	if view != DefaultViewport {
		t.Errorf(`"classic" = %+v, want the default viewport %+v`, view, DefaultViewport)
	}

	if _, ok := LandmarkByName("nowhere"); ok {
		t.Error(`LandmarkByName("nowhere") reported found`)
	}
}

func TestLandmarksWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(Landmarks))
	for _, l := range Landmarks {
		if l.Name == "" {
			t.Errorf("landmark %+v has no name", l.View)
		}
		if seen[l.Name] {
			t.Errorf("landmark name %q appears twice", l.Name)
		}
		seen[l.Name] = true
		if l.View.Zoom <= 0 {
			t.Errorf("landmark %q zoom = %v, want > 0", l.Name, l.View.Zoom)
		}
	}
}

func TestLandmarkNames(t *testing.T) {
	names := LandmarkNames()
	if len(names) != len(Landmarks) {
		t.Fatalf("LandmarkNames() has %d entries, want %d", len(names), len(Landmarks))
	}
	for i, l := range Landmarks {
		if names[i] != l.Name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], l.Name)
		}
	}
}
