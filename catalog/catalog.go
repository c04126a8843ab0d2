package catalog

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Entry is the static catalog record for one celestial body.
// Reference fields (AU, km) are informational; the Vis* fields are the
// base units the scale presets multiply into on-screen distances and sizes
type Entry struct {
	Name        string  // English name
	LocalName   string  // localized display name
	TrueAU      float64 // reference distance from the sun in AU
	TrueRadiusK float64 // reference radius in km
	VisDistance float64 // base visual orbital distance unit
	VisRadius   float64 // base visual radius unit
	Color       tcell.Color
	PeriodDays  float64 // days for one full revolution
}

// Default returns the built-in eight-planet catalog
func Default() []Entry {
	return []Entry{
		{"Mercury", "बुध (Budh)", 0.39, 2440, 1.0, 0.03, tcell.ColorGray, 88},
		{"Venus", "शुक्र (Shukra)", 0.72, 6052, 1.5, 0.06, tcell.ColorOrange, 225},
		{"Earth", "पृथ्वी (Prithvi)", 1.0, 6371, 2.0, 0.065, tcell.ColorBlue, 365},
		{"Mars", "मंगल (Mangal)", 1.52, 3390, 2.6, 0.05, tcell.ColorRed, 687},
		{"Jupiter", "बृहस्पति (Brihaspati)", 5.2, 69911, 4.5, 0.18, tcell.ColorYellow, 4333},
		{"Saturn", "शनि (Shani)", 9.58, 58232, 6.0, 0.15, tcell.ColorWhite, 10759},
		{"Uranus", "अरुण (Arun)", 19.2, 25362, 7.5, 0.12, tcell.ColorAqua, 30687},
		{"Neptune", "वरुण (Varun)", 30.05, 24622, 8.5, 0.12, tcell.ColorFuchsia, 60190},
	}
}

// Validate rejects catalog entries that would corrupt the simulation.
// A non-positive period yields an infinite angular speed, so this must
// fail at startup rather than poison every subsequent tick
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("catalog: empty body catalog")
	}
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("catalog: entry %d has no name", i)
		}
		if e.PeriodDays <= 0 {
			return fmt.Errorf("catalog: %s has non-positive orbital period %v", e.Name, e.PeriodDays)
		}
		if e.VisDistance <= 0 {
			return fmt.Errorf("catalog: %s has non-positive visual distance %v", e.Name, e.VisDistance)
		}
		if e.VisRadius <= 0 {
			return fmt.Errorf("catalog: %s has non-positive visual radius %v", e.Name, e.VisRadius)
		}
	}
	return nil
}
