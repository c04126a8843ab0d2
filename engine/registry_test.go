package engine

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/catalog"
	"github.com/lixenwraith/helio/parameter"
)

const angleTolerance = 1e-9

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{Name: "Inner", LocalName: "Inner", TrueAU: 0.5, TrueRadiusK: 2000, VisDistance: 1.0, VisRadius: 0.03, Color: tcell.ColorGray, PeriodDays: 88},
		{Name: "Home", LocalName: "Home", TrueAU: 1.0, TrueRadiusK: 6371, VisDistance: 2.0, VisRadius: 0.065, Color: tcell.ColorBlue, PeriodDays: 365},
	}
}

func TestAdvanceIsLinearInTime(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)

	steps := []float64{0.5, 1.25, 10, 100}
	total := 0.0
	for _, dt := range steps {
		r.Advance(dt)
		total += dt
	}

	for _, b := range r.Bodies() {
		want := b.AngularSpeed * total
		if math.Abs(b.Angle-want) > angleTolerance {
			t.Errorf("%s: expected angle %v after %v days, got %v", b.Name, want, total, b.Angle)
		}
	}
}

func TestFullRevolutionPerPeriod(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)

	home, _ := r.Lookup(1)
	start := home.Angle
	r.Advance(home.PeriodDays)

	delta := math.Mod(home.Angle-start, 2*math.Pi)
	if math.Min(delta, 2*math.Pi-delta) > 1e-9 {
		t.Errorf("Expected one full revolution, residual angle %v", delta)
	}
}

func TestApplyScalePreservesAngles(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	r.Advance(42.5)

	angles := make([]float64, r.Len())
	for i, b := range r.Bodies() {
		angles[i] = b.Angle
	}

	r.ApplyScale(parameter.ScaleRealistic)
	for i, b := range r.Bodies() {
		if b.Angle != angles[i] {
			t.Errorf("%s: scale switch changed angle from %v to %v", b.Name, angles[i], b.Angle)
		}
	}
}

func TestScaleRoundTripIdempotence(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	r.Advance(17)

	before := make([]struct{ radius, size float64 }, r.Len())
	posBefore := make([]struct{ x, y, z float64 }, r.Len())
	for i, b := range r.Bodies() {
		before[i].radius = b.Radius
		before[i].size = b.VisualSize
		p := b.Position()
		posBefore[i] = struct{ x, y, z float64 }{p.X, p.Y, p.Z}
	}

	r.ApplyScale(parameter.ScaleRealistic)
	r.ApplyScale(parameter.ScaleVisible)

	for i, b := range r.Bodies() {
		if b.Radius != before[i].radius || b.VisualSize != before[i].size {
			t.Errorf("%s: round trip changed radius/size", b.Name)
		}
		p := b.Position()
		if p.X != posBefore[i].x || p.Y != posBefore[i].y || p.Z != posBefore[i].z {
			t.Errorf("%s: round trip changed position", b.Name)
		}
	}
}

func TestApplyScaleFactors(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleRealistic)
	factors := parameter.Resolve(parameter.ScaleRealistic)

	for _, b := range r.Bodies() {
		wantRadius := b.VisDistance * factors.Distance
		wantSize := b.VisRadius * factors.Radius / parameter.SizeNormalization
		if b.Radius != wantRadius {
			t.Errorf("%s: expected radius %v, got %v", b.Name, wantRadius, b.Radius)
		}
		if b.VisualSize != wantSize {
			t.Errorf("%s: expected size %v, got %v", b.Name, wantSize, b.VisualSize)
		}
	}
}

func TestPositionFormula(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	r.Advance(30)

	for _, b := range r.Bodies() {
		p := b.Position()
		wantX := b.Radius * math.Cos(b.Angle)
		wantY := b.Radius * math.Sin(b.Angle)
		wantZ := parameter.OrbitWobbleFactor * b.Radius * math.Sin(b.Angle/2+float64(b.Index))
		if p.X != wantX || p.Y != wantY || p.Z != wantZ {
			t.Errorf("%s: position %+v does not match formula (%v, %v, %v)", b.Name, p, wantX, wantY, wantZ)
		}
	}
}

func TestWobbleDistinctPerBody(t *testing.T) {
	entries := testEntries()
	entries[1].VisDistance = entries[0].VisDistance
	entries[1].PeriodDays = entries[0].PeriodDays
	r := NewRegistry(entries, parameter.ScaleVisible)
	r.Advance(10)

	a, _ := r.Lookup(0)
	b, _ := r.Lookup(1)
	if a.Position().Z == b.Position().Z {
		t.Error("Expected index-distinct wobble for bodies at identical angle and radius")
	}
}

func TestTriggerPulseSetsHighlight(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	now := time.Unix(1000, 0)

	b, _ := r.Lookup(0)
	original := b.Color
	r.TriggerPulse(0, now)

	if b.Pulse == nil {
		t.Fatal("Expected active pulse")
	}
	if b.Color != parameter.HighlightColor {
		t.Errorf("Expected highlight color, got %v", b.Color)
	}
	if b.Pulse.Original != original {
		t.Errorf("Expected original color %v recorded, got %v", original, b.Pulse.Original)
	}
}

func TestTriggerPulseDoesNotRestartTimer(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	first := time.Unix(1000, 0)

	r.TriggerPulse(0, first)
	r.TriggerPulse(0, first.Add(50*time.Millisecond))

	b, _ := r.Lookup(0)
	if !b.Pulse.Activated.Equal(first) {
		t.Errorf("Expected activation %v kept, got %v", first, b.Pulse.Activated)
	}
	if b.Pulse.Original == parameter.HighlightColor {
		t.Error("Re-trigger must not capture the highlight color as original")
	}
}

func TestExpirePulsesRestoresColor(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	start := time.Unix(1000, 0)

	b, _ := r.Lookup(1)
	original := b.Color
	r.TriggerPulse(1, start)

	// Still inside the window
	r.ExpirePulses(start.Add(parameter.PulseDuration - time.Millisecond))
	if b.Pulse == nil {
		t.Fatal("Pulse expired early")
	}

	r.ExpirePulses(start.Add(parameter.PulseDuration + time.Millisecond))
	if b.Pulse != nil {
		t.Fatal("Expected pulse cleared")
	}
	if b.Color != original {
		t.Errorf("Expected color restored to %v, got %v", original, b.Color)
	}
}

func TestTriggerPulseOutOfRangeIsNoop(t *testing.T) {
	r := NewRegistry(testEntries(), parameter.ScaleVisible)
	r.TriggerPulse(-1, time.Unix(1000, 0))
	r.TriggerPulse(99, time.Unix(1000, 0))

	for _, b := range r.Bodies() {
		if b.Pulse != nil {
			t.Errorf("%s: unexpected pulse", b.Name)
		}
	}
}
