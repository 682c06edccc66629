package kepler_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/sscat/internal/catalog"
	"github.com/soniakeys/sscat/internal/kepler"
)

// venusJ2000 is a Horizons osculating element set for Venus at the
// J2000 epoch, heliocentric ecliptic.
var venusJ2000 = catalog.Elements{
	Epoch:         base.J2000,
	RefID:         catalog.SunID,
	Eccentricity:  6.755786250503024e-03,
	Inclination:   unit.AngleFromDeg(3.394589648659516),
	Node:          unit.AngleFromDeg(7.667837463924961e+01),
	ArgPeriapsis:  unit.AngleFromDeg(5.518596653686583e+01),
	MeanAnomaly:   unit.AngleFromDeg(5.011477187351476e+01),
	SemiMajorAxis: 7.233269274790103e-01 * catalog.AuMm,
	Period:        2.246983300739057e+02,
}

// the state the element set above solves to at its own epoch
var venusState = []float64{
	-1.074564940489116e+05, // Mm
	-4.885015029930510e+03,
	6.135634314000621e+03,
	1.381906047920155e-03, // Mm/s
	-3.514029517606325e-02,
	-5.600423209496981e-04,
}

func close6(got, want float64) bool {
	return math.Abs(got-want) <= 1e-6*math.Abs(want)
}

func TestSnapshotVenus(t *testing.T) {
	d := kepler.New(nil)
	sv, err := d.Snapshot(venusJ2000, base.J2000, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if sv.Epoch != base.J2000 {
		t.Fatal("epoch tag", sv.Epoch)
	}
	got := []float64{sv.Pos.X, sv.Pos.Y, sv.Pos.Z, sv.Vel.X, sv.Vel.Y, sv.Vel.Z}
	for i, want := range venusState {
		if !close6(got[i], want) {
			t.Fatalf("component %d: got %.15e, want %.15e", i, got[i], want)
		}
	}
}

// A circular orbit stays at radius a and the anomaly advance is
// linear, so solving a quarter period after the epoch lands a quarter
// orbit along.
func TestSnapshotCircular(t *testing.T) {
	el := catalog.Elements{
		Epoch:         base.J2000,
		RefID:         catalog.SunID,
		SemiMajorAxis: catalog.AuMm,
		Period:        365.25,
	}
	d := kepler.New(nil)
	sv, err := d.Snapshot(el, base.J2000+el.Period/4, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	r := math.Sqrt(sv.Pos.Square())
	if !close6(r, catalog.AuMm) {
		t.Fatalf("circular radius %g, want %g", r, catalog.AuMm)
	}
	// with all angles zero the frame is the orbital plane: a quarter
	// orbit from M=0 is straight up the y axis
	if !close6(sv.Pos.Y, catalog.AuMm) || math.Abs(sv.Pos.X) > 1e-3*catalog.AuMm {
		t.Fatalf("quarter orbit at (%g, %g)", sv.Pos.X, sv.Pos.Y)
	}
}

// Solving before the set's epoch advances the time forward by whole
// periods, so the state one period earlier is the state at the epoch.
func TestSnapshotEpochNormalization(t *testing.T) {
	d := kepler.New(nil)
	at, err := d.Snapshot(venusJ2000, base.J2000, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	before, err := d.Snapshot(venusJ2000, base.J2000-venusJ2000.Period, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if !close6(before.Pos.X, at.Pos.X) || !close6(before.Pos.Y, at.Pos.Y) {
		t.Fatal("pre-epoch solve did not normalize onto the epoch state")
	}
}

// Vis-viva: v^2 = u(2/r - 1/a) holds for any solvable element set.
func TestSnapshotVisViva(t *testing.T) {
	d := kepler.New(nil)
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 100; i++ {
		el := catalog.Elements{
			Epoch:         base.J2000,
			RefID:         catalog.SunID,
			Eccentricity:  rnd.Float64() * .95,
			Inclination:   unit.AngleFromDeg(rnd.Float64() * 180),
			Node:          unit.AngleFromDeg(rnd.Float64() * 360),
			ArgPeriapsis:  unit.AngleFromDeg(rnd.Float64() * 360),
			MeanAnomaly:   unit.AngleFromDeg(rnd.Float64() * 360),
			SemiMajorAxis: (rnd.Float64()*30 + .1) * catalog.AuMm,
			Period:        rnd.Float64()*10000 + 10,
		}
		sv, err := d.Snapshot(el, base.J2000+rnd.Float64()*el.Period, base.J2000)
		if err != nil {
			t.Fatal(err)
		}
		n := 2 * math.Pi / el.Period
		u := n * n * math.Pow(el.SemiMajorAxis, 3)
		r := math.Sqrt(sv.Pos.Square())
		v2 := sv.Vel.Square() * kepler.DaySeconds * kepler.DaySeconds
		want := u * (2/r - 1/el.SemiMajorAxis)
		if math.Abs(v2-want) > 1e-6*want {
			t.Fatalf("case %d: v2 = %g, vis-viva wants %g", i, v2, want)
		}
	}
}

// Newton-Raphson converges within 30 iterations across the
// eccentricity range the catalog carries; a warning on the log means
// it did not.
func TestSnapshotConvergence(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	d := kepler.New(zap.New(core))
	for e := 0.0; e < .99; e += .01 {
		for m := 0.0; m < 360; m += 30 {
			el := catalog.Elements{
				Epoch:         base.J2000,
				RefID:         catalog.SunID,
				Eccentricity:  e,
				MeanAnomaly:   unit.AngleFromDeg(m),
				SemiMajorAxis: catalog.AuMm,
				Period:        365.25,
			}
			if _, err := d.Snapshot(el, base.J2000, base.J2000); err != nil {
				t.Fatal(err)
			}
		}
	}
	if n := logged.Len(); n > 0 {
		t.Fatalf("%d non-convergence warnings, first: %v",
			n, logged.All()[0].Message)
	}
}

// Past the catalog's eccentricity range Newton-Raphson can run out its
// 30 iterations.  That is recoverable: the solve warns, carries on with
// the last iterate, and still returns a finite state.
func TestSnapshotNonConvergence(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	d := kepler.New(zap.New(core))
	el := catalog.Elements{
		Epoch:         base.J2000,
		RefID:         catalog.SunID,
		Eccentricity:  .995,
		MeanAnomaly:   unit.AngleFromDeg(2),
		SemiMajorAxis: catalog.AuMm,
		Period:        365.25,
	}
	sv, err := d.Snapshot(el, base.J2000, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if n := logged.Len(); n != 1 {
		t.Fatal("want 1 non-convergence warning, got", n)
	}
	if msg := logged.All()[0].Message; msg != "kepler iteration did not converge" {
		t.Fatal("warning message:", msg)
	}
	for _, x := range []float64{sv.Pos.X, sv.Pos.Y, sv.Pos.Z, sv.Vel.X, sv.Vel.Y, sv.Vel.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("non-finite state component %g", x)
		}
	}
}

func TestSnapshotErrors(t *testing.T) {
	d := kepler.New(nil)

	el := venusJ2000
	el.RefID = "399"
	if _, err := d.Snapshot(el, base.J2000, base.J2000); !errors.Is(err, kepler.ErrUnsupportedCenter) {
		t.Fatal("non-Sun center:", err)
	}

	el = venusJ2000
	el.Eccentricity = 1
	if _, err := d.Snapshot(el, base.J2000, base.J2000); !errors.Is(err, kepler.ErrDegenerate) {
		t.Fatal("sentinel eccentricity:", err)
	}

	el = venusJ2000
	el.Period = 0
	if _, err := d.Snapshot(el, base.J2000, base.J2000); !errors.Is(err, kepler.ErrNonPositivePeriod) {
		t.Fatal("zero period:", err)
	}
}

func TestToBarycentric(t *testing.T) {
	d := kepler.New(nil)
	helio, err := d.Snapshot(venusJ2000, base.J2000, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	ssb, err := d.ToBarycentric(helio)
	if err != nil {
		t.Fatal(err)
	}
	// the shift is the Sun's J2000 barycentric position
	if dx := ssb.Pos.X - helio.Pos.X; !close6(dx, -1.067598502264559e+03) {
		t.Fatal("x shift", dx)
	}
	if dz := ssb.Vel.Z - helio.Vel.Z; !close6(dz, -1.633335103087856e-07) {
		t.Fatal("vz shift", dz)
	}

	helio.Epoch = base.J2000 + 1
	if _, err := d.ToBarycentric(helio); !errors.Is(err, kepler.ErrEpochTag) {
		t.Fatal("off-epoch shift:", err)
	}
}
