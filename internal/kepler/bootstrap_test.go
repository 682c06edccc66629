package kepler_test

import (
	"testing"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/soniakeys/sscat/internal/catalog"
	"github.com/soniakeys/sscat/internal/kepler"
)

func TestEnsureState(t *testing.T) {
	b := &catalog.Body{ID: "299", Name: "Venus"}
	b.OscElements = b.OscElements.Merge([]catalog.Elements{venusJ2000})

	d := kepler.New(nil)
	added, err := d.EnsureState(b, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Fatal("no vector added")
	}
	sv, ok := b.StateVectors.At(base.J2000)
	if !ok {
		t.Fatal("vector not stored at the requested epoch")
	}
	// stored barycentric, not heliocentric
	if !close6(sv.Pos.X, venusState[0]-1.067598502264559e+03) {
		t.Fatal("vector not shifted to the barycentric frame:", sv.Pos.X)
	}

	// a second call must be a no-op
	added, err = d.EnsureState(b, base.J2000)
	if err != nil {
		t.Fatal(err)
	}
	if added || len(b.StateVectors) != 1 {
		t.Fatal("repeat bootstrap was not a no-op")
	}
}

// Bodies with no solvable heliocentric set are skipped, not failed:
// satellites reference their primaries and the Sun's own entry is the
// degenerate sentinel.
func TestEnsureStateSkips(t *testing.T) {
	d := kepler.New(nil)

	moon := &catalog.Body{ID: "301"}
	moon.OscElements = moon.OscElements.Merge([]catalog.Elements{{
		Epoch: base.J2000, RefID: "399",
		Eccentricity: .0549, SemiMajorAxis: 384.4, Period: 27.32,
	}})
	if added, err := d.EnsureState(moon, base.J2000); err != nil || added {
		t.Fatal("satellite set not skipped:", added, err)
	}

	sun := &catalog.Body{ID: catalog.SunID}
	sun.OscElements = sun.OscElements.Merge([]catalog.Elements{{
		Epoch: base.J2000, RefID: catalog.SunID, Eccentricity: 1,
	}})
	if added, err := d.EnsureState(sun, base.J2000); err != nil || added {
		t.Fatal("sentinel set not skipped:", added, err)
	}
}

func TestClosestHeliocentric(t *testing.T) {
	near := venusJ2000
	far := venusJ2000
	far.Epoch = base.J2000 + 1000
	moonRef := venusJ2000
	moonRef.Epoch = base.J2000 + 1 // closest, but not heliocentric
	moonRef.RefID = "399"

	b := &catalog.Body{ID: "299"}
	b.OscElements = b.OscElements.Merge([]catalog.Elements{far, near, moonRef})

	el, ok := kepler.ClosestHeliocentric(b, base.J2000)
	if !ok {
		t.Fatal("no set selected")
	}
	if el.Epoch != base.J2000 {
		t.Fatal("selected epoch", el.Epoch)
	}

	if _, ok := kepler.ClosestHeliocentric(&catalog.Body{}, base.J2000); ok {
		t.Fatal("selected a set from an empty body")
	}
}
