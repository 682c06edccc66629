package horizons_test

import (
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/sscat/internal/catalog"
	"github.com/soniakeys/sscat/internal/horizons"
)

// trimmed-down captures of real Horizons sessions.  the header noise
// lines are deliberate: parsing must tolerate them.

const elementsFixture = `*******************************************************************************
 Revised: July 31, 2013              Venus                              299

 PHYSICAL DATA (updated 2020-Oct-19):
  Vol. Mean Radius (km) =  6051.84+-0.01   Density (g/cm^3)      =  5.204
  Mean solar day        =   116.7490 d     Mean Radius (km)      = 6051.8
*******************************************************************************
Target body name: Venus (299)                     {source: DE441}
Center body name: Sun (10)                        {source: DE441}
Output units    : AU-D, deg, Julian Day Number (Tp)
Output type     : GEOMETRIC osculating elements
*******************************************************************************
$$SOE
2451545.000000000 = A.D. 2000-Jan-01 12:00:00.0000 TDB
 EC= 6.755786250503024E-03 QR= 7.184405562814215E-01 IN= 3.394589648659516E+00
 OM= 7.667837463924961E+01 W = 5.518596653686583E+01 Tp=  2451514.705205276702
 N = 1.602144959764864E+00 MA= 5.011477187351476E+01 TA= 5.075829147083913E+01
 A = 7.233269274790103E-01 AD= 7.282132986765990E-01 PR= 2.246983300739057E+02
2451645.000000000 = A.D. 2000-Apr-10 12:00:00.0000 TDB
 EC= 6.749000000000000E-03 QR= 7.184400000000000E-01 IN= 3.394500000000000E+00
 OM= 7.667800000000000E+01 W = 5.518600000000000E+01 Tp=  2451739.400000000000
 N = 1.602140000000000E+00 MA= 2.103500000000000E+02 TA= 2.100100000000000E+02
 A = 7.233270000000000E-01 AD= 7.282130000000000E-01 PR= 2.246980000000000E+02
$$EOE
*******************************************************************************
`

const vectorsFixture = `*******************************************************************************
Target body name: Moon (301)                      {source: DE441}
Center body name: Solar System Barycenter (0)     {source: DE441}
Output type     : GEOMETRIC cartesian states
*******************************************************************************
$$SOE
2451545.000000000, A.D. 2000-Jan-01 12:00:00.0000, -2.479921247067304E+07, 1.332721209416731E+08, 6.287240778330790E+04, -2.978365617846175E+01, -5.461141590907866E+00, 1.947758013120210E-02,
$$EOE
`

func TestParseElements(t *testing.T) {
	x, err := horizons.Parse(elementsFixture)
	if err != nil {
		t.Fatal(err)
	}
	if x.ID != "299" || x.Name != "Venus" {
		t.Fatalf("target %q (%s)", x.Name, x.ID)
	}
	if x.RefID != "10" {
		t.Fatal("center", x.RefID)
	}
	if math.Abs(x.Radius-6051.84/1000) > 1e-9 {
		t.Fatal("mean radius", x.Radius)
	}
	if len(x.Elements) != 2 {
		t.Fatal("want 2 element sets, got", len(x.Elements))
	}

	el := x.Elements[0]
	if el.Epoch != 2451545 || el.RefID != "10" {
		t.Fatalf("first set keyed %v/%s", el.Epoch, el.RefID)
	}
	if el.Eccentricity != 6.755786250503024e-03 {
		t.Fatal("eccentricity", el.Eccentricity)
	}
	wantA := 7.233269274790103e-01 * catalog.AuMm
	if math.Abs(el.SemiMajorAxis-wantA) > 1e-6 {
		t.Fatal("semi-major axis", el.SemiMajorAxis)
	}
	wantIncl := 3.394589648659516 * math.Pi / 180
	if math.Abs(el.Inclination.Rad()-wantIncl) > 1e-12 {
		t.Fatal("inclination", el.Inclination.Rad())
	}
	if el.Period != 2.246983300739057e+02 {
		t.Fatal("period", el.Period)
	}
	if el.TimeOfPeriapsis != 2451514.705205276702 {
		t.Fatal("time of periapsis", el.TimeOfPeriapsis)
	}

	if x.Elements[1].Epoch != 2451645 {
		t.Fatal("second set epoch", x.Elements[1].Epoch)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	for _, cut := range []string{"Target body name", "Center body name", "Output type"} {
		broken := strings.Replace(elementsFixture, cut, "X", 1)
		if _, err := horizons.Parse(broken); err == nil {
			t.Fatalf("parse succeeded without %q header", cut)
		}
	}
	noPayload := strings.NewReplacer("$$SOE", "", "$$EOE", "").Replace(elementsFixture)
	if _, err := horizons.Parse(noPayload); err == nil {
		t.Fatal("parse succeeded without a payload")
	}
}

// A corrupted epoch header whose calendar date disagrees with the JD
// must fail the parse, not produce a silently misplaced element set.
func TestParseCalendarCrossCheck(t *testing.T) {
	src := strings.Replace(elementsFixture,
		"2451545.000000000 = A.D. 2000-Jan-01 12:00:00.0000 TDB",
		"2451545.000000000 = A.D. 2000-Apr-10.5", 1)
	if _, err := horizons.Parse(src); err == nil {
		t.Fatal("mismatched calendar date accepted")
	}
	// fractional day forms that do agree parse fine
	src = strings.Replace(elementsFixture,
		"2451545.000000000 = A.D. 2000-Jan-01 12:00:00.0000 TDB",
		"2451545.000000000 = A.D. 2000-Jan-1.5", 1)
	if _, err := horizons.Parse(src); err != nil {
		t.Fatal(err)
	}
}

func TestParseVectors(t *testing.T) {
	x, err := horizons.Parse(vectorsFixture)
	if err != nil {
		t.Fatal(err)
	}
	if x.ID != "301" || x.RefID != "0" {
		t.Fatalf("target %s center %s", x.ID, x.RefID)
	}
	if len(x.StateVectors) != 1 {
		t.Fatal("want 1 vector, got", len(x.StateVectors))
	}
	sv := x.StateVectors[0]
	if sv.Epoch != 2451545 {
		t.Fatal("epoch", sv.Epoch)
	}
	// km scaled to Mm
	if math.Abs(sv.Pos.X - -2.479921247067304e+04) > 1e-6 {
		t.Fatal("x", sv.Pos.X)
	}
}

func TestApply(t *testing.T) {
	c := catalog.New()
	x, err := horizons.Parse(elementsFixture)
	if err != nil {
		t.Fatal(err)
	}
	if err := x.Apply(c); err != nil {
		t.Fatal(err)
	}
	b := c.Body("299")
	if b == nil {
		t.Fatal("no body after apply")
	}
	if b.Name != "Venus" || b.Type != catalog.Planet {
		t.Fatalf("identity %q %q", b.Name, b.Type)
	}
	if b.Radius == nil {
		t.Fatal("radius not applied")
	}
	if len(b.OscElements) != 2 {
		t.Fatal("element sets", len(b.OscElements))
	}

	// re-applying the same extract replaces, never duplicates
	if err := x.Apply(c); err != nil {
		t.Fatal(err)
	}
	if len(b.OscElements) != 2 {
		t.Fatal("re-apply duplicated element sets:", len(b.OscElements))
	}
}
