// Package catalog holds the solar system body catalog that sscat
// assembles: bodies keyed by Horizons id, their osculating-element and
// state-vector time series, and the identity corrections that keep the
// finished catalog physically consistent.
//
// Units follow the database files: lengths in Mm, velocities in Mm/s,
// masses in kg, times and epochs in Julian days.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// SunID is the Horizons id of the Sun, the only reference center the
// state derivation supports.
const SunID = "10"

// AuMm is one astronomical unit in megameters.
const AuMm = 149597.8707

// G is the gravitational constant in km3/(s2 kg), the unit GM values
// are published in.  Dividing a GM by G gives mass in kg.
const G = 6.67259e-20

// BodyType classifies a catalog body.  The zero value is no
// classification.
type BodyType string

const (
	Star       BodyType = "star"
	Planet     BodyType = "planet"
	Barycenter BodyType = "barycenter"
	Satellite  BodyType = "satellite"
	Asteroid   BodyType = "asteroid"
	Comet      BodyType = "comet"
	Artificial BodyType = "artificial"
)

// Body is a single catalog entry.  Physical parameters are pointers
// because absence is meaningful: a nil mass is "not measured," which
// later pipeline stages treat differently from a zero mass.
type Body struct {
	ID   string            `json:"-"` // the map key in the database files
	Name string            `json:"name"`
	Type BodyType          `json:"type"`
	Meta map[string]string `json:"meta,omitempty"`

	Mass           *float64    `json:"mass,omitempty"`            // kg
	Radius         *float64    `json:"radius,omitempty"`          // Mm, mean
	Albedo         *float64    `json:"albedo,omitempty"`          // geometric
	Magnitude      *float64    `json:"magnitude,omitempty"`       // absolute H
	RotationPeriod *float64    `json:"rotation_period,omitempty"` // days
	RotationAxis   *[3]float64 `json:"rotation_axis,omitempty"`   // J2000 ecliptic unit vector
	SpecTholen     string      `json:"spec_tholen,omitempty"`
	SpecSMASSII    string      `json:"spec_smassii,omitempty"`

	OscElements  Series[Elements]    `json:"osc_elements,omitempty"`
	StateVectors Series[StateVector] `json:"state_vectors,omitempty"`
}

// Elements is one osculating element set.  Angles are stored in
// radians (unit.Angle), lengths in Mm, the period in days.
//
// Eccentricity 1 is a reserved sentinel meaning the set is degenerate
// and must not be solved; it appears on the Sun's self-referential
// entry and on the synthetic around-barycenter entries of split
// planets.
type Elements struct {
	Epoch             float64    `json:"epoch"` // JD
	RefID             string     `json:"ref_id"`
	Eccentricity      float64    `json:"eccentricity"`
	PeriapsisDistance float64    `json:"periapsis_distance,omitempty"` // Mm
	Inclination       unit.Angle `json:"inclination"`
	Node              unit.Angle `json:"long_asc_node"`
	ArgPeriapsis      unit.Angle `json:"arg_periapsis"`
	TimeOfPeriapsis   float64    `json:"time_of_periapsis,omitempty"` // JD
	MeanMotion        unit.Angle `json:"mean_motion,omitempty"`       // per day
	MeanAnomaly       unit.Angle `json:"mean_anomaly"`
	TrueAnomaly       unit.Angle `json:"true_anomaly,omitempty"`
	SemiMajorAxis     float64    `json:"semi_major_axis"`             // Mm
	ApoapsisDistance  float64    `json:"apoapsis_distance,omitempty"` // Mm
	Period            float64    `json:"sidereal_orbit_period"`       // days
}

func (e Elements) epochJD() float64 { return e.Epoch }

// Element sets are keyed by (epoch, reference center): the same body
// can carry sets around different centers at one epoch.
func (e Elements) sameKey(o Elements) bool {
	return e.Epoch == o.Epoch && e.RefID == o.RefID
}

// StateVector is a single-instant Cartesian state.  Position is in Mm,
// velocity in Mm/s.  Vectors emitted by the derivation pipeline are in
// the solar system barycentric frame; the solver's direct output is
// heliocentric until shifted.
type StateVector struct {
	Epoch float64 // JD
	Pos   coord.Cart
	Vel   coord.Cart
}

func (v StateVector) epochJD() float64 { return v.Epoch }

func (v StateVector) sameKey(o StateVector) bool { return v.Epoch == o.Epoch }

// The database files store state vectors as flat 7-arrays
// [epoch, x, y, z, vx, vy, vz], the format the viewer consumes.

func (v StateVector) MarshalJSON() ([]byte, error) {
	return json.Marshal([7]float64{
		v.Epoch,
		v.Pos.X, v.Pos.Y, v.Pos.Z,
		v.Vel.X, v.Vel.Y, v.Vel.Z,
	})
}

func (v *StateVector) UnmarshalJSON(b []byte) error {
	var a [7]float64
	if err := json.Unmarshal(b, &a); err != nil {
		return fmt.Errorf("state vector must be a 7-element array: %w", err)
	}
	v.Epoch = a[0]
	v.Pos = coord.Cart{X: a[1], Y: a[2], Z: a[3]}
	v.Vel = coord.Cart{X: a[4], Y: a[5], Z: a[6]}
	return nil
}

// deepCopy returns a copy sharing no storage with b.
func (b *Body) deepCopy() *Body {
	c := *b
	if b.Meta != nil {
		c.Meta = make(map[string]string, len(b.Meta))
		for k, v := range b.Meta {
			c.Meta[k] = v
		}
	}
	c.Mass = copyFloat(b.Mass)
	c.Radius = copyFloat(b.Radius)
	c.Albedo = copyFloat(b.Albedo)
	c.Magnitude = copyFloat(b.Magnitude)
	c.RotationPeriod = copyFloat(b.RotationPeriod)
	if b.RotationAxis != nil {
		ax := *b.RotationAxis
		c.RotationAxis = &ax
	}
	c.OscElements = append(Series[Elements](nil), b.OscElements...)
	c.StateVectors = append(Series[StateVector](nil), b.StateVectors...)
	return &c
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Float is a convenience for building optional physical parameters.
func Float(v float64) *float64 { return &v }
