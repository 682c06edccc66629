// Package kepler derives Cartesian state vectors from osculating
// orbital elements: the Newton-Raphson solution of Kepler's equation,
// the rotation into the reference ecliptic frame, the fixed shift from
// the heliocentric to the solar system barycentric frame, and the
// closest-epoch bootstrap that backfills missing canonical-epoch
// vectors in a catalog.
//
// Only heliocentric element sets are solvable.  Orbits around any
// other center would have to be compounded with the center's own
// motion, which this pipeline does not do, so a non-Sun reference
// center is an error rather than a silently wrong answer.
package kepler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/catalog"
)

// Newton-Raphson convergence contract for Kepler's equation.
const (
	maxIter  = 30
	residual = 1e-10
)

// DaySeconds converts per-day rates to per-second.  Solved velocities
// come out of the orbit equations in Mm/day and are emitted in Mm/s.
const DaySeconds = 86400

var (
	ErrUnsupportedCenter = errors.New("unsupported reference center")
	ErrNonPositivePeriod = errors.New("non-positive orbital period")
	ErrDegenerate        = errors.New("degenerate element set")
	ErrEpochTag          = errors.New("state vector not tagged with the canonical epoch")
)

// sunSSB is the barycentric state of the Sun at the canonical J2000
// epoch, in Mm and Mm/s.  It is only valid at that instant, which is
// why ToBarycentric checks the epoch tag.
var sunSSB = catalog.StateVector{
	Epoch: base.J2000,
	Pos: coord.Cart{
		X: -1.067598502264559e+03,
		Y: -4.182343932742174e+02,
		Z: 3.083761810502339e+01,
	},
	Vel: coord.Cart{
		X: 9.312570119052345e-06,
		Y: -1.282474958274199e-05,
		Z: -1.633335103087856e-07,
	},
}

// Deriver solves element sets into state vectors.  It carries the
// logger used for non-fatal diagnostics.
type Deriver struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Deriver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deriver{log: log}
}

// Snapshot solves an osculating element set for the Cartesian state at
// time t, in the ecliptic frame of the set's reference center.
//
// The returned vector is tagged with tagJD, not with t.  The pipeline
// emits single-instant snapshots labeled with the canonical epoch
// regardless of how t was normalized, so the tag is part of the
// caller's contract and is explicit in the signature rather than
// echoed from t.
//
// t is advanced forward by whole periods until it is at or after the
// set's epoch; a non-positive period would make that loop endless and
// fails fast instead.  Newton-Raphson non-convergence within 30
// iterations is logged and the last iterate used; it never fails the
// computation.
func (d *Deriver) Snapshot(el catalog.Elements, t, tagJD float64) (catalog.StateVector, error) {
	if el.RefID != catalog.SunID {
		return catalog.StateVector{}, fmt.Errorf("%w %q", ErrUnsupportedCenter, el.RefID)
	}
	if el.Eccentricity >= 1 {
		return catalog.StateVector{}, fmt.Errorf("%w: e = %g", ErrDegenerate, el.Eccentricity)
	}
	if el.Period <= 0 {
		return catalog.StateVector{}, fmt.Errorf("%w: %g days", ErrNonPositivePeriod, el.Period)
	}
	for t < el.Epoch {
		t += el.Period
	}

	a := el.SemiMajorAxis
	e := el.Eccentricity
	n := 2 * math.Pi / el.Period // mean motion, rad/day
	u := n * n * a * a * a       // gravitational parameter by Kepler III
	M := el.MeanAnomaly.Rad() + n*(t-el.Epoch)

	// Kepler's equation E - e sin E = M
	E := M
	res := E - e*math.Sin(E) - M
	for i := 0; i < maxIter && math.Abs(res) > residual; i++ {
		E -= res / (1 - e*math.Cos(E))
		res = E - e*math.Sin(E) - M
	}
	if math.Abs(res) > residual {
		d.log.Warn("kepler iteration did not converge",
			zap.Float64("residual", res),
			zap.Float64("eccentricity", e),
			zap.Float64("epoch", el.Epoch),
			zap.Float64("t", t))
	}

	sE, cE := math.Sincos(E)
	v := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(E/2),
		math.Sqrt(1-e)*math.Cos(E/2))
	r := a * (1 - e*cE)

	// orbital-plane state
	px := r * math.Cos(v)
	py := r * math.Sin(v)
	scalar := math.Sqrt(u*a) / r
	vx := -scalar * sE
	vy := scalar * math.Sqrt(1-e*e) * cE

	// rotate argument of periapsis, inclination, ascending node into
	// the reference ecliptic frame.  same coefficients for position
	// and velocity.
	sw, cw := math.Sincos(el.ArgPeriapsis.Rad())
	so, co := math.Sincos(el.Node.Rad())
	si, ci := math.Sincos(el.Inclination.Rad())
	rot := func(x, y float64) coord.Cart {
		return coord.Cart{
			X: x*(cw*co-sw*ci*so) - y*(sw*co+cw*ci*so),
			Y: x*(cw*so+sw*ci*co) + y*(cw*ci*co-sw*so),
			Z: x*(sw*si) + y*(cw*si),
		}
	}
	pos := rot(px, py)
	vel := rot(vx, vy)
	vel.MulScalar(&vel, 1./DaySeconds)

	return catalog.StateVector{Epoch: tagJD, Pos: pos, Vel: vel}, nil
}

// ToBarycentric shifts a heliocentric state to the solar system
// barycentric frame by adding the Sun's barycentric state.  The offset
// is a constant valid only at the canonical epoch, so any other epoch
// tag is an error.  This is deliberately not a general frame
// transform.
func (d *Deriver) ToBarycentric(sv catalog.StateVector) (catalog.StateVector, error) {
	if sv.Epoch != sunSSB.Epoch {
		return catalog.StateVector{}, fmt.Errorf("%w: got JD %g", ErrEpochTag, sv.Epoch)
	}
	sv.Pos.Add(&sv.Pos, &sunSSB.Pos)
	sv.Vel.Add(&sv.Vel, &sunSSB.Vel)
	return sv, nil
}
