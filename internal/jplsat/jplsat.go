// Package jplsat merges the JPL planetary satellite physical
// parameters into a catalog.
//
// The table below is the published ssd.jpl.nasa.gov satellite list
// (GM, mean radius, density, magnitude, albedo), carried in source so
// a build needs no network access.  Horizons is the primary source for
// this pipeline, so an existing value is never overwritten: the table
// only fills gaps, and a mass that diverges badly from the Horizons
// value is reported rather than replaced.
package jplsat

import (
	"math"

	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/catalog"
)

// Entry is one satellite row: GM in km3/s2, radius in km, density in
// g/cm3, magnitude as published (band suffixes and "?" preserved),
// geometric albedo.
type Entry struct {
	Name      string
	GM        float64
	Radius    float64
	Density   float64
	Magnitude string
	Albedo    float64
}

// DivergenceLimitPct is the mass disagreement between an existing
// catalog value and the table, in percent, above which Apply reports
// the conflict.
const DivergenceLimitPct = 20

// Apply merges the table into the catalog by satellite name.  Rows
// with zero GM carry no usable mass and are skipped, as are names the
// catalog has no body for (satellites are only present when some
// ephemeris extract mentioned them).
func Apply(c *catalog.Catalog, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	for _, e := range Table {
		if e.GM == 0 {
			continue
		}
		massKg := e.GM / catalog.G
		b := c.ByName(e.Name)
		if b == nil {
			log.Debug("no catalog body for satellite table entry",
				zap.String("name", e.Name))
			continue
		}
		if b.Mass == nil {
			log.Debug("assigning satellite mass",
				zap.String("name", e.Name), zap.Float64("mass_kg", massKg))
			b.Mass = catalog.Float(massKg)
			continue
		}
		if pct := 100 * math.Abs(*b.Mass-massKg) / *b.Mass; pct > DivergenceLimitPct {
			log.Warn("divergent satellite mass",
				zap.String("name", e.Name),
				zap.Float64("horizons_kg", *b.Mass),
				zap.Float64("jpl_kg", massKg),
				zap.Float64("divergence_pct", pct))
		}
	}
}
