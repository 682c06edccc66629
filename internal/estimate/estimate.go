// Package estimate fills in physical parameters that no upstream
// source supplies, from standard photometric and density relations.
package estimate

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/catalog"
)

// Standard densities in kg/Mm3.  Tholen classes group into three
// density families; X resolves to E, M, or P by albedo.
const (
	densityDefault   = 2e21
	densityCarbon    = 1.38e21 // classes C D P T B G F
	densityStony     = 2.71e21 // classes S K Q V R A E
	densityMetallic  = 5.32e21 // class M
	densityCometCore = 0.6e21
)

// cometMasses holds published nucleus masses, kg, for the few comets
// with direct size determinations.  These override the density
// estimate.
var cometMasses = map[string]float64{
	"c00001_0": 3e14,   // 1P/Halley
	"c00009_0": 7.9e13, // 9P/Tempel 1
	"c00019_0": 7.9e13, // 19P/Borrelly
	"c00081_0": 2.3e13, // 81P/Wild
	"c00067_0": 1e13,   // 67P/Churyumov-Gerasimenko
}

// Run estimates missing radii and masses in place.  A radius follows
// from absolute magnitude H and geometric albedo p as
//
//	D(km) = 1329/sqrt(p) * 10^(-H/5)
//
// for any body carrying both.  Asteroid and comet masses then follow
// from the radius and a standard density, chosen by Tholen spectral
// class for asteroids that have one.  Existing values are never
// replaced.
func Run(c *catalog.Catalog, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	for _, b := range c.Bodies() {
		if b.Radius == nil && b.Magnitude != nil && b.Albedo != nil {
			diameterKm := 1329.0 / math.Sqrt(*b.Albedo) *
				math.Pow(10, -0.2*(*b.Magnitude))
			b.Radius = catalog.Float(diameterKm / 2000)
			log.Debug("estimated radius",
				zap.String("id", b.ID), zap.String("name", b.Name),
				zap.Float64("radius_mm", *b.Radius))
		}
	}
	for _, b := range c.Group("asteroids") {
		if b.Mass != nil || b.Radius == nil {
			continue
		}
		b.Mass = catalog.Float(sphereMass(*b.Radius,
			asteroidDensity(b, log)))
	}
	for _, b := range c.Group("comets") {
		if b.Mass == nil && b.Radius != nil {
			b.Mass = catalog.Float(sphereMass(*b.Radius, densityCometCore))
		}
	}
	for id, m := range cometMasses {
		if b := c.Body(id); b != nil {
			b.Mass = catalog.Float(m)
		}
	}
}

func sphereMass(radius, density float64) float64 {
	return 4. / 3 * math.Pi * radius * radius * radius * density
}

// asteroidDensity picks a density from the Tholen spectral class.
// The class string lists up to four letters, best fit first.
func asteroidDensity(b *catalog.Body, log *zap.Logger) float64 {
	for _, r := range strings.ToUpper(b.SpecTholen) {
		letter := byte(r)
		if letter == 'X' {
			// E, M or P depending on albedo, M when unknown.
			switch {
			case b.Albedo == nil:
				letter = 'M'
			case *b.Albedo > .3:
				letter = 'E'
			case *b.Albedo < .1:
				letter = 'P'
			default:
				letter = 'M'
			}
		}
		switch {
		case strings.IndexByte("CDPTBGF", letter) >= 0:
			return densityCarbon
		case strings.IndexByte("SKQVRAE", letter) >= 0:
			return densityStony
		case letter == 'M':
			return densityMetallic
		case letter == 'I' || letter == ':':
			// Inconsistent or noisy classification.
			return densityDefault
		default:
			log.Warn("unexpected spectral class",
				zap.String("id", b.ID),
				zap.String("spec_tholen", b.SpecTholen))
		}
	}
	return densityDefault
}
