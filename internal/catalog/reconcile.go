package catalog

import (
	"github.com/soniakeys/meeus/v3/base"
	"go.uber.org/zap"
)

// barySplits lists the identities Horizons reports ambiguously: for a
// moonless planet the barycenter and the planet are the same point, so
// physical measurements and barycentric data arrive under one shared
// identity.  BodyID is the combined record, BaryID the identity the
// barycenter half is split out to.
var barySplits = []struct {
	BaryID, BodyID, Name string
}{
	{"1", "199", "Mercury"},
	{"2", "299", "Venus"},
}

// Reconcile applies the one-shot structural corrections to a fully
// merged and bootstrapped catalog: the Sun's sentinel element set and
// the barycenter/planet identity splits.  Corrections whose source
// identity is absent are skipped silently; a catalog built without
// Mercury data is not an error.
func Reconcile(c *Catalog, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	sunSentinel(c, log)
	for _, sp := range barySplits {
		splitBarycenter(c, sp.BaryID, sp.BodyID, sp.Name, log)
	}
}

// sunSentinel gives the Sun a single degenerate element set referring
// to itself, so every catalog body uniformly exposes at least one
// element set and downstream consumers have no null case.  The
// eccentricity 1 sentinel marks it as not dynamically solvable.
func sunSentinel(c *Catalog, log *zap.Logger) {
	sun := c.Body(SunID)
	if sun == nil {
		return
	}
	sun.OscElements = sun.OscElements.Merge([]Elements{{
		Epoch:        base.J2000,
		RefID:        SunID,
		Eccentricity: 1,
	}})
	log.Debug("injected sentinel element set for the Sun")
}

// splitBarycenter separates a combined planet/barycenter record into
// two identities.  The barycenter gets a deep copy of the combined
// entry with physical parameters zeroed and state vectors removed
// (barycenters are not independently observed); the original keeps
// the measurements and the vectors, is renamed to the planet, and its
// element series is replaced with a single synthetic set referencing
// the new barycenter.
//
// The copy is completed before the original is overwritten: the two
// results need disjoint field sets from one source, and an in-place
// mutation would corrupt whichever half is produced second.
func splitBarycenter(c *Catalog, baryID, bodyID, name string, log *zap.Logger) {
	combined := c.Body(bodyID)
	if combined == nil {
		return
	}

	bary := c.Body(baryID)
	if bary == nil {
		group, err := GroupFor(baryID)
		if err != nil {
			// split table ids always classify
			panic(err)
		}
		bary = combined.deepCopy()
		bary.ID = baryID
		c.Put(group, bary)
	} else {
		// the barycenter identity already holds data of its own,
		// typically heliocentric elements; fold the combined record's
		// series into it instead of discarding either.  a sentinel set
		// from an earlier split points back at the barycenter and is
		// not data.
		var els []Elements
		for _, el := range combined.OscElements {
			if el.Eccentricity < 1 {
				els = append(els, el)
			}
		}
		bary.OscElements = bary.OscElements.Merge(els)
	}
	bary.Name = name + " Barycenter"
	bary.Type = Barycenter
	bary.Mass = nil
	bary.Radius = nil
	bary.Albedo = nil
	bary.Magnitude = nil
	bary.RotationPeriod = nil
	bary.RotationAxis = nil
	bary.StateVectors = nil

	combined.Name = name
	combined.OscElements = Series[Elements]{{
		Epoch:        base.J2000,
		RefID:        baryID,
		Eccentricity: 1,
	}}

	log.Info("split barycenter identity",
		zap.String("body", bodyID), zap.String("barycenter", baryID),
		zap.String("name", name))
}
