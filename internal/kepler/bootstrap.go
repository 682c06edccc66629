package kepler

import (
	"math"

	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/catalog"
)

// EnsureState backfills a body's state vector series at epochJD from
// its heliocentric element set closest to that epoch.  It reports
// whether a vector was added.
//
// A body that already holds a vector at epochJD, or has no solvable
// heliocentric element set (natural satellites are referenced to their
// primaries, the Sun's own entry is the degenerate sentinel), is
// skipped: both are expected, not errors.  Repeated calls with the
// same epoch are no-ops after the first insert.
func (d *Deriver) EnsureState(b *catalog.Body, epochJD float64) (bool, error) {
	if _, ok := b.StateVectors.At(epochJD); ok {
		return false, nil
	}

	sel, ok := ClosestHeliocentric(b, epochJD)
	if !ok {
		return false, nil
	}

	sv, err := d.Snapshot(sel, epochJD, epochJD)
	if err != nil {
		return false, err
	}
	if sv, err = d.ToBarycentric(sv); err != nil {
		return false, err
	}
	b.StateVectors = b.StateVectors.Merge([]catalog.StateVector{sv})
	d.log.Info("computed state vector",
		zap.String("body", b.ID), zap.String("name", b.Name),
		zap.Float64("epoch", epochJD),
		zap.Float64("elements_epoch", sel.Epoch))
	return true, nil
}

// ClosestHeliocentric returns the body's solvable heliocentric element
// set with epoch closest to epochJD.  Sets referenced to other centers
// and degenerate sets do not count; the minimum is stable, so ties
// keep the first set seen.
func ClosestHeliocentric(b *catalog.Body, epochJD float64) (catalog.Elements, bool) {
	var sel *catalog.Elements
	for i := range b.OscElements {
		el := &b.OscElements[i]
		if el.RefID != catalog.SunID || el.Eccentricity >= 1 || el.Period <= 0 {
			continue
		}
		if sel == nil ||
			math.Abs(el.Epoch-epochJD) < math.Abs(sel.Epoch-epochJD) {
			sel = el
		}
	}
	if sel == nil {
		return catalog.Elements{}, false
	}
	return *sel, true
}
