// Package sbdb imports asteroids and comets from a JPL Small-Body
// Database query result.
//
// The input is the CSV export of an SBDB query ordered by designation:
// one row per body, a header row first.  Asteroid ids carry an "a"
// prefix, comet ids a "c" prefix.  Import is capped per population so
// a full-database export only contributes the leading bodies of each.
package sbdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/sscat/internal/catalog"
)

// CSV column layout of the SBDB export.
const (
	colID = iota
	colName
	colSpecTholen
	colSpecSMASSII
	colGM       // km3/s2
	colDiameter // km
	colH        // absolute magnitude
	colAlbedo
	colRotPer // hours
	colEpoch  // JD
	_         // equinox
	colEcc
	colSMA // AU
	_      // periapsis distance
	colIncl
	colNode
	colArgPeri
	colMeanAnom
	_         // time of periapsis
	colPeriod // days
	colCount  // minimum row width
)

// Read parses the CSV stream and folds up to maxAsteroids asteroids
// and maxComets comets into the catalog.  Each body gets its physical
// parameters where the export has them and one heliocentric element
// set, merged through the body's series.
func Read(r io.Reader, c *catalog.Catalog, maxAsteroids, maxComets int) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() { // header
		return 0, sc.Err()
	}

	var asteroids, comets, added int
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		isAsteroid := line[0] == 'a'
		isComet := line[0] == 'c'
		if isAsteroid {
			asteroids++
		} else if isComet {
			comets++
		}
		skipAsteroid := isAsteroid && asteroids > maxAsteroids
		skipComet := isComet && comets > maxComets
		if skipAsteroid && skipComet {
			break
		}
		if skipAsteroid || skipComet || !(isAsteroid || isComet) {
			continue
		}
		if err := addBody(line, c); err != nil {
			return added, err
		}
		added++
		if asteroids >= maxAsteroids && comets >= maxComets {
			break
		}
	}
	return added, sc.Err()
}

func addBody(line string, c *catalog.Catalog) error {
	vals := strings.Split(line, ",")
	if len(vals) < colCount {
		return fmt.Errorf("sbdb: row %q has %d columns, want %d", vals[0], len(vals), colCount)
	}
	id := vals[colID]
	if id == "" {
		return fmt.Errorf("sbdb: row with empty id")
	}

	b, err := c.Ensure(id)
	if err != nil {
		return err
	}
	b.Name = strings.TrimSpace(vals[colName])
	b.SpecTholen = strings.TrimSpace(vals[colSpecTholen])
	b.SpecSMASSII = strings.TrimSpace(vals[colSpecSMASSII])

	// physical parameters, each optional in the export
	if v, ok, err := field(vals, colDiameter, id); err != nil {
		return err
	} else if ok {
		b.Radius = catalog.Float(v / 2000) // km diameter to Mm radius
	}
	if v, ok, err := field(vals, colH, id); err != nil {
		return err
	} else if ok {
		b.Magnitude = catalog.Float(v)
	}
	if v, ok, err := field(vals, colAlbedo, id); err != nil {
		return err
	} else if ok {
		b.Albedo = catalog.Float(v)
	}
	if v, ok, err := field(vals, colRotPer, id); err != nil {
		return err
	} else if ok {
		b.RotationPeriod = catalog.Float(v / 24) // hours to days
	}
	if v, ok, err := field(vals, colGM, id); err != nil {
		return err
	} else if ok {
		b.Mass = catalog.Float(v / catalog.G)
	}

	el := catalog.Elements{RefID: catalog.SunID} // SBDB elements are all heliocentric
	reqd := []struct {
		col  int
		deg  bool
		au   bool
		fdst *float64
		adst *unit.Angle
	}{
		{col: colEpoch, fdst: &el.Epoch},
		{col: colEcc, fdst: &el.Eccentricity},
		{col: colSMA, au: true, fdst: &el.SemiMajorAxis},
		{col: colIncl, deg: true, adst: &el.Inclination},
		{col: colNode, deg: true, adst: &el.Node},
		{col: colArgPeri, deg: true, adst: &el.ArgPeriapsis},
		{col: colMeanAnom, deg: true, adst: &el.MeanAnomaly},
		{col: colPeriod, fdst: &el.Period},
	}
	for _, f := range reqd {
		v, ok, err := field(vals, f.col, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("sbdb: row %q missing element column %d", id, f.col)
		}
		switch {
		case f.deg:
			*f.adst = unit.AngleFromDeg(v)
		case f.au:
			*f.fdst = v * catalog.AuMm
		default:
			*f.fdst = v
		}
	}
	b.OscElements = b.OscElements.Merge([]catalog.Elements{el})
	return nil
}

func field(vals []string, col int, id string) (float64, bool, error) {
	s := strings.TrimSpace(vals[col])
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("sbdb: row %q column %d: %w", id, col, err)
	}
	return v, true, nil
}
