package ssprog

import (
	"fmt"
	"os"
	"sort"

	"github.com/soniakeys/meeus/v3/base"
	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/catalog"
	"github.com/soniakeys/sscat/internal/estimate"
	"github.com/soniakeys/sscat/internal/horizons"
	"github.com/soniakeys/sscat/internal/jplsat"
	"github.com/soniakeys/sscat/internal/kepler"
	"github.com/soniakeys/sscat/internal/sbdb"
)

// Pipeline is one catalog build: sources in, assembled catalog out.
// Stages run in a fixed order because later stages fill gaps earlier
// ones leave.
type Pipeline struct {
	Horizons  []string // ephemeris extract files
	SmallBody string   // SBDB query result, "" to skip
	MaxAsteroids,
	MaxComets int
	Log *zap.Logger
}

// Run executes the pipeline stages against c in place.
func (p *Pipeline) Run(c *catalog.Catalog) error {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	// Extract files merge in lexical name order so a rebuild from the
	// same directory resolves epoch collisions the same way.
	sort.Strings(p.Horizons)
	for _, path := range p.Horizons {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		x, err := horizons.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := x.Apply(c); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("merged ephemeris extract",
			zap.String("file", path), zap.String("target", x.ID))
	}

	if p.SmallBody != "" {
		f, err := os.Open(p.SmallBody)
		if err != nil {
			return err
		}
		n, err := sbdb.Read(f, c, p.MaxAsteroids, p.MaxComets)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", p.SmallBody, err)
		}
		log.Info("merged small bodies", zap.Int("count", n))
	}

	jplsat.Apply(c, log)
	estimate.Run(c, log)

	// Every body with elements gets a state vector at the canonical
	// epoch, so a consumer can seed an integration from J2000 alone.
	d := kepler.New(log)
	added := 0
	for _, b := range c.Bodies() {
		ok, err := d.EnsureState(b, base.J2000)
		if err != nil {
			return fmt.Errorf("body %s: %w", b.ID, err)
		}
		if ok {
			added++
		}
	}
	log.Info("bootstrapped state vectors", zap.Int("added", added))

	catalog.Reconcile(c, log)
	return nil
}
