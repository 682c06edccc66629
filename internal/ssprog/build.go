package ssprog

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/soniakeys/sscat/internal/store"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the catalog database from source files",
	Long: `Build loads the database directory, merges the given Horizons
extracts and small-body query results into it, derives missing physical
parameters and canonical-epoch state vectors, and writes the database
back.  Building over an existing database is safe: sources replace
matching entries and leave the rest alone.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	f := buildCmd.Flags()
	f.StringSlice("horizons", nil, "Horizons extract files (globs allowed)")
	f.String("smallbody", "", "SBDB query result CSV")
	f.Int("asteroids", 1000, "small-body asteroid limit")
	f.Int("comets", 1000, "small-body comet limit")
	viper.BindPFlag("horizons", f.Lookup("horizons"))
	viper.BindPFlag("smallbody", f.Lookup("smallbody"))
	viper.BindPFlag("asteroids", f.Lookup("asteroids"))
	viper.BindPFlag("comets", f.Lookup("comets"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	files, err := expandGlobs(viper.GetStringSlice("horizons"))
	if err != nil {
		return err
	}

	dir := viper.GetString("database")
	c, err := store.Load(dir)
	if err != nil {
		return err
	}
	log.Info("loaded database",
		zap.String("dir", dir), zap.Int("bodies", c.Len()))

	p := &Pipeline{
		Horizons:     files,
		SmallBody:    viper.GetString("smallbody"),
		MaxAsteroids: viper.GetInt("asteroids"),
		MaxComets:    viper.GetInt("comets"),
		Log:          log,
	}
	if err := p.Run(c); err != nil {
		return err
	}

	if err := store.Save(dir, c); err != nil {
		return err
	}
	log.Info("saved database",
		zap.String("dir", dir), zap.Int("bodies", c.Len()))
	return nil
}

// expandGlobs resolves glob patterns, passing plain paths through so a
// nonexistent explicit file still reaches the open and errors there.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pat := range patterns {
		m, err := filepath.Glob(pat)
		if err != nil {
			return nil, err
		}
		if m == nil {
			files = append(files, pat)
			continue
		}
		files = append(files, m...)
	}
	return files, nil
}
