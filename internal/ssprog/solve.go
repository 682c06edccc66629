package ssprog

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniakeys/sscat/internal/kepler"
	"github.com/soniakeys/sscat/internal/store"
)

var solveCmd = &cobra.Command{
	Use:   "solve <id|name>",
	Short: "Solve a body's state vector from its orbital elements",
	Long: `Solve picks the body's heliocentric element set closest to the
requested epoch and solves Kepler's equation for the Cartesian state at
that epoch.  At the canonical J2000 epoch the state is shifted to the
solar system barycentric frame, matching what build stores; at any
other epoch the state is printed heliocentric.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Float64("jd", base.J2000, "epoch, Julian date")
	viper.BindPFlag("jd", solveCmd.Flags().Lookup("jd"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	c, err := store.Load(viper.GetString("database"))
	if err != nil {
		return err
	}
	b := c.Body(args[0])
	if b == nil {
		b = c.ByName(args[0])
	}
	if b == nil {
		return fmt.Errorf("no catalog body %q", args[0])
	}

	jd := viper.GetFloat64("jd")
	el, ok := kepler.ClosestHeliocentric(b, jd)
	if !ok {
		return fmt.Errorf("body %q has no solvable heliocentric elements", b.ID)
	}

	d := kepler.New(log)
	sv, err := d.Snapshot(el, jd, jd)
	if err != nil {
		return err
	}
	frame := "heliocentric"
	if jd == base.J2000 {
		if sv, err = d.ToBarycentric(sv); err != nil {
			return err
		}
		frame = "barycentric"
	}

	fmt.Printf("%s (%s), %s at %s\n", b.Name, b.ID, frame, calendar(jd))
	fmt.Printf("\tpos  %.9e %.9e %.9e Mm\n", sv.Pos.X, sv.Pos.Y, sv.Pos.Z)
	fmt.Printf("\tvel  %.9e %.9e %.9e Mm/s\n", sv.Vel.X, sv.Vel.Y, sv.Vel.Z)
	return nil
}
