package ssprog

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/soniakeys/meeus/v3/julian"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniakeys/sscat/internal/catalog"
	"github.com/soniakeys/sscat/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Print one catalog body",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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
	printBody(os.Stdout, b)
	return nil
}

func printBody(w *os.File, b *catalog.Body) {
	fmt.Fprintf(w, "%s (%s), %s\n", b.Name, b.ID, b.Type)
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	if b.Mass != nil {
		fmt.Fprintf(tw, "\tmass\t%.6e kg\n", *b.Mass)
	}
	if b.Radius != nil {
		fmt.Fprintf(tw, "\tmean radius\t%.6g Mm\n", *b.Radius)
	}
	if b.Albedo != nil {
		fmt.Fprintf(tw, "\talbedo\t%.3g\n", *b.Albedo)
	}
	if b.Magnitude != nil {
		fmt.Fprintf(tw, "\tabs magnitude\t%.3g\n", *b.Magnitude)
	}
	if b.RotationPeriod != nil {
		fmt.Fprintf(tw, "\trotation period\t%.6g d\n", *b.RotationPeriod)
	}
	if b.SpecTholen != "" {
		fmt.Fprintf(tw, "\tTholen class\t%s\n", b.SpecTholen)
	}
	if b.SpecSMASSII != "" {
		fmt.Fprintf(tw, "\tSMASSII class\t%s\n", b.SpecSMASSII)
	}
	tw.Flush()

	for _, el := range b.OscElements {
		fmt.Fprintf(w, "elements %s around %s\n", calendar(el.Epoch), el.RefID)
		tw = tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "\te\t%.8g\n", el.Eccentricity)
		fmt.Fprintf(tw, "\ta\t%.8g Mm\n", el.SemiMajorAxis)
		fmt.Fprintf(tw, "\ti\t%.2d\n", sexa.FmtAngle(el.Inclination))
		fmt.Fprintf(tw, "\tΩ\t%.2d\n", sexa.FmtAngle(el.Node))
		fmt.Fprintf(tw, "\tω\t%.2d\n", sexa.FmtAngle(el.ArgPeriapsis))
		fmt.Fprintf(tw, "\tM\t%.2d\n", sexa.FmtAngle(el.MeanAnomaly))
		fmt.Fprintf(tw, "\tperiod\t%.8g d\n", el.Period)
		tw.Flush()
	}
	for _, sv := range b.StateVectors {
		fmt.Fprintf(w, "state %s\n", calendar(sv.Epoch))
		fmt.Fprintf(w, "\tpos  %.9e %.9e %.9e Mm\n",
			sv.Pos.X, sv.Pos.Y, sv.Pos.Z)
		fmt.Fprintf(w, "\tvel  %.9e %.9e %.9e Mm/s\n",
			sv.Vel.X, sv.Vel.Y, sv.Vel.Z)
	}
}

// calendar renders a JD as its Gregorian date plus the JD itself.
func calendar(jd float64) string {
	y, m, d := julian.JDToCalendar(jd)
	return fmt.Sprintf("%d-%02d-%05.2f (JD %.3f)", y, m, d, jd)
}
