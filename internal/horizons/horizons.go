// Package horizons extracts osculating element sets and state vectors
// from JPL Horizons ephemeris text dumps.
//
// An extract file is the captured text of one Horizons session for one
// target body: a free-form header naming the target and center and the
// output type, then the ephemeris payload between the $$SOE and $$EOE
// markers.  Element output is a sequence of labeled-field entries, one
// per epoch; vector output is CSV rows.  Everything is pulled out with
// regular expressions because the surrounding text varies between
// Horizons versions and body types.
//
// Parsed quantities are converted to catalog units on the way out:
// AU to Mm, degrees to radians, km to Mm.
package horizons

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/sscat/internal/catalog"
)

var (
	targetRe = regexp.MustCompile(`Target body name: ([^;]+?) \((\d+)\)`)
	centerRe = regexp.MustCompile(`Center body name: ([^;]+?) \((\d+)\)`)
	radiusRe = regexp.MustCompile(`[R,r]adius[ \t\(\)IAU,]+km[ \t\)=]+([\d.x ]+)`)
	outputRe = regexp.MustCompile(`Output type\s+:(.*)`)
	soeRe    = regexp.MustCompile(`\$\$SOE|\$\$EOE`)

	// every payload entry, element or vector, opens with the epoch as
	// a Julian date followed by its calendar rendering
	entryRe = regexp.MustCompile(`([\d.]+)[ =,]+A\.D\. (\d{4})-([A-Za-z]{3})-([\d.]+)`)

	eccRe       = regexp.MustCompile(` EC=[\s]*([\d\-+eE.]+)`)
	periDistRe  = regexp.MustCompile(` QR=[\s]*([\d\-+eE.]+)`)
	inclRe      = regexp.MustCompile(` IN=[\s]*([\d\-+eE.]+)`)
	nodeRe      = regexp.MustCompile(` OM=[\s]*([\d\-+eE.]+)`)
	argPeriRe   = regexp.MustCompile(` W =[\s]*([\d\-+eE.]+)`)
	timePeriRe  = regexp.MustCompile(` Tp=[\s]*([\d\-+eE.]+)`)
	meanMotRe   = regexp.MustCompile(` N =[\s]*([\d\-+eE.]+)`)
	meanAnomRe  = regexp.MustCompile(` MA=[\s]*([\d\-+eE.]+)`)
	trueAnomRe  = regexp.MustCompile(` TA=[\s]*([\d\-+eE.]+)`)
	smaRe       = regexp.MustCompile(` A =[\s]*([\d\-+eE.]+)`)
	apoDistRe   = regexp.MustCompile(` AD=[\s]*([\d\-+eE.]+)`)
	sidPeriodRe = regexp.MustCompile(` PR=[\s]*([\d\-+eE.]+)`)
)

var months = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// Extract is the parsed content of one Horizons ephemeris file.
// Exactly one of Elements and StateVectors is populated, depending on
// the file's output type.
type Extract struct {
	ID, Name       string
	RefID, RefName string
	Radius         float64 // Mm, mean of the published radii; 0 if absent

	Elements     []catalog.Elements
	StateVectors []catalog.StateVector
}

// Parse parses the text of one Horizons extract file.
func Parse(data string) (*Extract, error) {
	x := &Extract{}

	m := targetRe.FindStringSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("horizons: no target body header")
	}
	x.Name, x.ID = m[1], m[2]
	if m = centerRe.FindStringSubmatch(data); m == nil {
		return nil, fmt.Errorf("horizons: no center body header")
	}
	x.RefName, x.RefID = m[1], m[2]

	// mean radius.  triaxial bodies publish "a x b x c"; average them.
	// km in the header, Mm in the catalog.
	if m = radiusRe.FindStringSubmatch(data); m != nil {
		if r, ok := meanRadius(m[1]); ok {
			x.Radius = r / 1000
		}
	}

	m = outputRe.FindStringSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("horizons: no output type header")
	}
	outputType := m[1]

	// clip to the payload: text outside $$SOE/$$EOE can contain
	// anything, including strings that trip the entry regexes
	parts := soeRe.Split(data, 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("horizons: no $$SOE payload")
	}
	payload := parts[1]

	var err error
	switch {
	case strings.Contains(outputType, "osculating elements"):
		x.Elements, err = parseElements(payload, x.RefID)
	case strings.Contains(outputType, "cartesian states"):
		x.StateVectors, err = parseVectors(payload)
	default:
		err = fmt.Errorf("horizons: unsupported output type %q", strings.TrimSpace(outputType))
	}
	if err != nil {
		return nil, err
	}
	return x, nil
}

func meanRadius(s string) (float64, bool) {
	var sum float64
	var n int
	for _, part := range strings.Split(s, "x") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// entries slices the payload into per-epoch chunks, each beginning at
// an epoch header match.
func entries(payload string) (chunks []string, heads [][]string) {
	idx := entryRe.FindAllStringSubmatchIndex(payload, -1)
	for i, loc := range idx {
		end := len(payload)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		chunks = append(chunks, payload[loc[0]:end])
		head := make([]string, 0, 4)
		for g := 1; g <= 4; g++ {
			head = append(head, payload[loc[2*g]:loc[2*g+1]])
		}
		heads = append(heads, head)
	}
	return
}

func parseElements(payload, refID string) ([]catalog.Elements, error) {
	chunks, heads := entries(payload)
	els := make([]catalog.Elements, 0, len(chunks))
	for i, chunk := range chunks {
		epoch, err := strconv.ParseFloat(heads[i][0], 64)
		if err != nil {
			return nil, fmt.Errorf("horizons: bad epoch %q: %w", heads[i][0], err)
		}
		if err = checkCalendar(epoch, heads[i][1], heads[i][2], heads[i][3]); err != nil {
			return nil, err
		}
		el := catalog.Elements{Epoch: epoch, RefID: refID}
		fields := []struct {
			re    *regexp.Regexp
			name  string
			scale float64 // multiplier into catalog units; 0 = degrees
			dst   interface{}
		}{
			{eccRe, "EC", 1, &el.Eccentricity},
			{periDistRe, "QR", catalog.AuMm, &el.PeriapsisDistance},
			{inclRe, "IN", 0, &el.Inclination},
			{nodeRe, "OM", 0, &el.Node},
			{argPeriRe, "W", 0, &el.ArgPeriapsis},
			{timePeriRe, "Tp", 1, &el.TimeOfPeriapsis},
			{meanMotRe, "N", 0, &el.MeanMotion},
			{meanAnomRe, "MA", 0, &el.MeanAnomaly},
			{trueAnomRe, "TA", 0, &el.TrueAnomaly},
			{smaRe, "A", catalog.AuMm, &el.SemiMajorAxis},
			{apoDistRe, "AD", catalog.AuMm, &el.ApoapsisDistance},
			{sidPeriodRe, "PR", 1, &el.Period},
		}
		for _, f := range fields {
			m := f.re.FindStringSubmatch(chunk)
			if m == nil {
				return nil, fmt.Errorf("horizons: entry at JD %v missing field %s", epoch, f.name)
			}
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, fmt.Errorf("horizons: bad %s value %q: %w", f.name, m[1], err)
			}
			switch dst := f.dst.(type) {
			case *float64:
				*dst = v * f.scale
			case *unit.Angle:
				*dst = unit.AngleFromDeg(v)
			}
		}
		els = append(els, el)
	}
	return els, nil
}

// checkCalendar verifies that the calendar date printed next to an
// epoch agrees with the Julian date, catching truncated or corrupted
// entry headers.  Calendar dates with a time-of-day part ("01 12:00")
// rather than a day fraction are not checked.
func checkCalendar(jd float64, year, mon, day string) error {
	mn, ok := months[mon]
	if !ok {
		return fmt.Errorf("horizons: unknown month %q at JD %v", mon, jd)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return fmt.Errorf("horizons: bad year %q at JD %v", year, jd)
	}
	d, err := strconv.ParseFloat(day, 64)
	if err != nil || !strings.Contains(day, ".") {
		// day-of-month only; the entry's time of day is elsewhere
		return nil
	}
	if cal := julian.CalendarGregorianToJD(y, mn, d); abs(cal-jd) > 1e-6 {
		return fmt.Errorf("horizons: calendar date %s-%s-%s is JD %v, header says %v",
			year, mon, day, cal, jd)
	}
	return nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// parseVectors parses CSV vector entries.  Each row carries the epoch,
// its calendar rendering, then position and velocity components in km
// and km/s, scaled here to Mm and Mm/s.
func parseVectors(payload string) ([]catalog.StateVector, error) {
	chunks, heads := entries(payload)
	vecs := make([]catalog.StateVector, 0, len(chunks))
	for i, chunk := range chunks {
		epoch, err := strconv.ParseFloat(heads[i][0], 64)
		if err != nil {
			return nil, fmt.Errorf("horizons: bad epoch %q: %w", heads[i][0], err)
		}
		var comps []float64
		for _, field := range strings.Split(chunk, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue // epoch echo, calendar date
			}
			comps = append(comps, v)
		}
		// first numeric field is the epoch echo; the last six are
		// x y z vx vy vz
		if len(comps) < 7 {
			return nil, fmt.Errorf("horizons: vector entry at JD %v has %d numeric fields, want 7",
				epoch, len(comps))
		}
		c := comps[len(comps)-6:]
		var sv catalog.StateVector
		sv.Epoch = epoch
		sv.Pos.X, sv.Pos.Y, sv.Pos.Z = c[0]/1000, c[1]/1000, c[2]/1000
		sv.Vel.X, sv.Vel.Y, sv.Vel.Z = c[3]/1000, c[4]/1000, c[5]/1000
		vecs = append(vecs, sv)
	}
	return vecs, nil
}

// Apply folds the extract into the catalog: the body is created on
// first mention, identity fields and radius refresh, and the parsed
// batch merges into the matching series.
func (x *Extract) Apply(c *catalog.Catalog) error {
	b, err := c.Ensure(x.ID)
	if err != nil {
		return err
	}
	b.Name = x.Name
	if b.Meta == nil {
		b.Meta = make(map[string]string)
	}
	if x.Radius > 0 {
		b.Radius = catalog.Float(x.Radius)
	}
	b.OscElements = b.OscElements.Merge(x.Elements)
	b.StateVectors = b.StateVectors.Merge(x.StateVectors)
	return nil
}
