/*
Command sscat assembles a solar system body catalog from JPL data
products and solves body states from it.

Contents

  Program overview
  Command line usage
  Database format
  Source file formats
  Derivation outline


Program overview

Input is a directory of captured JPL data products: Horizons ephemeris
extracts, a small-body database query result, and the built-in
satellite physical parameter table.  Output is a database of JSON
files, one per body group, holding for each body its physical
parameters, its osculating orbital element sets, and a Cartesian state
vector at the J2000 epoch in the solar system barycentric frame.

Sample run, from a directory holding Horizons extracts under eph/ and
an SBDB query under sbdb.csv:

  sscat build --horizons 'eph/*.txt' --smallbody sbdb.csv

then

  sscat show 299

prints the assembled Venus entry and

  sscat solve 299 --jd 2451545

prints its solved barycentric state at J2000.


Command line usage

  sscat build [--horizons GLOB]... [--smallbody FILE]
              [--asteroids N] [--comets N]
  sscat show <id|name>
  sscat solve <id|name> [--jd JD]

Common flags:

  -d, --database DIR   database directory (default "database")
  -v, --verbose        debug-level logging
      --config FILE    config file (default .sscat.yaml)

Every flag can also be set in the config file or through the
environment with an SSCAT_ prefix, so SSCAT_DATABASE=... and
database: ... in .sscat.yaml mean the same as -d.

Build merges sources into whatever database already exists.  Sources
replace entries with matching keys and leave everything else alone, so
a build can be run incrementally as new extract files arrive.  Extract
files are merged in lexical file name order; when two files carry an
element set for the same body, epoch, and center, the lexically later
file wins.

The asteroid and comet limits bound how many small bodies are taken
from the SBDB file.  The file's row order decides which bodies the
limits keep, so sort the query by whatever matters most.


Database format

The database directory holds one JSON file per body group:

  asteroids.json
  comets.json
  jovian_satellites.json
  saturnian_satellites.json
  other_satellites.json
  major_bodies.json
  artificial.json

Each file is a single object keyed by body id.  Numeric ids are
Horizons ids: 10 the Sun, 1 to 9 the planetary system barycenters,
n99 the planets, other three-digit ids their satellites, five-digit
ids provisional satellites.  Small bodies carry "a"- and "c"-prefixed
ids derived from their SBDB designations, asteroids and comets
respectively.  Keys are written in numeric order so database diffs
between builds are stable.

A body entry holds a name, type, optional physical parameters (mass in
kg, mean radius in Mm, geometric albedo, absolute magnitude, rotation
period in days), optional spectral classes, a list of osculating
element sets, and a list of state vectors.  Element sets are objects
with the epoch as a Julian date, the id of the reference center, and
the usual Keplerian quantities with angles in radians, lengths in Mm,
and the period in days.  State vectors are flat seven-number arrays:
epoch, position x y z in Mm, velocity x y z in Mm/s.

Absent physical parameters are omitted, not zeroed: a body with no
mass key has no measured mass, which downstream estimation treats
differently from a mass of zero.


Source file formats

A Horizons extract file is the captured text of one Horizons session
for one target body: the header lines naming the target, center,
output type, and published radii, then the ephemeris payload between
the $$SOE and $$EOE markers.  Element output is a sequence of
labeled-field entries, one per epoch; vector output is CSV rows.
Files produced by the Horizons telnet and web interfaces both parse.

The small-body file is a CSV result of an SBDB query requesting, in
order: the body id, name, Tholen and SMASSII spectral classes, GM,
diameter, H magnitude, albedo, rotation period, epoch, equinox, and
the heliocentric element columns.  Rows missing a required element
column are an error; rows missing physical parameters are fine.

The satellite physical parameter table is compiled into the program
from the published JPL satellite list and needs no input file.


Derivation outline

1.  Sources are merged in fixed stage order: Horizons extracts, the
small-body file, the satellite table, so that the higher-fidelity
source is applied last only where earlier stages left gaps.  Horizons
is authoritative; the satellite table never overwrites a mass Horizons
supplied, and a table mass diverging more than 20% from the Horizons
value is logged as a conflict.

2.  Missing radii are estimated photometrically from absolute
magnitude H and geometric albedo p as D(km) = 1329/sqrt(p) * 10^(-H/5).
Missing asteroid masses follow from the radius and a standard density
chosen by Tholen spectral class; comet masses use the standard nucleus
density, except for the few comets with directly determined masses.

3.  Each body with a solvable heliocentric element set gets a state
vector at the J2000 epoch.  The element set with epoch closest to
J2000 is selected, its mean anomaly is advanced to J2000, Kepler's
equation is solved by Newton's method, and the resulting perifocal
state is rotated into the ecliptic frame.  The heliocentric state is
then shifted into the solar system barycentric frame by the Sun's own
J2000 barycentric state.

4.  Identities are reconciled last.  The Sun's entry gets a degenerate
self-referential element set, marked with the reserved eccentricity 1,
so every body in the database carries elements.  Mercury and Venus,
which Horizons treats as coincident with their system barycenters,
are split into a barycenter entry carrying the orbital data and a
planet entry carrying the physical data, joined by a synthetic
around-barycenter element set.
*/
package main
