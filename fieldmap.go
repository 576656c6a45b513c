package axionfield

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FieldMap exposes the transverse magnetic field along a pre-set parametric
// track through the field volume.
//
// TrackLength returns the track length in mm; a value <= 0 signals that no
// track has been configured, which makes the field-map integration
// unavailable. FieldAt returns the transverse field component in T at the
// given arclength in mm from the track origin.
type FieldMap interface {
	TrackLength() float64
	FieldAt(arclength float64) float64
}

// UniformFieldMap is a constant transverse field over a straight track.
// Useful for cross-checks against the closed-form probability.
type UniformFieldMap struct {
	Bmag   float64 // T
	Length float64 // mm
}

func (m UniformFieldMap) TrackLength() float64      { return m.Length }
func (m UniformFieldMap) FieldAt(_ float64) float64 { return m.Bmag }

// ProfileFieldMap interpolates a transverse field profile sampled at a fixed
// step along the track.
type ProfileFieldMap struct {
	samples []float64 // T
	deltaL  float64   // mm
}

// NewProfileFieldMap builds a field map from uniformly spaced samples.
// Fewer than two samples yield a zero-length track.
func NewProfileFieldMap(samples []float64, deltaL float64) *ProfileFieldMap {
	return &ProfileFieldMap{samples: append([]float64(nil), samples...), deltaL: deltaL}
}

func (m *ProfileFieldMap) TrackLength() float64 {
	if len(m.samples) < 2 {
		return 0
	}
	return float64(len(m.samples)-1) * m.deltaL
}

// FieldAt interpolates linearly between samples. Arclengths outside the
// track evaluate to zero field.
func (m *ProfileFieldMap) FieldAt(arclength float64) float64 {
	length := m.TrackLength()
	if length <= 0 || arclength < 0 || arclength > length {
		return 0
	}
	pos := arclength / m.deltaL
	i := int(pos)
	if i >= len(m.samples)-1 {
		return m.samples[len(m.samples)-1]
	}
	frac := pos - float64(i)
	return m.samples[i]*(1-frac) + m.samples[i+1]*frac
}

// Profile returns a copy of the samples, in the shape expected by
// Field.ProbabilityProfile.
func (m *ProfileFieldMap) Profile() []float64 {
	return append([]float64(nil), m.samples...)
}

// Vector3 is a point or direction in the field volume frame, in mm.
type Vector3 struct{ X, Y, Z float64 }

func (v Vector3) Add(w Vector3) Vector3   { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vector3) Sub(w Vector3) Vector3   { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(w Vector3) float64   { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
func (v Vector3) Norm() float64           { return math.Sqrt(v.Dot(v)) }

// Unit returns the normalized direction; the zero vector stays zero.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if n == 0 {
		return Vector3{}
	}
	return v.Scale(1 / n)
}

// GridFieldMap is a magnetic field map defined on a regular 3D mesh with
// trilinear interpolation between nodes. Positions outside the meshed volume
// evaluate to zero field.
//
// Before any integration the parametric track must be configured with
// SetTrack; until then TrackLength reports zero and the field-map
// probability strategy is unavailable.
type GridFieldMap struct {
	origin     Vector3 // lowest corner of the mesh, mm
	spacing    float64 // node spacing, mm
	nx, ny, nz int     // node counts per axis
	nodes      []Vector3

	trackOrigin Vector3
	trackDir    Vector3 // unit vector
	trackLength float64 // mm
}

// NewGridFieldMap allocates a mesh of nx*ny*nz nodes with the given spacing
// in mm. All nodes start at zero field.
func NewGridFieldMap(origin Vector3, spacing float64, nx, ny, nz int) *GridFieldMap {
	return &GridFieldMap{
		origin:  origin,
		spacing: spacing,
		nx:      nx, ny: ny, nz: nz,
		nodes: make([]Vector3, nx*ny*nz),
	}
}

// SetNode assigns the field vector (T) at mesh node (i, j, k).
func (m *GridFieldMap) SetNode(i, j, k int, b Vector3) {
	m.nodes[(i*m.ny+j)*m.nz+k] = b
}

func (m *GridFieldMap) node(i, j, k int) Vector3 {
	return m.nodes[(i*m.ny+j)*m.nz+k]
}

// FieldVector returns the trilinearly interpolated field vector at a
// position in the volume frame, or the zero vector outside the mesh.
func (m *GridFieldMap) FieldVector(p Vector3) Vector3 {
	rel := p.Sub(m.origin).Scale(1 / m.spacing)
	if rel.X < 0 || rel.Y < 0 || rel.Z < 0 {
		return Vector3{}
	}
	i, j, k := int(rel.X), int(rel.Y), int(rel.Z)
	if i >= m.nx-1 || j >= m.ny-1 || k >= m.nz-1 {
		// The topmost faces still belong to the volume.
		if rel.X > float64(m.nx-1) || rel.Y > float64(m.ny-1) || rel.Z > float64(m.nz-1) {
			return Vector3{}
		}
		i = min(i, m.nx-2)
		j = min(j, m.ny-2)
		k = min(k, m.nz-2)
	}
	fx, fy, fz := rel.X-float64(i), rel.Y-float64(j), rel.Z-float64(k)

	var sum Vector3
	for di := 0; di <= 1; di++ {
		for dj := 0; dj <= 1; dj++ {
			for dk := 0; dk <= 1; dk++ {
				w := weight1(fx, di) * weight1(fy, dj) * weight1(fz, dk)
				sum = sum.Add(m.node(i+di, j+dj, k+dk).Scale(w))
			}
		}
	}
	return sum
}

func weight1(f float64, d int) float64 {
	if d == 0 {
		return 1 - f
	}
	return f
}

// SetTrack configures the parametric track entering the volume at origin and
// pointing along direction. The track length is the distance from origin to
// the point where the track leaves the meshed volume; an origin outside the
// volume or a track that never crosses it yields a zero length.
func (m *GridFieldMap) SetTrack(origin, direction Vector3) {
	m.trackOrigin = origin
	m.trackDir = direction.Unit()
	m.trackLength = m.exitDistance(origin, m.trackDir)
}

// exitDistance clips the ray against the mesh bounding box (slab method) and
// returns the distance from origin to the exit face, or 0 when the ray
// misses the box or starts outside it.
func (m *GridFieldMap) exitDistance(origin, dir Vector3) float64 {
	lo := m.origin
	hi := m.origin.Add(Vector3{
		float64(m.nx-1) * m.spacing,
		float64(m.ny-1) * m.spacing,
		float64(m.nz-1) * m.spacing,
	})

	tmin, tmax := math.Inf(-1), math.Inf(1)
	for _, axis := range [3][3]float64{
		{origin.X, dir.X, 0}, {origin.Y, dir.Y, 1}, {origin.Z, dir.Z, 2},
	} {
		o, d, i := axis[0], axis[1], int(axis[2])
		loA := [3]float64{lo.X, lo.Y, lo.Z}[i]
		hiA := [3]float64{hi.X, hi.Y, hi.Z}[i]
		if d == 0 {
			if o < loA || o > hiA {
				return 0
			}
			continue
		}
		t0 := (loA - o) / d
		t1 := (hiA - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
	}
	if tmax < tmin || tmax <= 0 || tmin > 1e-9 {
		return 0
	}
	return tmax
}

// TrackLength returns the configured track length in mm, zero until
// SetTrack has been called with a track crossing the volume.
func (m *GridFieldMap) TrackLength() float64 { return m.trackLength }

// FieldAt returns the field component transverse to the track direction at
// the given arclength from the track origin.
func (m *GridFieldMap) FieldAt(arclength float64) float64 {
	p := m.trackOrigin.Add(m.trackDir.Scale(arclength))
	b := m.FieldVector(p)
	parallel := m.trackDir.Scale(b.Dot(m.trackDir))
	return b.Sub(parallel).Norm()
}

// TransversalProfile samples the transverse field component at fixed steps
// of deltaL mm along the straight segment from one point to another. The
// result feeds directly into Field.ProbabilityProfile.
func (m *GridFieldMap) TransversalProfile(from, to Vector3, deltaL float64) []float64 {
	diff := to.Sub(from)
	length := diff.Norm()
	if length == 0 || deltaL <= 0 {
		return nil
	}
	dir := diff.Unit()
	n := int(length/deltaL) + 1
	profile := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		p := from.Add(dir.Scale(float64(i) * deltaL))
		b := m.FieldVector(p)
		parallel := dir.Scale(b.Dot(dir))
		profile = append(profile, b.Sub(parallel).Norm())
	}
	return profile
}

// LoadGridFieldMap reads a whitespace-separated mesh file with one node per
// line: x y z Bx By Bz (mm and T). Nodes must form a regular grid with a
// single spacing; they may appear in any order.
func LoadGridFieldMap(path string) (*GridFieldMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening field map")
	}
	defer f.Close()

	type nodeRec struct {
		p Vector3
		b Vector3
	}
	var recs []nodeRec
	xs := map[float64]bool{}
	ys := map[float64]bool{}
	zs := map[float64]bool{}

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 6 {
			return nil, errors.Errorf("parsing field map %s:%d: want 6 columns, got %d", path, line, len(fields))
		}
		var vals [6]float64
		for i, s := range fields {
			vals[i], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing field map %s:%d", path, line)
			}
		}
		rec := nodeRec{
			p: Vector3{vals[0], vals[1], vals[2]},
			b: Vector3{vals[3], vals[4], vals[5]},
		}
		recs = append(recs, rec)
		xs[rec.p.X] = true
		ys[rec.p.Y] = true
		zs[rec.p.Z] = true
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading field map")
	}
	if len(recs) < 8 {
		return nil, errors.Errorf("field map %s: %d nodes, need at least a 2x2x2 mesh", path, len(recs))
	}

	axisX := sortedKeys(xs)
	axisY := sortedKeys(ys)
	axisZ := sortedKeys(zs)
	spacing, err := meshSpacing(axisX, axisY, axisZ)
	if err != nil {
		return nil, errors.Wrapf(err, "field map %s", path)
	}

	origin := Vector3{axisX[0], axisY[0], axisZ[0]}
	m := NewGridFieldMap(origin, spacing, len(axisX), len(axisY), len(axisZ))
	for _, rec := range recs {
		i := int(math.Round((rec.p.X - origin.X) / spacing))
		j := int(math.Round((rec.p.Y - origin.Y) / spacing))
		k := int(math.Round((rec.p.Z - origin.Z) / spacing))
		if i < 0 || i >= m.nx || j < 0 || j >= m.ny || k < 0 || k >= m.nz {
			return nil, errors.Errorf("field map %s: node (%g,%g,%g) off the mesh", path, rec.p.X, rec.p.Y, rec.p.Z)
		}
		m.SetNode(i, j, k, rec.b)
	}
	return m, nil
}

func sortedKeys(set map[float64]bool) []float64 {
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

func meshSpacing(axes ...[]float64) (float64, error) {
	spacing := 0.0
	for _, axis := range axes {
		for i := 1; i < len(axis); i++ {
			d := axis[i] - axis[i-1]
			if spacing == 0 {
				spacing = d
				continue
			}
			if math.Abs(d-spacing) > 1e-6*spacing {
				return 0, fmt.Errorf("irregular node spacing: %g vs %g", d, spacing)
			}
		}
	}
	if spacing <= 0 {
		return 0, fmt.Errorf("mesh has no extent")
	}
	return spacing, nil
}
