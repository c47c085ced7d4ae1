package trig

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UMDGeoVis/mttri/types"
)

// PTSFile is the parsed body shared by every input format (§6): n points
// of (x,y,z).
type PTSFile struct {
	Points []types.Point3
}

// SegFile is a .seg file: a PTSFile plus constraint segments for CDT
// refinement.
type SegFile struct {
	PTSFile
	Segments [][2]int
}

// TriFile is a .tri file: a PTSFile plus a full triangulation, for
// decimation.
type TriFile struct {
	PTSFile
	Triangles [][3]int
}

// CdtFile is a .cdt file: a TriFile plus constraint segments.
type CdtFile struct {
	TriFile
	Segments [][2]int
}

// ReadPTS parses a .pts file: `n` then n lines of `x y z`.
func ReadPTS(r io.Reader) (*PTSFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	n, err := readInt(sc)
	if err != nil {
		return nil, fmt.Errorf("mttri: reading point count: %w", err)
	}
	pts := make([]types.Point3, n)
	for i := 0; i < n; i++ {
		x, y, z, err := readXYZ(sc)
		if err != nil {
			return nil, fmt.Errorf("mttri: reading point %d: %w", i, err)
		}
		pts[i] = types.NewPoint3(x, y, z)
	}
	return &PTSFile{Points: pts}, nil
}

// ReadSeg parses a .seg file: a .pts body followed by `m` then m lines of
// `i j`.
func ReadSeg(r io.Reader) (*SegFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	pts, err := readPointsBody(sc)
	if err != nil {
		return nil, err
	}
	segs, err := readIndexPairs(sc)
	if err != nil {
		return nil, fmt.Errorf("mttri: reading segments: %w", err)
	}
	return &SegFile{PTSFile: PTSFile{Points: pts}, Segments: segs}, nil
}

// ReadTri parses a .tri file: a .pts body followed by `t` then t lines of
// `i j k`.
func ReadTri(r io.Reader) (*TriFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	pts, err := readPointsBody(sc)
	if err != nil {
		return nil, err
	}
	tris, err := readIndexTriples(sc)
	if err != nil {
		return nil, fmt.Errorf("mttri: reading triangles: %w", err)
	}
	return &TriFile{PTSFile: PTSFile{Points: pts}, Triangles: tris}, nil
}

// ReadCdt parses a .cdt file: a .tri body followed by `m` then m lines of
// `i j`.
func ReadCdt(r io.Reader) (*CdtFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	pts, err := readPointsBody(sc)
	if err != nil {
		return nil, err
	}
	tris, err := readIndexTriples(sc)
	if err != nil {
		return nil, fmt.Errorf("mttri: reading triangles: %w", err)
	}
	segs, err := readIndexPairs(sc)
	if err != nil {
		return nil, fmt.Errorf("mttri: reading constraints: %w", err)
	}
	return &CdtFile{TriFile: TriFile{PTSFile: PTSFile{Points: pts}, Triangles: tris}, Segments: segs}, nil
}

func readPointsBody(sc *bufio.Scanner) ([]types.Point3, error) {
	n, err := readInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: point count: %v", ErrMalformedFile, err)
	}
	pts := make([]types.Point3, n)
	for i := 0; i < n; i++ {
		x, y, z, err := readXYZ(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %v", ErrMalformedFile, i, err)
		}
		pts[i] = types.NewPoint3(x, y, z)
	}
	return pts, nil
}

func readIndexPairs(sc *bufio.Scanner) ([][2]int, error) {
	m, err := readInt(sc)
	if err != nil {
		return nil, err
	}
	out := make([][2]int, m)
	for i := 0; i < m; i++ {
		a, b, err := readIJ(sc)
		if err != nil {
			return nil, err
		}
		out[i] = [2]int{a, b}
	}
	return out, nil
}

func readIndexTriples(sc *bufio.Scanner) ([][3]int, error) {
	t, err := readInt(sc)
	if err != nil {
		return nil, err
	}
	out := make([][3]int, t)
	for i := 0; i < t; i++ {
		a, b, c, err := readIJK(sc)
		if err != nil {
			return nil, err
		}
		out[i] = [3]int{a, b, c}
	}
	return out, nil
}

func readInt(sc *bufio.Scanner) (int, error) {
	var v int
	if !nextToken(sc) {
		return 0, io.ErrUnexpectedEOF
	}
	if _, err := fmt.Sscan(sc.Text(), &v); err != nil {
		return 0, err
	}
	return v, nil
}

func readXYZ(sc *bufio.Scanner) (x, y, z float64, err error) {
	vals, err := nextFields(sc, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := fmt.Sscan(vals, &x, &y, &z); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

func readIJ(sc *bufio.Scanner) (i, j int, err error) {
	vals, err := nextFields(sc, 2)
	if err != nil {
		return 0, 0, err
	}
	if _, err := fmt.Sscan(vals, &i, &j); err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func readIJK(sc *bufio.Scanner) (i, j, k int, err error) {
	vals, err := nextFields(sc, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := fmt.Sscan(vals, &i, &j, &k); err != nil {
		return 0, 0, 0, err
	}
	return i, j, k, nil
}

// Uses a word scanner (ScanWords) so that a record's fields may be split
// across lines, matching "whitespace-separated numbers".
func init() {}

func nextToken(sc *bufio.Scanner) bool {
	sc.Split(bufio.ScanWords)
	return sc.Scan()
}

func nextFields(sc *bufio.Scanner, n int) (string, error) {
	sc.Split(bufio.ScanWords)
	out := ""
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return "", io.ErrUnexpectedEOF
		}
		if i > 0 {
			out += " "
		}
		out += sc.Text()
	}
	return out, nil
}

// WriteTri serializes the current triangulation, re-densifying vertex IDs to
// [0..nVrt) in BFS-from-seed-triangle order as §6 requires; triangles are
// listed in store order.
func (e *Engine) WriteTri(w io.Writer) error {
	pts, tris := e.bfsExport()
	return writeTriBody(w, pts, tris)
}

// WriteCdt is WriteTri plus the renumbered constraint list.
func (e *Engine) WriteCdt(w io.Writer) error {
	pts, tris := e.bfsExport()
	remap := e.bfsRemap()

	if err := writeTriBody(w, pts, tris); err != nil {
		return err
	}

	var segs [][2]int
	e.store.LiveEdges(func(ed *Edge) {
		if ed.Marks.Has(MarkConstrained) {
			segs = append(segs, [2]int{remap[ed.EV[0]], remap[ed.EV[1]]})
		}
	})
	if _, err := fmt.Fprintln(w, len(segs)); err != nil {
		return err
	}
	for _, s := range segs {
		if _, err := fmt.Fprintln(w, s[0], s[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeTriBody(w io.Writer, pts []types.Point3, tris [][3]int) error {
	if _, err := fmt.Fprintln(w, len(pts)); err != nil {
		return err
	}
	for _, p := range pts {
		if _, err := fmt.Fprintln(w, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, len(tris)); err != nil {
		return err
	}
	for _, t := range tris {
		if _, err := fmt.Fprintln(w, t[0], t[1], t[2]); err != nil {
			return err
		}
	}
	return nil
}

// bfsRemap renumbers live vertices to [0..nVrt) in breadth-first order
// from a seed triangle, per §6.
func (e *Engine) bfsRemap() map[VID]int {
	remap := map[VID]int{}
	var seed TID = NilTriangle
	e.store.LiveTriangles(func(t *Triangle) {
		if seed == NilTriangle {
			seed = t.ID
		}
	})
	if seed == NilTriangle {
		return remap
	}

	visitedT := map[TID]bool{seed: true}
	queue := []TID{seed}
	next := 0
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		tri := e.store.Triangle(t)
		for _, v := range tri.V {
			if _, ok := remap[v]; !ok {
				remap[v] = next
				next++
			}
		}
		for i := 0; i < 3; i++ {
			n := e.store.GetTT(t, i)
			if n != NilTriangle && !visitedT[n] {
				visitedT[n] = true
				queue = append(queue, n)
			}
		}
	}
	return remap
}

func (e *Engine) bfsExport() ([]types.Point3, [][3]int) {
	remap := e.bfsRemap()
	pts := make([]types.Point3, len(remap))
	for v, i := range remap {
		pts[i] = e.store.Pos(v)
	}

	var tris [][3]int
	e.store.LiveTriangles(func(t *Triangle) {
		tris = append(tris, [3]int{remap[t.V[0]], remap[t.V[1]], remap[t.V[2]]})
	})
	return pts, tris
}
