package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/uavpath/terrain"
)

// Binary snapshot errors.
var (
	ErrInvalidMagic       = errors.New("export: invalid snapshot magic: expected 'UAVP'")
	ErrUnsupportedVersion = errors.New("export: unsupported snapshot version")
	ErrTruncated          = errors.New("export: truncated snapshot")
	ErrCorrupt            = errors.New("export: corrupt snapshot")
)

const (
	snapshotMagic = "UAVP"
	versionMajor  = 1
	versionMinor  = 0

	// maxDimension bounds width and height read from a snapshot.
	maxDimension = 1024
)

// Snapshot is a self-contained grid plus mission endpoints and path.
type Snapshot struct {
	Grid  *terrain.Grid
	Start terrain.Point
	Goal  terrain.Point
	Path  []terrain.Point
}

// Layout (little-endian):
//
//	header  magic[4] major u8 minor u8 width u32 height u32 start i32×2 goal i32×2
//	cells   width×height × {kind u8, elevation f64, wind f64}, row-major
//	path    count u32, count × {x i32, y i32}
type binHeader struct {
	Magic        [4]byte
	Major, Minor uint8
	Width        uint32
	Height       uint32
	StartX       int32
	StartY       int32
	GoalX        int32
	GoalY        int32
}

type binCell struct {
	Kind      uint8
	Elevation float64
	Wind      float64
}

type binPoint struct {
	X, Y int32
}

// WriteBinary encodes s to w.
func WriteBinary(w io.Writer, s *Snapshot) error {
	g := s.Grid
	bw := bufio.NewWriter(w)

	h := binHeader{
		Major:  versionMajor,
		Minor:  versionMinor,
		Width:  uint32(g.Width()),
		Height: uint32(g.Height()),
		StartX: int32(s.Start.X),
		StartY: int32(s.Start.Y),
		GoalX:  int32(s.Goal.X),
		GoalY:  int32(s.Goal.Y),
	}
	copy(h.Magic[:], snapshotMagic)
	if err := binary.Write(bw, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}

	cells := make([]binCell, 0, g.Size())
	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		cells = append(cells, binCell{Kind: uint8(g.Kind(p)), Elevation: g.Elevation(p), Wind: g.Wind(p)})
	}
	if err := binary.Write(bw, binary.LittleEndian, cells); err != nil {
		return fmt.Errorf("export: writing cells: %w", err)
	}

	pts := make([]binPoint, len(s.Path))
	for i, p := range s.Path {
		pts[i] = binPoint{X: int32(p.X), Y: int32(p.Y)}
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(pts))); err != nil {
		return fmt.Errorf("export: writing path length: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, pts); err != nil {
		return fmt.Errorf("export: writing path: %w", err)
	}

	return bw.Flush()
}

// ReadBinary decodes a snapshot written by WriteBinary.
func ReadBinary(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	var h binHeader
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncated)
	}
	if string(h.Magic[:]) != snapshotMagic {
		return nil, ErrInvalidMagic
	}
	if h.Major != versionMajor {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, h.Major, h.Minor)
	}
	if h.Width == 0 || h.Height == 0 || h.Width > maxDimension || h.Height > maxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrCorrupt, h.Width, h.Height)
	}

	// Memory grows with the rows actually present; the grid is built last.
	w, ht := int(h.Width), int(h.Height)
	row := make([]binCell, w)
	cells := make([]binCell, 0, w)
	for y := 0; y < ht; y++ {
		if err := binary.Read(br, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("%w: reading cells of row %d", ErrTruncated, y)
		}
		cells = append(cells, row...)
	}

	g, err := terrain.NewGrid(w, ht)
	if err != nil {
		return nil, err
	}
	for i, c := range cells {
		if terrain.Kind(c.Kind) > terrain.End {
			return nil, fmt.Errorf("%w: cell %d has kind %d", ErrCorrupt, i, c.Kind)
		}
		p := g.Coordinate(i)
		g.SetKind(p, terrain.Kind(c.Kind))
		g.SetElevation(p, c.Elevation)
		g.SetWind(p, c.Wind)
	}

	var n uint32
	if err = binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: reading path length", ErrTruncated)
	}
	// A greedy walk may revisit cells, but never exceeds Size()+1 points.
	if int(n) > g.Size()+1 {
		return nil, fmt.Errorf("%w: path of %d points on %d cells", ErrCorrupt, n, g.Size())
	}
	pts := make([]binPoint, n)
	if err = binary.Read(br, binary.LittleEndian, pts); err != nil {
		return nil, fmt.Errorf("%w: reading path", ErrTruncated)
	}

	s := &Snapshot{
		Grid:  g,
		Start: terrain.Pt(int(h.StartX), int(h.StartY)),
		Goal:  terrain.Pt(int(h.GoalX), int(h.GoalY)),
	}
	if n > 0 {
		s.Path = make([]terrain.Point, n)
		for i, p := range pts {
			s.Path[i] = terrain.Pt(int(p.X), int(p.Y))
		}
	}
	return s, nil
}
