package mapio

import "github.com/katalvlaran/uavpath/terrain"

// Built-in map names accepted by Builtin.
const (
	SampleName  = "sample"
	ComplexName = "complex"
)

const sampleMap = `...........
..O.O.O....
...........
.O..^..O...
...........
...W.W.W...
...........
.O..^..O...
...........
..O.O.O....
...........
`

const complexMap = `..O.......O.......O..
.O..^^^^^..O.WWW.O...
O....^^^....W.W.W...O
.....^.^.....W.W.....
..O...^...O...W...O..
......^..............
..OOO.^.OOO.WWW.OOO..
......^..............
..O...^...O...W...O..
.....^.^.....W.W.....
O....^^^....W.W.W...O
.O..^^^^^..O.WWW.O...
..O.......O.......O..
`

// SampleMap returns a fresh 11×11 demonstration map with scattered obstacles,
// two hills and a band of wind.
func SampleMap() *terrain.Grid { return mustParse(sampleMap) }

// ComplexMap returns a fresh 21×13 symmetric map with hill ridges, wind
// clusters and obstacle walls.
func ComplexMap() *terrain.Grid { return mustParse(complexMap) }

// Builtin returns the built-in map with the given name.
func Builtin(name string) (*terrain.Grid, bool) {
	switch name {
	case SampleName:
		return SampleMap(), true
	case ComplexName:
		return ComplexMap(), true
	default:
		return nil, false
	}
}

func mustParse(text string) *terrain.Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}
