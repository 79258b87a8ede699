package world

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewGrid_RejectsRaggedRows(t *testing.T) {
	if _, err := NewGrid([]string{"###", "# "}); err == nil {
		t.Fatal("expected error for ragged rows")
	}
	if _, err := NewGrid(nil); err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestGrid_CellAndBounds(t *testing.T) {
	g := MustGrid(
		"#-#",
		"| |",
		"#+#",
	)

	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", g.Rows(), g.Cols())
	}
	if got := g.Cell(2, 1); got != Junction {
		t.Errorf("expected junction at (2,1), got %q", got)
	}
	if got := g.Cell(-1, 0); got != Empty {
		t.Errorf("out of bounds cell should read Empty, got %q", got)
	}

	tests := []struct {
		name   string
		x, y   float64
		row    int
		col    int
		inside bool
	}{
		{"center", 15, 15, 0, 0, true},
		{"second row", 45, 35, 1, 1, true},
		{"negative", -1, 10, 0, 0, false},
		{"past edge", 95, 10, 0, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := g.CellAt(tt.x, tt.y, 30)
			if ok != tt.inside {
				t.Fatalf("CellAt(%v,%v) ok=%v, want %v", tt.x, tt.y, ok, tt.inside)
			}
			if ok && (row != tt.row || col != tt.col) {
				t.Errorf("CellAt(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
			}
		})
	}

	if !g.Walkable(45, 45, 30) {
		t.Error("center cell should be walkable")
	}
	if g.Walkable(15, 15, 30) {
		t.Error("corner wall should not be walkable")
	}
}

func TestParseLevel_StripsMarkers(t *testing.T) {
	src := strings.Join([]string{
		"#####",
		"#@ O#",
		"# A",
		"#####",
		"",
	}, "\n")

	lvl, err := ParseLevel(strings.NewReader(src), DefaultMarkers(), 64)
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}

	if lvl.Grid.Rows() != 4 || lvl.Grid.Cols() != 5 {
		t.Fatalf("expected 4x5 grid, got %dx%d", lvl.Grid.Rows(), lvl.Grid.Cols())
	}
	// short row is padded with empty cells
	if got := lvl.Grid.Cell(2, 4); got != Empty {
		t.Errorf("expected padding at (2,4), got %q", got)
	}
	if !lvl.HasStart || lvl.Start != (Vec2{96, 96}) {
		t.Errorf("unexpected start %+v (has=%v)", lvl.Start, lvl.HasStart)
	}
	if got := lvl.Grid.Cell(1, 1); got != Empty {
		t.Errorf("start marker should be stripped, got %q", got)
	}

	if len(lvl.Spawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(lvl.Spawns))
	}
	key, spike := lvl.Spawns[0], lvl.Spawns[1]
	if key.Marker.Texture != "key" || key.Pos != (Vec2{224, 96}) || key.Marker.Damaging {
		t.Errorf("unexpected key spawn %+v", key)
	}
	if spike.Marker.Texture != "spike" || !spike.Marker.Damaging || spike.Marker.Scale != 12 {
		t.Errorf("unexpected spike spawn %+v", spike)
	}
	for row := 0; row < lvl.Grid.Rows(); row++ {
		for col := 0; col < lvl.Grid.Cols(); col++ {
			if c := lvl.Grid.Cell(row, col); c == 'O' || c == 'A' {
				t.Errorf("marker %q left in grid at (%d,%d)", c, row, col)
			}
		}
	}
}

func TestParseLevel_DefaultStartAndErrors(t *testing.T) {
	lvl, err := ParseLevel(strings.NewReader("###\n# #\n###\n"), nil, 30)
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	if lvl.HasStart || lvl.Start != (Vec2{45, 45}) {
		t.Errorf("expected default start (45,45), got %+v", lvl.Start)
	}

	if _, err := ParseLevel(strings.NewReader("\n\n"), nil, 30); err == nil {
		t.Error("expected error for blank level")
	}
	if _, err := ParseLevel(strings.NewReader("#@@#\n"), nil, 30); err == nil {
		t.Error("expected error for duplicate start marker")
	}
}

func TestLoadLevel_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte("+-+\n|@|\n+-+\n"), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}

	lvl, err := LoadLevel(path, DefaultMarkers(), 10)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	if lvl.Grid.String() != "+-+\n| |\n+-+\n" {
		t.Errorf("unexpected grid:\n%s", lvl.Grid.String())
	}

	if _, err := LoadLevel(filepath.Join(t.TempDir(), "missing.txt"), nil, 10); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadLevel_ShippedMaze(t *testing.T) {
	lvl, err := LoadLevel(filepath.Join("..", "..", "assets", "levels", "maze.txt"), DefaultMarkers(), 64)
	if err != nil {
		t.Fatalf("load shipped maze: %v", err)
	}
	if !lvl.HasStart {
		t.Error("shipped maze has no start marker")
	}

	counts := map[rune]int{}
	for _, sp := range lvl.Spawns {
		counts[sp.Symbol]++
	}
	if counts['O'] != 5 || counts['A'] != 4 {
		t.Errorf("spawns = %v, want 5 keys and 4 spikes", counts)
	}

	g := lvl.Grid
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			edge := row == 0 || col == 0 || row == g.Rows()-1 || col == g.Cols()-1
			if edge && g.Cell(row, col) == Empty {
				t.Fatalf("border cell (%d,%d) is open", row, col)
			}
		}
	}
	if !g.Walkable(lvl.Start.X, lvl.Start.Y, 64) {
		t.Error("start cell is not walkable")
	}
}

func TestTryMove_SlidesAlongWalls(t *testing.T) {
	g := MustGrid(
		"#####",
		"#   #",
		"#   #",
		"#####",
	)
	const cell = 10.0
	start := Vec2{15, 15}

	// free move
	got := TryMove(g, start, Vec2{5, 5}, 2, cell)
	if got != (Vec2{20, 20}) {
		t.Errorf("expected free move to (20,20), got %+v", got)
	}

	// pushing into the north wall keeps X motion only
	got = TryMove(g, start, Vec2{4, -10}, 2, cell)
	if got.Y != start.Y || math.Abs(got.X-19) > 1e-9 {
		t.Errorf("expected slide to (19,15), got %+v", got)
	}
}

func TestPoseVectors(t *testing.T) {
	p := Pose{Angle: 0, FOV: math.Pi / 3}
	f, r := p.Forward(), p.Right()
	if math.Abs(f.X-1) > 1e-12 || math.Abs(f.Y) > 1e-12 {
		t.Errorf("forward = %+v", f)
	}
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("right = %+v", r)
	}
}
