package array

import (
	"math"
	"testing"
)

func TestAngleGrid(t *testing.T) {
	grid := AngleGrid(-90, 90, 181)
	if len(grid) != 181 {
		t.Fatalf("unexpected length %d", len(grid))
	}
	if grid[0] != -90 || grid[180] != 90 {
		t.Fatalf("unexpected endpoints %v %v", grid[0], grid[180])
	}
	if math.Abs(grid[1]-grid[0]-1) > 1e-12 {
		t.Fatalf("unexpected step %v", grid[1]-grid[0])
	}
	if len(AngleGrid(0, 10, 0)) != 0 {
		t.Fatal("expected empty grid")
	}
	single := AngleGrid(5, 10, 1)
	if len(single) != 1 || single[0] != 5 {
		t.Fatalf("unexpected single-point grid %v", single)
	}
}

func TestPatternDB(t *testing.T) {
	db := PatternDB([]complex128{2, 1i, 0})
	if db[0] != 0 {
		t.Fatalf("peak expected 0 dB got %v", db[0])
	}
	if math.Abs(db[1]-20*math.Log10(0.5)) > 1e-12 {
		t.Fatalf("half magnitude expected %.6f dB got %v", 20*math.Log10(0.5), db[1])
	}
	// Nulls clamp at the floor instead of -Inf.
	if math.Abs(db[2]-(-120)) > 1e-9 {
		t.Fatalf("null expected -120 dB got %v", db[2])
	}
}

func TestPatternDBDegenerate(t *testing.T) {
	if len(PatternDB(nil)) != 0 {
		t.Fatal("expected empty output")
	}
	for i, v := range PatternDB([]complex128{0, 0}) {
		if v != 0 {
			t.Fatalf("all-zero pattern: sample %d expected 0 got %v", i, v)
		}
	}
}

func TestPeakMagnitude(t *testing.T) {
	idx, mag, ok := PeakMagnitude([]complex128{1, 3i, -2})
	if !ok || idx != 1 || math.Abs(mag-3) > 1e-12 {
		t.Fatalf("unexpected peak idx=%d mag=%v ok=%v", idx, mag, ok)
	}
	if _, _, ok := PeakMagnitude(nil); ok {
		t.Fatal("empty pattern must report ok=false")
	}
}
