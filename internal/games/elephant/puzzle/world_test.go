package puzzle

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestAfterInputForwardBackward(t *testing.T) {
	w := mustParse(t, "...ef...")

	next, ok := w.AfterInput(DirRight)
	if !ok {
		t.Fatal("forward move rejected")
	}
	if next.Butt() != C(4, 0) || next.Facing() != DirRight {
		t.Errorf("after forward: butt %v facing %v, want (4,0) Right", next.Butt(), next.Facing())
	}

	back, ok := next.AfterInput(DirLeft)
	if !ok {
		t.Fatal("backward move rejected")
	}
	if back.Butt() != C(3, 0) || back.Facing() != DirRight {
		t.Errorf("after backward: butt %v facing %v, want (3,0) Right", back.Butt(), back.Facing())
	}
	if !back.Equal(w) {
		t.Error("forward then backward should return to the start")
	}
}

func TestAfterInputRotation(t *testing.T) {
	w := mustParse(t, "...\n.ef\n...")

	tests := []struct {
		dir  Dir
		head Coord
	}{
		{DirUp, C(1, 0)},
		{DirDown, C(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			next, ok := w.AfterInput(tt.dir)
			if !ok {
				t.Fatal("rotation rejected")
			}
			if next.Butt() != w.Butt() {
				t.Errorf("butt moved to %v", next.Butt())
			}
			if next.Facing() != tt.dir {
				t.Errorf("facing = %v, want %v", next.Facing(), tt.dir)
			}
			if next.Head() != tt.head {
				t.Errorf("head = %v, want %v", next.Head(), tt.head)
			}
		})
	}
}

func TestRotationPushesBothCells(t *testing.T) {
	// Rotating down sweeps the head through (2,2), pushing that crate down,
	// then lands on (1,2), pushing that crate left.
	w := mustParse(t, "....\n.ef.\n.cc.\n....")

	next, ok := w.AfterInput(DirDown)
	if !ok {
		t.Fatal("rotation rejected")
	}

	got := next.Crates()
	want := []Crate{{Pos: C(0, 2)}, {Pos: C(2, 3)}}
	if !slices.Equal(got, want) {
		t.Errorf("crates = %v, want %v", got, want)
	}
	if next.Head() != C(1, 2) {
		t.Errorf("head = %v, want (1,2)", next.Head())
	}
}

func TestRotationBlockedByTreeInSweep(t *testing.T) {
	w := mustParse(t, "....\n.ef.\n..#.")

	if _, ok := w.AfterInput(DirDown); ok {
		t.Error("rotation through a tree should be rejected")
	}
	if _, ok := w.AfterInput(DirUp); !ok {
		t.Error("rotation away from the tree should be accepted")
	}
}

func TestPushBlocking(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"tree behind crate", "efc#"},
		{"closed door behind crate", "efc1."},
		{"dry crate behind crate", "efcc."},
		{"tree in front of head", "ef#."},
		{"closed door in front of head", "ef2.②"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustParse(t, tt.level)
			before := w.Crates()

			next, ok := w.AfterInput(DirRight)
			if ok {
				t.Fatalf("move accepted, crates now %v", next.Crates())
			}
			if next != nil {
				t.Error("rejected move should not return a world")
			}
			if !slices.Equal(w.Crates(), before) || w.Butt() != C(0, 0) {
				t.Error("rejected move changed the original world")
			}
		})
	}
}

func TestPushIntoCrateAtDistanceTwo(t *testing.T) {
	w := mustParse(t, "efc.c..1")

	w1, ok := w.AfterInput(DirRight)
	if !ok {
		t.Fatal("first push should slide the crate into the gap")
	}
	if !w1.CrateAt(C(3, 0)) {
		t.Fatalf("crate not at (3,0): %v", w1.Crates())
	}

	if _, ok := w1.AfterInput(DirRight); ok {
		t.Error("pushing a crate into another dry crate should be rejected")
	}
}

func TestPushAtEmptyCell(t *testing.T) {
	w := mustParse(t, "ef..#")

	same, ok := w.PushAt(C(2, 0), DirRight)
	if !ok || same != w {
		t.Error("pushing an empty cell should succeed with the same world")
	}
	if _, ok := w.PushAt(C(4, 0), DirRight); ok {
		t.Error("pushing at a tree should fail even with nothing to move")
	}
	// Out of bounds is open for obstacle purposes.
	if _, ok := w.PushAt(C(10, 0), DirRight); !ok {
		t.Error("pushing outside the level should succeed")
	}
}

func TestDoorGating(t *testing.T) {
	w := mustParse(t, "efc③.\n.3...")

	if !w.DoorsClosed(3) {
		t.Fatal("door 3 should start closed")
	}
	if _, ok := w.AfterInput(DirDown); ok {
		t.Error("rotating the head onto a closed door should be rejected")
	}

	covered, ok := w.AfterInput(DirRight)
	if !ok {
		t.Fatal("pushing the crate onto the target was rejected")
	}
	if covered.DoorsClosed(3) {
		t.Fatal("door 3 should open once its target is covered")
	}
	if w.DoorsClosed(3) != true {
		t.Error("the original world must keep its door closed")
	}
	if !covered.Solved() {
		t.Error("every target covered should report solved")
	}

	// Butt now at (1,0); rotating down puts the head on the open door.
	onDoor, ok := covered.AfterInput(DirDown)
	if !ok {
		t.Fatal("entering the open door was rejected")
	}
	if onDoor.Head() != C(1, 1) {
		t.Errorf("head = %v, want the door at (1,1)", onDoor.Head())
	}
}

func TestDoorWithoutTargetsNeverOpens(t *testing.T) {
	w := mustParse(t, "ef4.")

	if !w.DoorsClosed(4) {
		t.Error("door with no bound targets should be closed")
	}
	if !w.ObstacleAt(C(2, 0)) {
		t.Error("closed door should be an obstacle")
	}
}

func TestDoorNeedsEveryTarget(t *testing.T) {
	w := mustParse(t, "ef❺⑤5")

	if !w.DoorsClosed(5) {
		t.Error("door should stay closed while one of its targets is uncovered")
	}
	if w.DoorsClosed(1) != true {
		t.Error("unrelated index with no targets should be closed")
	}
}

func TestWaterSubmersion(t *testing.T) {
	w := mustParse(t, ".....\n.....\nefcx.")

	w1, ok := w.AfterInput(DirRight)
	if !ok {
		t.Fatal("pushing the crate into water was rejected")
	}
	crates := w1.Crates()
	if len(crates) != 1 || crates[0] != (Crate{Pos: C(3, 2), InWater: true}) {
		t.Fatalf("crates = %v, want one submerged crate at (3,2)", crates)
	}
	if w1.CrateAt(C(3, 2)) {
		t.Error("submerged crate should not count as a crate")
	}
	if w1.WaterAt(C(3, 2)) {
		t.Error("submerged crate should fill the water cell")
	}

	// The next push targets (3,2) and passes through the submerged crate.
	w2, ok := w1.AfterInput(DirRight)
	if !ok {
		t.Fatal("moving onto the submerged crate was rejected")
	}
	if !slices.Equal(w2.Crates(), crates) {
		t.Errorf("submerged crate moved: %v", w2.Crates())
	}

	// The butt can stand on the bridge.
	w3, ok := w2.AfterInput(DirRight)
	if !ok {
		t.Fatal("butt on the submerged crate was rejected")
	}
	if w3.Butt() != C(3, 2) {
		t.Errorf("butt = %v, want (3,2)", w3.Butt())
	}
}

func TestHeadMayHangOverWater(t *testing.T) {
	w := mustParse(t, "ef.x")

	w1, ok := w.AfterInput(DirRight)
	if !ok {
		t.Fatal("first step rejected")
	}
	w2, ok := w1.AfterInput(DirRight)
	if !ok {
		t.Fatal("head over water should be allowed")
	}
	if !w2.WaterAt(w2.Head()) {
		t.Errorf("head %v should be over water", w2.Head())
	}
	if _, ok := w2.AfterInput(DirRight); ok {
		t.Error("butt in water should be rejected")
	}
	// Walking off the edge: the level is surrounded by water.
	if _, ok := w.AfterInput(DirLeft); ok {
		t.Error("butt outside the level should be rejected")
	}
}

func TestAfterInputPure(t *testing.T) {
	w := mustParse(t, sampleLevel)
	crates := w.Crates()

	for _, d := range Dirs {
		a, okA := w.AfterInput(d)
		b, okB := w.AfterInput(d)
		if okA != okB {
			t.Errorf("%v: ok differs between calls", d)
			continue
		}
		if okA && !a.Equal(b) {
			t.Errorf("%v: results differ between calls", d)
		}
	}

	if !slices.Equal(w.Crates(), crates) || w.Butt() != C(2, 2) || w.Facing() != DirRight {
		t.Error("AfterInput modified its receiver")
	}
}

func TestAfterInputInvalidDir(t *testing.T) {
	w := mustParse(t, "ef.")
	if _, ok := w.AfterInput(Dir(9)); ok {
		t.Error("invalid direction should be rejected")
	}
}

func TestReachableStateInvariants(t *testing.T) {
	seq := NewSequencer(mustParse(t, sampleLevel))
	rng := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 2000; i++ {
		switch n := rng.IntN(20); {
		case n == 0:
			seq.Enqueue(Undo())
		case n == 1 && i%50 == 0:
			seq.Enqueue(Reset())
		default:
			seq.Enqueue(Move(Dirs[rng.IntN(4)]))
		}

		before := seq.Current()
		beforeCrates := before.Crates()
		seq.Drain()
		if !slices.Equal(before.Crates(), beforeCrates) {
			t.Fatalf("step %d: previous world was modified", i)
		}

		w := seq.Current()
		if !w.Facing().Valid() {
			t.Fatalf("step %d: invalid facing %d", i, w.Facing())
		}
		if w.Head() != w.Butt().Step(w.Facing()) {
			t.Fatalf("step %d: head %v is not butt+facing", i, w.Head())
		}
		if w.WaterAt(w.Butt()) || w.ObstacleAt(w.Butt()) || w.ObstacleAt(w.Head()) {
			t.Fatalf("step %d: elephant at %v/%v stands illegally", i, w.Butt(), w.Head())
		}

		seen := make(map[Coord]bool)
		for _, c := range w.Crates() {
			if c.InWater {
				continue
			}
			if seen[c.Pos] {
				t.Fatalf("step %d: two dry crates at %v", i, c.Pos)
			}
			seen[c.Pos] = true
		}
	}
}

func TestWorldEqual(t *testing.T) {
	a := mustParse(t, sampleLevel)
	b := mustParse(t, sampleLevel)

	if !a.Equal(b) {
		t.Error("two parses of one level should be equal")
	}

	moved, _ := a.AfterInput(DirRight)
	if a.Equal(moved) {
		t.Error("worlds with different poses should differ")
	}

	other := mustParse(t, "ef.")
	if a.Equal(other) {
		t.Error("worlds from different levels should differ")
	}
}
