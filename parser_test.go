package zx0

import "testing"

func newTestArrivalRow(n int) []arrival {
	row := make([]arrival, n)
	for i := range row {
		row[i] = emptyArrival()
	}
	return row
}

func TestInsertArrival_KeepsSortedByCost(t *testing.T) {
	row := newTestArrivalRow(4)
	insertArrival(row, 4, 1, arrival{cost: 30, repOffset: 1, fromSlotIdx: slotStart})
	insertArrival(row, 4, 1, arrival{cost: 10, repOffset: 2, fromSlotIdx: slotStart})
	insertArrival(row, 4, 1, arrival{cost: 20, repOffset: 3, fromSlotIdx: slotStart})

	var costs []uint32
	for _, a := range row {
		if a.live() {
			costs = append(costs, a.cost)
		}
	}
	for i := 1; i < len(costs); i++ {
		if costs[i] < costs[i-1] {
			t.Fatalf("arrivals not sorted by ascending cost: %v", costs)
		}
	}
	if len(costs) != 3 {
		t.Fatalf("expected 3 live arrivals, got %d", len(costs))
	}
}

func TestInsertArrival_RejectsDuplicateRepOffset(t *testing.T) {
	row := newTestArrivalRow(4)
	insertArrival(row, 4, 1, arrival{cost: 10, repOffset: 5, fromSlotIdx: slotStart})
	insertArrival(row, 4, 1, arrival{cost: 15, repOffset: 5, fromSlotIdx: slotStart})

	n := 0
	for _, a := range row {
		if a.live() {
			n++
			if a.cost != 10 {
				t.Errorf("duplicate rep_offset candidate should have been dropped, found cost %d", a.cost)
			}
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 live arrival for a single rep_offset, got %d", n)
	}
}

func TestInsertArrival_RejectsWorseThanReservedTail(t *testing.T) {
	row := newTestArrivalRow(3)
	insertArrival(row, 3, 1, arrival{cost: 5, repOffset: 1, fromSlotIdx: slotStart})
	insertArrival(row, 3, 1, arrival{cost: 10, repOffset: 2, fromSlotIdx: slotStart})
	insertArrival(row, 3, 1, arrival{cost: 15, repOffset: 3, fromSlotIdx: slotStart})
	// capacity=3, reserve=1 -> reference slot is dest[capacity-reserve] =
	// dest[2] (cost 15, offset 3): a candidate costing more than that is
	// rejected outright without disturbing the row.
	insertArrival(row, 3, 1, arrival{cost: 20, repOffset: 4, fromSlotIdx: slotStart})

	if row[2].repOffset != 3 || row[2].cost != 15 {
		t.Fatalf("worse candidate should have been rejected, row[2] = %+v", row[2])
	}
}

func TestInsertArrival_AcceptsIntoStillOpenReservedSlot(t *testing.T) {
	row := newTestArrivalRow(2)
	insertArrival(row, 2, 1, arrival{cost: 5, repOffset: 1, fromSlotIdx: slotStart})
	// capacity=2, reserve=1 -> reference slot is dest[2-1] = dest[1], which
	// is still empty (sentinel cost), so a worse candidate for a distinct
	// offset is accepted into the open slot rather than rejected outright:
	// the quick-reject check only fires once the reference slot is live.
	insertArrival(row, 2, 1, arrival{cost: 100, repOffset: 2, fromSlotIdx: slotStart})

	if !row[1].live() || row[1].repOffset != 2 {
		t.Fatalf("expected second slot to hold the accepted candidate, got %+v", row[1])
	}
}

func TestInsertArrival_CapacityZeroIsNoOp(t *testing.T) {
	row := newTestArrivalRow(0)
	insertArrival(row, 0, 1, arrival{cost: 1, fromSlotIdx: slotStart})
	// Should not panic; nothing to assert beyond surviving the call.
}

func TestEnumerateLengths_ShortRange(t *testing.T) {
	got := enumerateLengths(5)
	want := []int{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("enumerateLengths(5) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("enumerateLengths(5) = %v, want %v", got, want)
		}
	}
}

func TestEnumerateLengths_BelowMinIsEmpty(t *testing.T) {
	if got := enumerateLengths(1); got != nil {
		t.Fatalf("enumerateLengths(1) = %v, want nil", got)
	}
}

func TestEnumerateLengths_LongMatchIsSingleton(t *testing.T) {
	got := enumerateLengths(LeaveAloneMatchSize + 10)
	if len(got) != 1 || got[0] != LeaveAloneMatchSize+10 {
		t.Fatalf("enumerateLengths(long) = %v, want [%d]", got, LeaveAloneMatchSize+10)
	}
}

func TestRunParserPass_LiteralOnlyInput(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30}
	n := len(data)
	arrivals := make([][]arrival, n+1)
	for i := range arrivals {
		arrivals[i] = make([]arrival, 4)
	}
	matchTable := make([][]match, n)
	for i := range matchTable {
		matchTable[i] = make([]match, NMatchesPerIndex)
	}
	visitedArr := make([]visited, n)
	rle := make([]uint32, n)
	buildRLETable(data, 0, rle)

	pp := parserPassParams{
		data: data, start: 0, end: n,
		arrivals: arrivals, matchTable: matchTable,
		visitedArr: visitedArr, rleTable: rle,
		capacity: 4, nMatches: NMatchesPerIndex,
		withRepInsertion: false, initialRepOffset: 1,
	}
	runParserPass(pp)

	best := arrivals[n][0]
	if !best.live() {
		t.Fatal("expected a live arrival at the end position")
	}
	// Total cost of a pure literal run is the raw 8 bits per byte plus the
	// run-length code itself (the token + Elias length prefix).
	want := uint32(8*n + literalRunBits(n))
	if best.cost != want {
		t.Fatalf("cost = %d, want %d (pure literal run of %d bytes)", best.cost, want, n)
	}
}

func TestTraceback_PureLiteralRun(t *testing.T) {
	data := []byte{1, 2, 3}
	n := len(data)
	arrivals := make([][]arrival, n+1)
	for i := range arrivals {
		arrivals[i] = make([]arrival, 4)
		for j := range arrivals[i] {
			arrivals[i][j] = emptyArrival()
		}
	}
	matchTable := make([][]match, n)
	for i := range matchTable {
		matchTable[i] = make([]match, NMatchesPerIndex)
	}
	visitedArr := make([]visited, n)
	rle := make([]uint32, n)
	buildRLETable(data, 0, rle)

	pp := parserPassParams{
		data: data, start: 0, end: n,
		arrivals: arrivals, matchTable: matchTable,
		visitedArr: visitedArr, rleTable: rle,
		capacity: 4, nMatches: NMatchesPerIndex,
		withRepInsertion: false, initialRepOffset: 1,
	}
	runParserPass(pp)

	best := make([]finalMatch, n)
	traceback(arrivals, 0, n, best)
	for i, fm := range best {
		if fm.length != 0 {
			t.Errorf("best[%d] = %+v, want a literal (length 0)", i, fm)
		}
	}
}
