package zx0

import "testing"

func TestAcquireCompressorCtx_GrowsToRequestedLength(t *testing.T) {
	ctx := acquireCompressorCtx(100)
	defer releaseCompressorCtx(ctx)

	if len(ctx.rle) != 100 {
		t.Fatalf("len(rle) = %d, want 100", len(ctx.rle))
	}
	if len(ctx.visitedArr) != 100 || len(ctx.bestMatch) != 100 {
		t.Fatal("visitedArr/bestMatch not sized to windowLen")
	}
	if len(ctx.matchTable) != 100 || len(ctx.arrivals) != 100 {
		t.Fatal("matchTable/arrivals not sized to windowLen")
	}
	for _, row := range ctx.matchTable {
		if len(row) != NMatchesPerIndex {
			t.Fatalf("matchTable row len = %d, want %d", len(row), NMatchesPerIndex)
		}
	}
}

func TestCompressorCtx_ReuseAcrossAcquireRelease(t *testing.T) {
	ctx := acquireCompressorCtx(50)
	ctx.rle[0] = 7
	releaseCompressorCtx(ctx)

	ctx2 := acquireCompressorCtx(10)
	if len(ctx2.rle) != 10 {
		t.Fatalf("len(rle) after shrink-reuse = %d, want 10", len(ctx2.rle))
	}
	releaseCompressorCtx(ctx2)
}

func TestCompressorCtx_GrowTwiceDoesNotShrinkBelowRequest(t *testing.T) {
	ctx := acquireCompressorCtx(20)
	ctx.grow(5)
	if len(ctx.rle) != 5 {
		t.Fatalf("len(rle) after grow(5) = %d, want 5 (re-sliced down)", len(ctx.rle))
	}
	if cap(ctx.rle) < 20 {
		t.Fatalf("cap(rle) = %d, want >= 20 (capacity retained across shrink)", cap(ctx.rle))
	}
	ctx.grow(20)
	if len(ctx.rle) != 20 {
		t.Fatalf("len(rle) after grow(20) = %d, want 20", len(ctx.rle))
	}
	releaseCompressorCtx(ctx)
}

func TestResetMatchTable_ClearsRange(t *testing.T) {
	ctx := acquireCompressorCtx(5)
	defer releaseCompressorCtx(ctx)
	for i := range ctx.matchTable {
		ctx.matchTable[i][0] = match{offset: 1, length: 3}
	}
	ctx.resetMatchTable(1, 3)

	if ctx.matchTable[0][0].length != 3 {
		t.Fatal("resetMatchTable should not touch positions outside [from,to)")
	}
	if ctx.matchTable[1][0].length != 0 || ctx.matchTable[2][0].length != 0 {
		t.Fatal("resetMatchTable should clear positions in [from,to)")
	}
	if ctx.matchTable[3][0].length != 3 {
		t.Fatal("resetMatchTable should not touch positions outside [from,to)")
	}
}

func TestResetVisited_ClearsRange(t *testing.T) {
	ctx := acquireCompressorCtx(5)
	defer releaseCompressorCtx(ctx)
	for i := range ctx.visitedArr {
		ctx.visitedArr[i] = visited{inner: 9, outer: 9}
	}
	ctx.resetVisited(2, 4)

	if ctx.visitedArr[0].inner != 9 || ctx.visitedArr[4].inner != 9 {
		t.Fatal("resetVisited should not touch positions outside [from,to)")
	}
	if ctx.visitedArr[2] != (visited{}) || ctx.visitedArr[3] != (visited{}) {
		t.Fatal("resetVisited should zero positions in [from,to)")
	}
}

func TestGrowCapacity_OverProvisions(t *testing.T) {
	if got := growCapacity(100); got <= 100 {
		t.Fatalf("growCapacity(100) = %d, want > 100", got)
	}
}
