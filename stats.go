// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zx0

package zx0

// Stats reports aggregate information about a completed compression run
// (spec.md §6 statsOut).
type Stats struct {
	Literals    MinMaxMean
	Offsets     MinMaxMean
	MatchLens   MinMaxMean
	RLERuns     MinMaxMean
	RepMatches  int
	CommandCount int
	// SafeDistance is the smallest |length - offset| over all emitted
	// matches (0 when there are none). It is computed from the matches
	// alone; positions in the compressed stream are not taken into account.
	SafeDistance int
}

// MinMaxMean accumulates a running min/max/mean over an integer series.
type MinMaxMean struct {
	Min   int
	Max   int
	count int
	sum   int64
}

func (m *MinMaxMean) observe(v int) {
	if m.count == 0 || v < m.Min {
		m.Min = v
	}
	if m.count == 0 || v > m.Max {
		m.Max = v
	}
	m.sum += int64(v)
	m.count++
}

// Mean returns the arithmetic mean of all observed values, or 0 if none.
func (m MinMaxMean) Mean() float64 {
	if m.count == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.count)
}

// statsCollector accumulates Stats while walking a reduced parse.
type statsCollector struct {
	s Stats
}

func (c *statsCollector) observeLiteralRun(runLen int) {
	if runLen > 0 {
		c.s.Literals.observe(runLen)
		c.s.CommandCount++
	}
}

func (c *statsCollector) observeMatch(offset uint32, length int, isRep bool) {
	c.s.Offsets.observe(int(offset))
	c.s.MatchLens.observe(length)
	c.s.CommandCount++
	if isRep {
		c.s.RepMatches++
	}
	dist := length - int(offset)
	if dist < 0 {
		dist = -dist
	}
	if c.s.Offsets.count == 1 || dist < c.s.SafeDistance {
		c.s.SafeDistance = dist
	}
}

func (c *statsCollector) observeRLERun(runLen int) {
	c.s.RLERuns.observe(runLen)
}

// collectBlockStats walks the same emittable range emitBlock would, mirroring
// its literal/match segmentation, to aggregate Stats without touching the
// bit-level emitter.
func collectBlockStats(c *statsCollector, bestMatch []finalMatch, start, stopAt int, initialRepOffset uint32) {
	repOffset := initialRepOffset
	justLiteral := false

	i := start
	for i < stopAt {
		fm := bestMatch[i]
		if fm.length == consumedByMatch {
			i++
			continue
		}

		if fm.length == 0 {
			runStart := i
			for i < stopAt && bestMatch[i].length == 0 {
				i++
			}
			c.observeLiteralRun(i - runStart)
			justLiteral = true
			continue
		}

		length := int(fm.length)
		isRep := justLiteral && fm.offset == repOffset
		c.observeMatch(fm.offset, length, isRep)
		if fm.offset == 1 {
			c.observeRLERun(length)
		}
		repOffset = fm.offset
		justLiteral = false
		i += length
	}
}
