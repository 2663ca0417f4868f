package falldown

import "math"

// initialBlockCount is how many blocks fill a board of the given height.
// At least one block is always present.
func (s *Session) initialBlockCount() int {
	n := int(math.Round(s.board.Height / (s.params.BlockHeight + s.params.BlockSpacing)))
	if n < 1 {
		n = 1
	}
	return n
}

// spawnInitialBlocks spaces the opening block set evenly down the board.
func (s *Session) spawnInitialBlocks() {
	n := s.initialBlockCount()
	step := s.board.Height/float64(n) + s.params.BlockHeight/2
	for i := 0; i < n; i++ {
		s.spawnBlock(float64(i+1) * step)
	}
}

// spawnBlock adds a block at y with a fresh random gap.
func (s *Session) spawnBlock(y float64) {
	b := Block{
		ID:           s.nextID,
		Y:            y,
		HolePosition: s.randomHolePosition(),
	}
	s.nextID++
	s.blocks = append(s.blocks, b)
	s.visual.Added(blockEntity(b))
}

// randomHolePosition draws a gap offset uniformly from [0, width-gapWidth].
// A board narrower than the gap always gets offset 0.
func (s *Session) randomHolePosition() float64 {
	span := s.board.Width - s.params.GapWidth
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}

// scrollBlocks moves every block up and recycles the ones that left the
// top of the board. Replacements spawn at the bottom; the count never changes.
func (s *Session) scrollBlocks() {
	for i := range s.blocks {
		s.blocks[i].Y -= s.params.RiseRate
	}

	recycled := 0
	kept := s.blocks[:0]
	for _, b := range s.blocks {
		if b.Y+s.params.BlockHeight < 0 {
			s.visual.Removed(b.ID)
			recycled++
			continue
		}
		kept = append(kept, b)
	}
	s.blocks = kept

	for ; recycled > 0; recycled-- {
		s.spawnBlock(s.board.Height)
	}
}

// nearestBlock returns the index of the block whose top is closest to y,
// or -1 when there are no blocks. Ties go to the later block.
func (s *Session) nearestBlock(y float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, b := range s.blocks {
		if d := math.Abs(b.Y - y); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func blockEntity(b Block) Entity {
	return Entity{ID: b.ID, Kind: KindBlock, X: b.HolePosition, Y: b.Y}
}
