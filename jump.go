package jps

// direction is a unit step. Straight directions come first so the search
// prefers them when costs tie.
type direction struct{ di, dj int }

var (
	straightDirections = []direction{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	allDirections      = []direction{
		{-1, 0}, {0, 1}, {1, 0}, {0, -1},
		{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
	}
)

// scanner finds jump points on a map. Off-grid cells count as blocked and are
// never free.
type scanner struct {
	m             Map
	goal          Cell
	allowDiagonal bool
}

func (s scanner) blocked(row, col int) bool {
	return !s.m.OnGrid(row, col) || s.m.IsObstacle(row, col)
}

func (s scanner) free(row, col int) bool { return !s.blocked(row, col) }

// jump scans from cell along (di, dj) and returns the first jump point it
// meets. cell itself is the first candidate.
func (s scanner) jump(cell Cell, di, dj int) (Cell, bool) {
	if di != 0 && dj != 0 {
		return s.jumpDiagonal(cell, di, dj)
	}
	return s.jumpStraight(cell, di, dj)
}

func (s scanner) jumpStraight(cell Cell, di, dj int) (Cell, bool) {
	for {
		if s.blocked(cell.Row, cell.Col) {
			return cell, false
		}
		if cell == s.goal {
			return cell, true
		}
		if s.allowDiagonal {
			if s.forcedStraight(cell, di, dj) {
				return cell, true
			}
		} else {
			if s.forcedOrthogonal(cell, di, dj) {
				return cell, true
			}
			// Without diagonals a turn is only visible from the row scan,
			// so it looks down both column directions.
			if di != 0 {
				if _, ok := s.jumpStraight(cell.Add(0, 1), 0, 1); ok {
					return cell, true
				}
				if _, ok := s.jumpStraight(cell.Add(0, -1), 0, -1); ok {
					return cell, true
				}
			}
		}
		cell = cell.Add(di, dj)
	}
}

func (s scanner) jumpDiagonal(cell Cell, di, dj int) (Cell, bool) {
	for {
		if s.blocked(cell.Row, cell.Col) {
			return cell, false
		}
		if cell == s.goal {
			return cell, true
		}
		if s.forcedDiagonal(cell, di, dj) {
			return cell, true
		}
		if _, ok := s.jumpStraight(cell.Add(di, 0), di, 0); ok {
			return cell, true
		}
		if _, ok := s.jumpStraight(cell.Add(0, dj), 0, dj); ok {
			return cell, true
		}
		cell = cell.Add(di, dj)
	}
}

// forcedStraight reports a blocked side cell whose diagonal-ahead cell is
// free, for 8-connected movement.
func (s scanner) forcedStraight(c Cell, di, dj int) bool {
	r, col := c.Row, c.Col
	if dj == 0 {
		return (s.blocked(r, col+1) && s.free(r+di, col+1)) ||
			(s.blocked(r, col-1) && s.free(r+di, col-1))
	}
	return (s.blocked(r+1, col) && s.free(r+1, col+dj)) ||
		(s.blocked(r-1, col) && s.free(r-1, col+dj))
}

// forcedDiagonal reports a blocked orthogonal cell behind whose
// diagonal-behind cell is free, on either axis.
func (s scanner) forcedDiagonal(c Cell, di, dj int) bool {
	r, col := c.Row, c.Col
	return (s.blocked(r-di, col) && s.free(r-di, col+dj)) ||
		(s.blocked(r, col-dj) && s.free(r+di, col-dj))
}

// forcedOrthogonal reports a free side cell whose cell behind is blocked, for
// 4-connected movement.
func (s scanner) forcedOrthogonal(c Cell, di, dj int) bool {
	r, col := c.Row, c.Col
	if dj == 0 {
		return (s.free(r, col+1) && s.blocked(r-di, col+1)) ||
			(s.free(r, col-1) && s.blocked(r-di, col-1))
	}
	return (s.free(r+1, col) && s.blocked(r+1, col-dj)) ||
		(s.free(r-1, col) && s.blocked(r-1, col-dj))
}
