package internal

// ReconstructPath rebuilds the path ending at current by following parent
// links until parent reports no predecessor. The result runs from the root to
// current.
func ReconstructPath[NodeType any](
	current NodeType,
	parent func(NodeType) (NodeType, bool),
) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := parent(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Interpolate calls visit for every cell after (fromRow, fromCol) up to and
// including (toRow, toCol). Each call is one unit step, straight or diagonal,
// toward the target. Straight and 45 degree segments come out exact.
func Interpolate(fromRow, fromCol, toRow, toCol int, visit func(row, col int)) {
	row, col := fromRow, fromCol
	for row != toRow || col != toCol {
		row += sign(toRow - row)
		col += sign(toCol - col)
		visit(row, col)
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
