package jps

// closedSet stores expanded nodes in an append-only arena. The handle
// returned by insert stays valid for the whole search and is what children
// keep as their parent link.
type closedSet struct {
	nodes []Node
	index map[Cell]int
}

func newClosedSet() *closedSet {
	return &closedSet{index: make(map[Cell]int)}
}

func (c *closedSet) contains(cell Cell) bool {
	_, ok := c.index[cell]
	return ok
}

func (c *closedSet) insert(n Node) int {
	handle := len(c.nodes)
	c.nodes = append(c.nodes, n)
	c.index[n.Cell] = handle
	return handle
}

func (c *closedSet) node(handle int) Node { return c.nodes[handle] }

func (c *closedSet) len() int { return len(c.nodes) }
