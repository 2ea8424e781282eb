package jps

type priorityQueueItem struct {
	node Node
	// sequence is the insertion order, used as the last tie-break.
	sequence uint64
}

// priorityQueue is the open set. Equal F prefers the larger G, then the
// earlier push. The same cell may appear more than once.
type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.node.F != b.node.F {
		return a.node.F < b.node.F
	}
	if a.node.G != b.node.G {
		return a.node.G > b.node.G
	}
	return a.sequence < b.sequence
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(*priorityQueueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
