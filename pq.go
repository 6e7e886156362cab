package waterjug

type frontierItem struct {
	State State
	G     int
	F     int
}

// frontier is a min-heap of pushed candidates. A state may appear more than
// once; entries whose G is above the recorded cost are stale.
type frontier []frontierItem

func (queue frontier) Len() int { return len(queue) }

// Less orders by priority, then by the state pair, so equal-priority entries
// always come out in the same order.
func (queue frontier) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.State.A != b.State.A {
		return a.State.A < b.State.A
	}
	if a.State.B != b.State.B {
		return a.State.B < b.State.B
	}

	return a.G < b.G
}

func (queue frontier) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]

	return item
}
