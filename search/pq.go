package search

import "github.com/katalvlaran/uavpath/terrain"

// nodeItem is one open-set entry: a cell with the g, h and f it was pushed with.
type nodeItem struct {
	cell terrain.Point
	g    float64 // cost from start
	h    float64 // estimate to goal
	f    float64 // priority
}

// nodePQ is a min-heap of *nodeItem ordered by f, then h, then row-major cell order.
// Outdated entries stay in the heap and are ignored when popped (closed check).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the priority: smaller f first; on equal f smaller h;
// then the row-major smaller cell, so results do not depend on heap layout.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.cell.Less(b.cell)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
