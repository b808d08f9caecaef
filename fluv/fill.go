package fluv

import "container/heap"

// epsGrad is the minimal water-surface gradient imposed across filled
// depressions so that every core node drains.
const epsGrad = 1e-6

type fillItem struct {
	ws float64
	i  int
}

type fillHeap []fillItem

func (h fillHeap) Len() int            { return len(h) }
func (h fillHeap) Less(i, j int) bool  { return h[i].ws < h[j].ws }
func (h fillHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *fillHeap) Push(x interface{}) { *h = append(*h, x.(fillItem)) }
func (h *fillHeap) Pop() interface{} {
	o := *h
	n := len(o)
	x := o[n-1]
	*h = o[:n-1]
	return x
}

// fill builds the water-surface field by priority-flood: fixed-value nodes
// seed the queue at their elevation and the flood climbs inland, raising the
// water surface of closed depressions just enough to drain. Elevations are
// untouched. Returns the filled surface and the core nodes ordered
// descending by water surface (donors before receivers).
func (f *Fluv) fill(z []float64, core []bool) (ws []float64, order []int) {
	n := len(z)
	ws = make([]float64, n)
	copy(ws, z)
	visited := make([]bool, n)

	h := &fillHeap{}
	for i := range z {
		if !core[i] {
			visited[i] = true
			heap.Push(h, fillItem{z[i], i})
		}
	}
	order = make([]int, 0, n)
	for h.Len() > 0 {
		it := heap.Pop(h).(fillItem)
		if core[it.i] {
			order = append(order, it.i)
		}
		for k, j := range f.nb[it.i] {
			if visited[j] {
				continue
			}
			visited[j] = true
			ws[j] = z[j]
			if wmin := it.ws + epsGrad*f.nbd[it.i][k]; ws[j] < wmin {
				ws[j] = wmin
			}
			heap.Push(h, fillItem{ws[j], j})
		}
	}
	// reverse to descending
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return ws, order
}
