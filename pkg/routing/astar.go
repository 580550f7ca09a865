package routing

import "container/heap"

// pathNode is one entry in the A* open set.
type pathNode struct {
	c      cell
	g      float64 // cost so far
	f      float64 // g + heuristic
	parent *pathNode
	index  int
}

type priorityQueue []*pathNode

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

func heuristic(a, b cell, gridMM float64) float64 {
	dx := float64(a.ix - b.ix)
	dy := float64(a.iy - b.iy)
	manhattan := dx
	if manhattan < 0 {
		manhattan = -manhattan
	}
	dyAbs := dy
	if dyAbs < 0 {
		dyAbs = -dyAbs
	}
	return (manhattan + dyAbs) * gridMM
}

// searchPath runs an A* search from start to goal on the multi-layer grid,
// obeying obstacles and applying via/non-preferred-layer/parallel-run
// penalties as additive edge costs, grounded on the teacher's grid
// line-drawing approach generalized from a single floor layer to a layer
// stack with via-mediated transitions.
func searchPath(g *obstacleGrid, layers []string, rule ClassRule, cfg *Config, netID string, start, goal cell) ([]cell, bool) {
	open := &priorityQueue{}
	heap.Init(open)
	startNode := &pathNode{c: start, g: 0, f: heuristic(start, goal, g.gridMM)}
	heap.Push(open, startNode)

	best := make(map[cell]float64)
	best[start] = 0
	visited := make(map[cell]*pathNode)
	visited[start] = startNode

	expansions := 0
	for open.Len() > 0 {
		expansions++
		if expansions > cfg.MaxSearchExpansions {
			return nil, false
		}
		current := heap.Pop(open).(*pathNode)
		if current.c == goal {
			return reconstruct(current), true
		}

		for _, next := range neighbors(g, layers, current.c) {
			if g.blocked[next] && next != goal {
				continue
			}
			stepCost := g.gridMM
			if next.layer != current.c.layer {
				stepCost += cfg.ViaPreference
			}
			if next.layer != rule.PreferredLayer {
				stepCost += cfg.NonPreferredLayerPenalty * g.gridMM
			}
			if owner, occupied := g.owner[next]; occupied && owner != netID {
				stepCost += cfg.ParallelRunPenalty * g.gridMM
			}

			tentativeG := current.g + stepCost
			if existing, ok := best[next]; ok && tentativeG >= existing {
				continue
			}
			best[next] = tentativeG
			node := &pathNode{c: next, g: tentativeG, f: tentativeG + heuristic(next, goal, g.gridMM), parent: current}
			heap.Push(open, node)
		}
	}

	return nil, false
}

func reconstruct(n *pathNode) []cell {
	var path []cell
	for cur := n; cur != nil; cur = cur.parent {
		path = append([]cell{cur.c}, path...)
	}
	return path
}

func neighbors(g *obstacleGrid, layers []string, c cell) []cell {
	candidates := []cell{
		{c.layer, c.ix + 1, c.iy},
		{c.layer, c.ix - 1, c.iy},
		{c.layer, c.ix, c.iy + 1},
		{c.layer, c.ix, c.iy - 1},
	}
	for _, l := range layers {
		if l != c.layer {
			candidates = append(candidates, cell{l, c.ix, c.iy})
		}
	}

	out := candidates[:0]
	for _, cand := range candidates {
		if g.inBounds(cand) {
			out = append(out, cand)
		}
	}
	return out
}
