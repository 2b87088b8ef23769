package spreadsheet

import "sort"

// orderedIntSet tracks occupied row or column indices with multiplicity,
// keeping the distinct indices in a sorted slice (binary search to find
// the slot, then an O(n) shift when an index is added or dropped) with
// O(1) max, mirroring the reference sheet's sorted row/column index
// sets without needing a balanced tree.
type orderedIntSet struct {
	counts map[int]int
	sorted []int
}

func (s *orderedIntSet) Insert(v int) {
	if s.counts == nil {
		s.counts = make(map[int]int)
	}
	if s.counts[v] == 0 {
		i := sort.SearchInts(s.sorted, v)
		s.sorted = append(s.sorted, 0)
		copy(s.sorted[i+1:], s.sorted[i:])
		s.sorted[i] = v
	}
	s.counts[v]++
}

func (s *orderedIntSet) Remove(v int) {
	if s.counts[v] == 0 {
		return
	}
	s.counts[v]--
	if s.counts[v] == 0 {
		delete(s.counts, v)
		i := sort.SearchInts(s.sorted, v)
		s.sorted = append(s.sorted[:i], s.sorted[i+1:]...)
	}
}

func (s *orderedIntSet) Max() int {
	if len(s.sorted) == 0 {
		return -1
	}
	return s.sorted[len(s.sorted)-1]
}

func (s *orderedIntSet) Empty() bool { return len(s.sorted) == 0 }

func (s *orderedIntSet) Has(v int) bool { return s.counts[v] > 0 }

// wouldCreateCycle reports whether replacing pos's outgoing edges with
// newReferents would make pos reachable from itself, treating every
// other cell's outgoing edges as its current formula referents. This is
// checked before any mutation, so a rejected update leaves the sheet
// untouched.
func (s *Sheet) wouldCreateCycle(pos Position, newReferents []Position) bool {
	visited := make(map[Position]bool)
	var visit func(Position) bool
	visit = func(current Position) bool {
		var referents []Position
		if current == pos {
			referents = newReferents
		} else if cell, ok := s.cells[current]; ok && cell.kind == kindFormula {
			referents = cell.formula.ReferencedCells()
		}
		for _, r := range referents {
			if r == pos {
				return true
			}
			if visited[r] {
				continue
			}
			visited[r] = true
			if visit(r) {
				return true
			}
		}
		return false
	}
	return visit(pos)
}

// invalidateDependents clears the cached value of every formula cell
// transitively reachable from start via the dependents relation (a BFS
// over incoming edges), starting with start's own dependents.
func (s *Sheet) invalidateDependents(start Position) {
	visited := make(map[Position]bool)
	queue := []Position{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cell, ok := s.cells[current]
		if !ok {
			continue
		}
		for dep := range cell.dependents {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			if depCell, ok := s.cells[dep]; ok {
				depCell.invalidate()
			}
			queue = append(queue, dep)
		}
	}
}
