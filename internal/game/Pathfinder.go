package game

// FindPath runs a breadth-first search from start to target over the
// 4-neighborhood of open grid cells. The returned path excludes start
// and ends with target, so its length is the number of moves. Cells in
// blocked are impassable.
//
// Neighbors are expanded in Headings order, which makes the choice
// among equally short paths deterministic.
//
// An empty result is ambiguous: it means either start == target
// (already arrived) or that no path exists. Callers that need to tell
// the two apart must compare start and target themselves.
func FindPath(grid Grid, start Cell, blocked map[Cell]struct{}, target Cell) []Cell {
	type frontierEntry struct {
		cell Cell
		path []Cell
	}

	visited := make(map[Cell]struct{})
	queue := []frontierEntry{{cell: start}}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.cell == target {
			return entry.path
		}

		for _, h := range Headings {
			next := grid.Step(entry.cell, h)
			if !grid.Contains(next) {
				continue
			}
			if _, isBlocked := blocked[next]; isBlocked {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			path := make([]Cell, len(entry.path)+1)
			copy(path, entry.path)
			path[len(entry.path)] = next
			queue = append(queue, frontierEntry{cell: next, path: path})
		}
	}

	return nil
}
