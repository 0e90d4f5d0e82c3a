// Package solver runs breadth-first searches over any maze source.
package solver

import (
	"github.com/zyedidia/generic/mapset"

	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

// Reachable counts the cells reachable from start, start included.
// An impassable start reaches nothing.
func Reachable(m maze.Maze, start grid.Coord) int {
	if !m.Passable(start) {
		return 0
	}

	visited := mapset.New[grid.Coord]()
	visited.Put(start)
	queue := []grid.Coord{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range grid.Directions {
			if !m.CanMove(curr, d) {
				continue
			}
			next := curr.Add(d)
			if !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited.Size()
}

// Path returns the shortest walk from start to end, both included, or nil
// when end cannot be reached.
func Path(m maze.Maze, start, end grid.Coord) []grid.Coord {
	if !m.Passable(start) || !m.Passable(end) {
		return nil
	}

	cameFrom := make(map[grid.Coord]grid.Coord)
	visited := mapset.New[grid.Coord]()
	visited.Put(start)
	queue := []grid.Coord{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			// Reconstruct back to front, then reverse in place
			path := []grid.Coord{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range grid.Directions {
			if !m.CanMove(curr, d) {
				continue
			}
			next := curr.Add(d)
			if !visited.Has(next) {
				visited.Put(next)
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
