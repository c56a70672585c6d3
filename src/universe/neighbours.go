package universe

//CountNeighbours counts the live cells among 8 cells around x,y
//cells outside the area are dead, the area doesn't wrap around
func CountNeighbours(a Area, x int, y int) int {
	liveNeighbours := 0
	for j := -1; j < 2; j++ {
		ny := y + j
		//skip rows outside the area
		if ny < 0 || ny >= a.Height {
			continue
		}
		row := a.Cells[ny*a.Width : (ny+1)*a.Width]
		for i := -1; i < 2; i++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			if nx < 0 || nx >= a.Width {
				continue
			}
			if row[nx] {
				liveNeighbours++
			}
		}
	}
	return liveNeighbours
}

//cellNextState calculates the next state for the cell x,y of the area
func cellNextState(a Area, r *RuleSet, x int, y int) Cell {
	return Cell(r.NextState(bool(a.Cells[y*a.Width+x]), CountNeighbours(a, x, y)))
}
