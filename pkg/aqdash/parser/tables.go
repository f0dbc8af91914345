package parser

// dataRegion returns the rows of the bounding box of non-empty cells,
// trimmed to its columns, and the 0-based index of its first row.
// It returns nil when every cell is empty.
func dataRegion(rows [][]string) ([][]string, int) {
	first, last := -1, -1
	left, right := -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if first < 0 {
				first = rowIdx
			}
			last = rowIdx
			if left < 0 || colIdx < left {
				left = colIdx
			}
			if colIdx > right {
				right = colIdx
			}
		}
	}
	if first < 0 {
		return nil, 0
	}

	region := make([][]string, 0, last-first+1)
	for _, row := range rows[first : last+1] {
		cells := make([]string, right-left+1)
		if left < len(row) {
			copy(cells, row[left:min(len(row), right+1)])
		}
		region = append(region, cells)
	}
	return region, first
}

// isBlank reports whether every cell of a row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
