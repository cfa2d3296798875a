package evalex

// CheckParens checks that the parentheses in src balance. It returns a
// *BracketError for the first ) with no open (, or otherwise for the first (
// that is never closed. Other characters, valid or not, are ignored.
func CheckParens(src string) error {
	var open []int
	col := 0
	for _, r := range src {
		col++
		switch r {
		case '(':
			open = append(open, col)
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: col, Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &BracketError{Col: open[0], Left: "("}
	}
	return nil
}
