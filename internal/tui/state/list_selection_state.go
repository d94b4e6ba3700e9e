package state

// ListSelection tracks the highlighted row and scroll window of a list screen.
type ListSelection struct {
	selectedRow  int
	scrollOffset int
}

func NewListSelection() *ListSelection {
	return &ListSelection{}
}

// SelectedRow returns the index of the highlighted row.
func (s *ListSelection) SelectedRow() int {
	return s.selectedRow
}

// ScrollOffset returns the first visible row.
func (s *ListSelection) ScrollOffset() int {
	return s.scrollOffset
}

// MoveUp moves the selection up one row if possible.
func (s *ListSelection) MoveUp() {
	if s.selectedRow > 0 {
		s.selectedRow--
	}
	if s.selectedRow < s.scrollOffset {
		s.scrollOffset = s.selectedRow
	}
}

// MoveDown moves the selection down one row if possible, scrolling so the
// selection stays inside a window of visible rows.
func (s *ListSelection) MoveDown(rows, visible int) {
	if rows > 0 && s.selectedRow < rows-1 {
		s.selectedRow++
	}
	if visible > 0 && s.selectedRow >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedRow - visible + 1
	}
}

// Clamp keeps the selection inside [0, rows) after the list is reloaded.
func (s *ListSelection) Clamp(rows int) {
	if rows == 0 {
		s.selectedRow = 0
		s.scrollOffset = 0
		return
	}
	if s.selectedRow >= rows {
		s.selectedRow = rows - 1
	}
	if s.scrollOffset > s.selectedRow {
		s.scrollOffset = s.selectedRow
	}
}

// Reset returns to the first row.
func (s *ListSelection) Reset() {
	s.selectedRow = 0
	s.scrollOffset = 0
}
