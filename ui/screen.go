package ui

// Screen is the typed content of one menu frame, read by the renderer
type Screen struct {
	Title string
	Body  []string
	Items []Item
	// Hint is a dim line under the items
	Hint string
	// Light screens are drawn dark-on-light (dawn)
	Light bool
}

// Item is one selectable row
type Item struct {
	Label    string
	Value    string
	Selected bool
	Disabled bool
	// Accent marks cheat rows and the error state of the code field
	Accent bool
}

// Selected returns the highlighted row, or nil
func (s *Screen) Selected() *Item {
	if s == nil {
		return nil
	}
	for i := range s.Items {
		if s.Items[i].Selected {
			return &s.Items[i]
		}
	}
	return nil
}
