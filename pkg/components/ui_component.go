package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// UIComponent marks an entity as a UI element belonging to a group.
// Scenes use the group to show or hide related widgets together
// (for example the option buttons of one quiz question).
type UIComponent struct {
	Group  string
	Hidden bool
}
