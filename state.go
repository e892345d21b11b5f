package imkit

// ControlState is the per-control UI state kept between frames.
type ControlState struct {
	Open     bool // Dropdown list shown / accordion expanded
	Dragging bool // Slider grab is held
	Edit     EditState
}

// EditState tracks an editable text field.
type EditState struct {
	Editing   bool
	Buffer    string // Text being edited; only meaningful while Editing
	CursorPos int    // In runes
	SelectAll bool   // Next typed character replaces the whole buffer
}

// StateStore maps control identities to their state.
//
// Entries are created on first draw and never removed: the store grows with
// the number of distinct controls, not with frames. It is owned by a Session
// and is not safe for concurrent use.
type StateStore struct {
	states map[ID]*ControlState
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[ID]*ControlState)}
}

// GetOrCreate returns the state for id, inserting a closed entry if none exists.
// The returned pointer stays valid for the store's lifetime.
func (s *StateStore) GetOrCreate(id ID) *ControlState {
	if st, ok := s.states[id]; ok {
		return st
	}
	st := &ControlState{}
	s.states[id] = st
	return st
}

// Lookup returns the state for id without creating it.
func (s *StateStore) Lookup(id ID) (*ControlState, bool) {
	st, ok := s.states[id]
	return st, ok
}

// Toggle flips the open flag for id and returns the new value.
// Later reads in the same frame observe the change.
func (s *StateStore) Toggle(id ID) bool {
	st := s.GetOrCreate(id)
	st.Open = !st.Open
	return st.Open
}

// SetOpen sets the open flag for id.
func (s *StateStore) SetOpen(id ID, open bool) {
	s.GetOrCreate(id).Open = open
}

// IsOpen reports the open flag for id; unknown IDs are closed.
func (s *StateStore) IsOpen(id ID) bool {
	if st, ok := s.states[id]; ok {
		return st.Open
	}
	return false
}

// Len returns the number of stored entries.
func (s *StateStore) Len() int {
	return len(s.states)
}
