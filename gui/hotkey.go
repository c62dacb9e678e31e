package gui

// HotkeyHandler is called when a hotkey is pressed.
type HotkeyHandler func()

// HotkeyCondition returns true if the hotkey may fire.
type HotkeyCondition func() bool

// Hotkey is a registered global shortcut.
type Hotkey struct {
	Name      string // For debugging
	Key       Key
	Handler   HotkeyHandler
	Condition HotkeyCondition // Optional, nil means always
}

// HotkeyRegistry dispatches global shortcuts that are not tied to a widget.
type HotkeyRegistry struct {
	hotkeys []Hotkey
}

// NewHotkeyRegistry creates an empty registry.
func NewHotkeyRegistry() *HotkeyRegistry {
	return &HotkeyRegistry{hotkeys: make([]Hotkey, 0, 8)}
}

// Register adds a hotkey. Registering a name again replaces it.
func (r *HotkeyRegistry) Register(name string, key Key, handler HotkeyHandler) {
	r.RegisterWithCondition(name, key, handler, nil)
}

// RegisterWithCondition adds a hotkey that only fires while condition is true.
func (r *HotkeyRegistry) RegisterWithCondition(name string, key Key, handler HotkeyHandler, condition HotkeyCondition) {
	r.Unregister(name)
	r.hotkeys = append(r.hotkeys, Hotkey{
		Name:      name,
		Key:       key,
		Handler:   handler,
		Condition: condition,
	})
}

// Handle fires the first registered hotkey pressed this frame.
// Returns true if one fired.
func (r *HotkeyRegistry) Handle(input *InputState) bool {
	if input == nil {
		return false
	}
	for i := range r.hotkeys {
		h := &r.hotkeys[i]
		if !input.KeyPressed(h.Key) {
			continue
		}
		if h.Condition != nil && !h.Condition() {
			continue
		}
		guiLogger.Debug("hotkey", "name", h.Name)
		h.Handler()
		return true
	}
	return false
}

// Unregister removes a hotkey by name.
func (r *HotkeyRegistry) Unregister(name string) {
	for i, h := range r.hotkeys {
		if h.Name == name {
			r.hotkeys = append(r.hotkeys[:i], r.hotkeys[i+1:]...)
			return
		}
	}
}

// Clear removes all hotkeys.
func (r *HotkeyRegistry) Clear() {
	r.hotkeys = r.hotkeys[:0]
}
