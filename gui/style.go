package gui

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32
	WarningTextColor  uint32

	// Window frame
	WindowBgColor       uint32
	WindowBorderColor   uint32
	TitleBarColor       uint32
	TitleBarActiveColor uint32
	ResizeGripColor     uint32

	// Buttons
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Selection
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32
	ImageHoveredTint  uint32

	// Checkbox
	CheckboxBgColor   uint32
	CheckboxMarkColor uint32

	SeparatorColor uint32
	BorderColor    uint32 // Column dividers

	// Tooltip
	TooltipBgColor     uint32
	TooltipBorderColor uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // Default vertical gap between items
	WindowPadding float32
	ButtonPadding float32
	SelectablePad float32 // Vertical padding inside a selectable row
	BorderSize    float32
	TitleBarPad   float32
	ResizeGrip    float32
}

// DefaultStyle returns the dark style used by the plugin window.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		WarningTextColor:  RGBA(255, 255, 0, 255),

		WindowBgColor:       RGBA(20, 20, 24, 240),
		WindowBorderColor:   RGBA(80, 80, 80, 255),
		TitleBarColor:       RGBA(40, 40, 45, 255),
		TitleBarActiveColor: RGBA(45, 70, 110, 255),
		ResizeGripColor:     RGBA(70, 110, 170, 200),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),
		ImageHoveredTint:  RGBA(220, 220, 255, 255),

		CheckboxBgColor:   RGBA(40, 40, 40, 255),
		CheckboxMarkColor: RGBA(90, 160, 230, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),
		BorderColor:    RGBA(70, 70, 70, 255),

		TooltipBgColor:     RGBA(15, 15, 15, 245),
		TooltipBorderColor: ColorWhite,

		FontScale:     1.5,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		WindowPadding: 8,
		ButtonPadding: 6,
		SelectablePad: 3,
		BorderSize:    1,
		TitleBarPad:   4,
		ResizeGrip:    12,
	}
}
