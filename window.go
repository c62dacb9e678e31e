package aetherbox

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aetherbox/aetherbox/gui"
)

// Window frame defaults.
const (
	WindowTitle = "AetherBox Menu"

	columnsID     = "AetherBox Config Table"
	closeButtonID = "AetherBox Close"

	// degradedFontScale renders the warning at 24px with the 8px font.
	degradedFontScale = 3
)

var (
	DefaultWindowSize = gui.Vec2{X: 300, Y: 500}
	MinWindowSize     = gui.Vec2{X: 250, Y: 300}
	MaxWindowSize     = gui.Vec2{X: 5000, Y: 5000}
)

// degradedMessage is shown instead of the window contents while the window
// is not safely inside the viewport.
var degradedMessage = strings.Repeat("Move Screen!", 150)

// NewWindowFrame returns the draggable frame the main window is drawn in.
func NewWindowFrame(x, y float32) *gui.Window {
	win := gui.NewWindow(WindowTitle, x, y, DefaultWindowSize.X, DefaultWindowSize.Y)
	win.MinSize = MinWindowSize
	win.MaxSize = MaxWindowSize
	win.CloseOnEscape = true
	return win
}

// Mode is the branch a frame was drawn in.
type Mode int

const (
	ModeClosed Mode = iota
	ModeDegraded
	ModeNormal
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeDegraded:
		return "degraded"
	case ModeNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Frame reports what one call to Draw did.
type Frame struct {
	Mode     Mode
	Sections []SectionResult
}

// Section returns the result for the named section, if it was drawn.
func (f Frame) Section(name string) (SectionResult, bool) {
	for _, r := range f.Sections {
		if r.Name == name {
			return r, true
		}
	}
	return SectionResult{}, false
}

// Failed returns the sections that failed.
func (f Frame) Failed() []SectionResult {
	var failed []SectionResult
	for _, r := range f.Sections {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// MainWindow is the AetherBox main window controller. It is not safe for
// concurrent use; all methods run on the frame thread.
type MainWindow struct {
	logger     *zap.Logger
	config     ConfigStore
	metrics    Metrics
	header     Image
	closeImage Image

	categories []Category
	selection  *Selection

	open     bool
	lastMode Mode
	disposed bool
}

// WindowOption configures a MainWindow.
type WindowOption func(*MainWindow)

// WithWindowLogger sets the logger. The default discards everything.
func WithWindowLogger(logger *zap.Logger) WindowOption {
	return func(w *MainWindow) { w.logger = logger }
}

// WithMetrics overrides the layout sizes.
func WithMetrics(m Metrics) WindowOption {
	return func(w *MainWindow) { w.metrics = m }
}

// WithCategory appends a navigation category.
func WithCategory(c Category) WindowOption {
	return func(w *MainWindow) { w.categories = append(w.categories, c) }
}

// NewMainWindow creates a closed window. header is drawn at the top of the
// navigation column; closeImage may be nil, in which case there is no close
// control. The window takes ownership of both images.
func NewMainWindow(cfg ConfigStore, header, closeImage Image, opts ...WindowOption) *MainWindow {
	w := &MainWindow{
		logger:     zap.NewNop(),
		config:     cfg,
		metrics:    DefaultMetrics(),
		header:     header,
		closeImage: closeImage,
	}
	for _, opt := range opts {
		opt(w)
	}
	ids := make([]CategoryID, len(w.categories))
	for i, c := range w.categories {
		ids[i] = c.ID
	}
	w.selection = NewSelection(ids...)
	return w
}

// IsOpen reports whether the window is visible.
func (w *MainWindow) IsOpen() bool {
	return w.open
}

// SetOpen shows or hides the window. Hiding an open window saves the
// configuration.
func (w *MainWindow) SetOpen(open bool) {
	if w.open && !open {
		if err := w.config.Save(); err != nil {
			w.logger.Warn("failed to save config on close", zap.Error(err))
		}
	}
	w.open = open
}

// Toggle flips visibility and returns the new state.
func (w *MainWindow) Toggle() bool {
	w.SetOpen(!w.open)
	return w.open
}

// Selection returns the category selection.
func (w *MainWindow) Selection() *Selection {
	return w.selection
}

// Dispose releases the window's images. Further calls do nothing.
func (w *MainWindow) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	if w.header != nil {
		w.header.Release()
	}
	if w.closeImage != nil {
		w.closeImage.Release()
	}
}

// Draw renders one frame of the window contents onto s.
func (w *MainWindow) Draw(s Surface) Frame {
	if !w.open {
		w.setMode(ModeClosed)
		return Frame{Mode: ModeClosed}
	}

	frame := Frame{Mode: ModeNormal}
	if SampleGeometry(s).OutOfBounds(s.MultiViewportEnabled()) {
		frame.Mode = ModeDegraded
	}
	w.setMode(frame.Mode)

	res := isolate(SectionWindow, func() error {
		if frame.Mode == ModeDegraded {
			s.TextWrappedColored(degradedMessage, gui.ColorYellow, degradedFontScale)
			return nil
		}
		w.drawColumns(s, &frame)
		return nil
	})
	frame.Sections = append(frame.Sections, res)

	for _, r := range frame.Failed() {
		w.logger.Warn("section failed", zap.String("section", r.Name), zap.Error(r.Err))
	}
	return frame
}

func (w *MainWindow) setMode(m Mode) {
	if m != w.lastMode {
		w.logger.Debug("main window mode changed",
			zap.Stringer("from", w.lastMode), zap.Stringer("to", m))
		w.lastMode = m
	}
}

func (w *MainWindow) drawColumns(s Surface, frame *Frame) {
	m := w.metrics.Scaled(s.Scale())
	if !s.BeginColumns(columnsID, m.NavWidth) {
		return
	}
	defer s.EndColumns()

	plan := LayoutPlan{NavWidth: m.NavWidth}
	add := func(r SectionResult) { frame.Sections = append(frame.Sections, r) }

	add(isolate(SectionHeader, func() error { return w.drawHeader(s, m, &plan) }))

	s.Spacing(s.ItemSpacing())
	s.Separator()
	s.Spacing(s.ItemSpacing())

	add(isolate(SectionNavigation, func() error { return w.drawNavigation(s) }))
	if w.closeImage != nil {
		add(isolate(SectionClose, func() error { return w.drawClose(s, m, &plan) }))
	}

	s.NextColumn()
	add(RenderSection(s, w.selection, w.categories))
}

func (w *MainWindow) drawHeader(s Surface, m Metrics, plan *LayoutPlan) error {
	if w.header == nil {
		return nil
	}
	plan.PlanHeader(m, s.ContentAvail().X, w.header.Size())
	cur := s.CursorPos()
	s.SetCursorPos(cur.X+plan.HeaderOffsetX, cur.Y)
	s.Image(w.header.TextureID(), plan.HeaderSize)
	return nil
}

func (w *MainWindow) drawNavigation(s Surface) error {
	showTooltips := w.config.Config().ShowTooltips
	for _, c := range w.categories {
		if s.Selectable(c.Label, w.selection.IsOpen(c.ID)) {
			w.selection.Toggle(c.ID)
		}
		if showTooltips && c.Description != "" && s.ItemHovered() {
			s.Tooltip(c.Description)
		}
	}
	return nil
}

func (w *MainWindow) drawClose(s Surface, m Metrics, plan *LayoutPlan) error {
	plan.PlanClose(m, s.ContentAvail().X, s.WindowSize().Y, s.ItemSpacing())
	s.SetCursorPos(plan.ClosePos.X, plan.ClosePos.Y)

	size := gui.Vec2{X: plan.CloseSize, Y: plan.CloseSize}
	if !s.ImageButton(closeButtonID, w.closeImage.TextureID(), size) {
		return nil
	}
	// Closing here saves directly; SetOpen would save a second time.
	w.open = false
	if err := w.config.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	w.logger.Info("Settings have been saved.")
	return nil
}
