package aetherbox

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const (
	PluginName  = "AetherBox"
	CommandName = "/atb"
	commandHelp = "Opens Main Menu"

	HeaderImageName = "icon.png"
	CloseImageName  = "close.png"
)

// Version is the plugin version shown on the Info page.
var Version = "0.1.0"

type pluginOptions struct {
	logger   *zap.Logger
	commands *CommandManager
	metrics  Metrics
	links    []LinkDescription
}

// PluginOption configures NewPlugin.
type PluginOption func(*pluginOptions)

// WithLogger sets the logger for the plugin and its window.
func WithLogger(logger *zap.Logger) PluginOption {
	return func(o *pluginOptions) { o.logger = logger }
}

// WithCommandManager registers the plugin's commands on an existing registry.
func WithCommandManager(m *CommandManager) PluginOption {
	return func(o *pluginOptions) { o.commands = m }
}

// WithPluginMetrics overrides the window layout sizes.
func WithPluginMetrics(m Metrics) PluginOption {
	return func(o *pluginOptions) { o.metrics = m }
}

// WithLinks adds links to the Info page.
func WithLinks(links ...LinkDescription) PluginOption {
	return func(o *pluginOptions) { o.links = append(o.links, links...) }
}

// Plugin owns the main window, its images and the /atb command.
// Construct one at start and Dispose it once at stop.
type Plugin struct {
	logger   *zap.Logger
	config   ConfigStore
	commands *CommandManager
	window   *MainWindow

	disposeOnce sync.Once
}

// NewPlugin loads the window images and registers the /atb command. The
// header image is required; a missing close image only removes the close
// control.
func NewPlugin(cfg ConfigStore, images ImageLoader, opts ...PluginOption) (*Plugin, error) {
	o := pluginOptions{metrics: DefaultMetrics()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.commands == nil {
		o.commands = NewCommandManager()
	}

	header, err := images.Load(HeaderImageName)
	if err != nil {
		return nil, fmt.Errorf("load header image: %w", err)
	}

	var closeImage Image
	if img, err := images.Load(CloseImageName); err == nil {
		closeImage = img
	} else if errors.Is(err, ErrImageNotFound) {
		o.logger.Error("image not found", zap.String("image", CloseImageName), zap.Error(err))
	} else {
		o.logger.Error("failed to load image", zap.String("image", CloseImageName), zap.Error(err))
	}

	p := &Plugin{
		logger:   o.logger,
		config:   cfg,
		commands: o.commands,
	}
	p.window = NewMainWindow(cfg, header, closeImage,
		WithWindowLogger(o.logger),
		WithMetrics(o.metrics),
		WithCategory(Category{
			ID:          CategoryInfo,
			Label:       "Info",
			Description: "About AetherBox and its commands",
			Section: &InfoSection{
				Name:     PluginName,
				Version:  Version,
				Commands: o.commands.Help,
				Links:    o.links,
			},
		}),
		WithCategory(Category{
			ID:          CategorySettings,
			Label:       "Settings",
			Description: "Plugin settings",
			Section:     &SettingsSection{Config: cfg},
		}),
	)

	if err := p.commands.AddHandler(CommandName, commandHelp, p.onCommand); err != nil {
		p.window.Dispose()
		return nil, fmt.Errorf("register %s: %w", CommandName, err)
	}

	if cfg.Config().OpenOnStart {
		p.window.SetOpen(true)
	}
	p.logger.Debug("plugin started", zap.String("name", PluginName), zap.String("version", Version))
	return p, nil
}

// Draw renders the main window contents for one frame.
func (p *Plugin) Draw(s Surface) Frame {
	return p.window.Draw(s)
}

// HandleCommand dispatches a slash command line. Returns false for commands
// nobody registered.
func (p *Plugin) HandleCommand(line string) bool {
	return p.commands.Dispatch(line)
}

// ToggleMainWindow flips the main window's visibility.
func (p *Plugin) ToggleMainWindow() {
	p.window.Toggle()
}

// Window returns the main window.
func (p *Plugin) Window() *MainWindow {
	return p.window
}

// Commands returns the command registry.
func (p *Plugin) Commands() *CommandManager {
	return p.commands
}

// Dispose unregisters the command and releases the window's images.
// Further calls do nothing.
func (p *Plugin) Dispose() {
	p.disposeOnce.Do(func() {
		p.logger.Debug("plugin stopping",
			zap.String("command", CommandName), zap.Bool("open", p.window.IsOpen()))
		p.commands.RemoveHandler(CommandName)
		p.window.Dispose()
	})
}

func (p *Plugin) onCommand(command, _ string) {
	open := p.window.Toggle()
	p.logger.Debug(command+" -> Mainwindow", zap.Bool("open", open))
}
