package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/aetherbox/aetherbox"
	"github.com/aetherbox/aetherbox/backend/opengl"
	"github.com/aetherbox/aetherbox/config"
	"github.com/aetherbox/aetherbox/gui"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, err := config.Open(configPath, logger.Named("config"))
	if err != nil {
		return err
	}
	watcher, err := config.Watch(ctx, store, logger.Named("config"))
	if err != nil {
		// Editing the file by hand just needs a restart then
		logger.Warn("config watcher disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, aetherbox.PluginName, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer,
		gui.WithScale(store.Config().UIScale),
		gui.WithMultiViewport(multiViewport),
	)

	plugin, err := aetherbox.NewPlugin(store,
		opengl.NewTextureLoader(imagesDir, renderer),
		aetherbox.WithLogger(logger.Named("aetherbox")),
	)
	if err != nil {
		return err
	}
	// Textures must go before the GL context does
	defer plugin.Dispose()

	if openOnStart {
		plugin.Window().SetOpen(true)
	}

	frame := aetherbox.NewWindowFrame(100, 100)

	hotkeys := gui.NewHotkeyRegistry()
	hotkeys.Register("toggle main window", gui.KeyF1, plugin.ToggleMainWindow)
	guiDebug := verbose
	hotkeys.Register("toggle gui debug", gui.KeyF12, func() {
		guiDebug = !guiDebug
		gui.SetVerbose(guiDebug)
		logger.Info("gui debug logging", zap.Bool("enabled", guiDebug))
	})

	commands := readCommands(ctx, os.Stdin)
	var changes <-chan config.Config
	if watcher != nil {
		changes = watcher.Changes()
	}

	last := time.Now()
	for !window.ShouldClose() {
		inputAdapter.NewFrame()
		glfw.PollEvents()
		input := inputAdapter.Update()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		// Commands and config edits arrive off the frame thread; apply them here.
		drainCommands(commands, plugin)
		select {
		case cfg := <-changes:
			ui.SetScale(cfg.UIScale)
		default:
		}
		hotkeys.Handle(input)

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		frame.Constrain(displaySize)

		gctx := ui.Begin(input, displaySize, dt)
		if plugin.Window().IsOpen() {
			if frame.Begin(gctx) {
				plugin.Draw(gctx)
				frame.End(gctx)
			} else {
				plugin.Window().SetOpen(false)
			}
		}
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

// readCommands forwards lines from r until ctx is done or r is exhausted.
func readCommands(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string, 8)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func drainCommands(lines <-chan string, plugin *aetherbox.Plugin) {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			if line == "" {
				continue
			}
			if !plugin.HandleCommand(line) {
				logger.Info("unknown command", zap.String("line", line))
			}
		default:
			return
		}
	}
}
