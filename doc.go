// Package aetherbox implements the AetherBox main window: a navigable panel
// drawn every frame through the gui toolkit.
//
// The window is a small state machine. Each frame it checks whether it sits
// safely inside the viewport and either shows a "move me" warning or a two
// column layout: a fixed-width navigation column with a header image, one
// selectable per category and a close control, and a body column with the
// selected category's content. Each part draws inside its own failure
// boundary, so a broken section never blanks the whole window.
//
// Plugin owns the window together with its images and the /atb command.
package aetherbox
