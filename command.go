package aetherbox

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// CommandHandler runs a slash command. args is the text after the command
// name with surrounding space trimmed.
type CommandHandler func(command, args string)

// CommandInfo describes a registered command.
type CommandInfo struct {
	Name string
	Help string
}

type commandEntry struct {
	info    CommandInfo
	handler CommandHandler
}

// CommandManager is a registry of slash commands such as "/atb".
// It is safe for concurrent use; handlers run on the caller's goroutine.
type CommandManager struct {
	mu       sync.RWMutex
	commands map[string]commandEntry
}

// NewCommandManager creates an empty registry.
func NewCommandManager() *CommandManager {
	return &CommandManager{commands: make(map[string]commandEntry)}
}

// AddHandler registers a command. name must start with "/".
func (m *CommandManager) AddHandler(name, help string, fn CommandHandler) error {
	if !strings.HasPrefix(name, "/") || len(name) < 2 || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.commands[name]; ok {
		return fmt.Errorf("command %s already registered", name)
	}
	m.commands[name] = commandEntry{info: CommandInfo{Name: name, Help: help}, handler: fn}
	return nil
}

// RemoveHandler unregisters a command. Reports whether it was registered.
func (m *CommandManager) RemoveHandler(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.commands[name]; !ok {
		return false
	}
	delete(m.commands, name)
	return true
}

// Dispatch runs the command in line, e.g. "/atb" or "/atb some args".
// Returns false when line is not a registered command.
func (m *CommandManager) Dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return false
	}
	name, args, _ := strings.Cut(line, " ")

	m.mu.RLock()
	entry, ok := m.commands[name]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	entry.handler(name, strings.TrimSpace(args))
	return true
}

// Help returns the registered commands sorted by name.
func (m *CommandManager) Help() []CommandInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]CommandInfo, 0, len(m.commands))
	for _, e := range m.commands {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b CommandInfo) int { return strings.Compare(a.Name, b.Name) })
	return infos
}
