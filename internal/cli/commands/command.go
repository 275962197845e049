package commands

import (
	"Catalog/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <email> <password>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// sectioned — необязательный интерфейс: команда сама называет свой раздел справки.
type sectioned interface {
	Section() string
}

// sectionOrder — порядок разделов в справке. Команды без раздела попадают в "Other".
var sectionOrder = []string{"Account", "Catalog", "Blocking", "Other"}

func sectionOf(c Command) string {
	if s, ok := c.(sectioned); ok {
		return s.Section()
	}
	return "Other"
}

// FormatGlobalUsage builds a help text for all commands grouped by section.
func FormatGlobalUsage() string {
	lines := []string{
		"Catalog CLI",
		"",
		"Usage:",
		"  catalogctl [--base-url <host:port>] <command> [args]",
	}
	bySection := map[string][]Command{}
	for _, c := range List() {
		bySection[sectionOf(c)] = append(bySection[sectionOf(c)], c)
	}
	for _, section := range sectionOrder {
		cmds := bySection[section]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, "", section+" commands:")
		for _, c := range cmds {
			lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
