package toolchain

import (
	"github.com/shinji-kodama/pyfmt/internal/model"
)

// Default executable names, resolved against PATH.
const (
	DefaultIsortCommand = "isort"
	DefaultBlackCommand = "black"
)

// isortFlags is the fixed isort flag set:
//
//	-n                          ensure newline before comments
//	-l 88 / --wl 88             line length and wrap length (black's default)
//	-m 3                        vertical hanging indent
//	--tc                        trailing commas
//	--fgw 0                     force grid wrap
//	--up                        use parentheses
//	--remove-redundant-aliases  drop "import x as x"
var isortFlags = []string{
	"-n",
	"-l", "88",
	"--wl", "88",
	"-m", "3",
	"--tc",
	"--fgw", "0",
	"--up",
	"--remove-redundant-aliases",
}

// blackFlags is the fixed black flag set: quiet mode only.
var blackFlags = []string{"-q"}

// Tool describes one external formatting tool.
type Tool struct {
	// Name is the display name used in messages.
	Name string

	// Command is the executable to start.
	Command string

	// Flags are the fixed arguments placed before the path list.
	Flags []string
}

// Isort returns the import-sorter tool. An empty command selects the
// default executable name.
func Isort(command string) Tool {
	return newTool("isort", command, DefaultIsortCommand, isortFlags)
}

// Black returns the code-formatter tool. An empty command selects the
// default executable name.
func Black(command string) Tool {
	return newTool("black", command, DefaultBlackCommand, blackFlags)
}

func newTool(name, command, fallback string, flags []string) Tool {
	if command == "" {
		command = fallback
	}
	// Copy so callers cannot mutate the package-level flag sets.
	f := make([]string, len(flags))
	copy(f, flags)
	return Tool{Name: name, Command: command, Flags: f}
}

// Invocation builds the planned run of t over paths.
// The returned Args slice is freshly allocated.
func (t Tool) Invocation(paths model.PathList) model.Invocation {
	args := make([]string, 0, len(t.Flags)+len(paths))
	args = append(args, t.Flags...)
	args = append(args, paths...)
	return model.Invocation{Tool: t.Name, Command: t.Command, Args: args}
}

// Chain returns the tools in the order they must run: sorter, then formatter.
func Chain(isortCommand, blackCommand string) []Tool {
	return []Tool{Isort(isortCommand), Black(blackCommand)}
}

// Plan builds one invocation per tool, in order, each over the same paths.
func Plan(tools []Tool, paths model.PathList) []model.Invocation {
	invs := make([]model.Invocation, 0, len(tools))
	for _, t := range tools {
		invs = append(invs, t.Invocation(paths.Clone()))
	}
	return invs
}
