// Package shell implements the interactive command loop that drives a
// registry. The loop reads one command per line, dispatches to the bound
// handlers, and never terminates on a domain error — only on exit or EOF.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbassse/kartoteka/internal/log"
)

// UnknownCommandError reports unrecognized command input.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s -> unknown command", e.Command)
}

// Command binds one shell command name to its handler. Args receives the
// whitespace-split tokens after the command name.
type Command struct {
	Name    string
	Usage   string // e.g. "filter <month>"
	Summary string
	MinArgs int
	Run     func(args []string) error
}

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Shell runs a line-oriented command loop over an injected reader/writer
// pair. It assumes a single caller; nothing here is safe for concurrent use.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
	title  string
	cmds   []Command
}

// New creates a shell with no commands bound yet.
func New(in io.Reader, out io.Writer, logger *log.Logger, title string) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		title:  title,
	}
}

// Bind appends commands to the dispatch table.
func (s *Shell) Bind(cmds ...Command) {
	s.cmds = append(s.cmds, cmds...)
}

// Run executes the command loop until exit or EOF.
func (s *Shell) Run() error {
	s.println(bannerStyle.Render(s.title))
	s.println("Type 'help' for the command list, 'exit' to quit.")
	s.logger.Info(log.CatShell, "session started", "title", s.title)

	for {
		s.print(promptStyle.Render(">>> "))
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			// EOF with nothing pending behaves like exit.
			s.println("")
			s.logger.Info(log.CatShell, "session ended on EOF")
			return nil
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		name := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch name {
		case "exit":
			s.println("Bye.")
			s.logger.Info(log.CatShell, "session ended by user")
			return nil
		case "help":
			s.printHelp()
			continue
		}

		cmd, ok := s.lookup(name)
		if !ok {
			s.reportError(&UnknownCommandError{Command: tokens[0]})
			continue
		}
		if len(args) < cmd.MinArgs {
			s.printf("Usage: %s\n", cmd.Usage)
			continue
		}
		if runErr := cmd.Run(args); runErr != nil {
			s.reportError(runErr)
		}

		// The line itself arrived with EOF; nothing more to read.
		if err != nil {
			s.logger.Info(log.CatShell, "session ended on EOF")
			return nil
		}
	}
}

func (s *Shell) lookup(name string) (Command, bool) {
	for _, c := range s.cmds {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

func (s *Shell) printHelp() {
	s.println(bannerStyle.Render("Available commands:"))
	for _, c := range s.cmds {
		s.printf("  %-16s %s\n", c.Usage, c.Summary)
	}
	s.printf("  %-16s %s\n", "help", "show this help")
	s.printf("  %-16s %s\n", "exit", "quit the program")
	s.logger.Info(log.CatShell, "help displayed")
}

func (s *Shell) reportError(err error) {
	s.println(errorStyle.Render("Error: " + err.Error()))
	s.logger.ErrorErr(log.CatShell, "command failed", err)
}

func (s *Shell) print(msg string)   { _, _ = io.WriteString(s.out, msg) }
func (s *Shell) println(msg string) { _, _ = io.WriteString(s.out, msg+"\n") }

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) success(msg string) {
	s.println(successStyle.Render(msg))
}

// reportLoad prints the standard load summary, flagging skipped entries.
func (s *Shell) reportLoad(path string, loaded, skipped int) {
	s.success(fmt.Sprintf("Loaded %d records from %s", loaded, path))
	if skipped > 0 {
		s.println(errorStyle.Render(fmt.Sprintf("Skipped %d malformed entries", skipped)))
	}
}

// promptString asks for a non-empty line, re-prompting on blank input.
// Returns io.EOF when input runs out mid-collection.
func (s *Shell) promptString(label string) (string, error) {
	for {
		s.print(label + ": ")
		line, err := s.in.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if err != nil {
			return "", io.EOF
		}
		s.println("Value cannot be empty.")
	}
}

// promptInt asks for an integer, re-prompting on unparsable input.
func (s *Shell) promptInt(label string) (int, error) {
	for {
		raw, err := s.promptString(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n, nil
		}
		s.println("Value must be a number.")
	}
}

// promptIntInRange asks for an integer within [lo, hi].
func (s *Shell) promptIntInRange(label string, lo, hi int) (int, error) {
	for {
		n, err := s.promptInt(label)
		if err != nil {
			return 0, err
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		s.printf("Value must be between %d and %d.\n", lo, hi)
	}
}

// EnsureExtension appends ext when name does not already end with it.
func EnsureExtension(name, ext string) string {
	if !strings.HasSuffix(name, ext) {
		return name + ext
	}
	return name
}
