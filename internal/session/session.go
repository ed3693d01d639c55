// Package session drives a size tree through text commands, one per line,
// the way the interactive explorer does through key presses.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"size-explorer/internal/logging"
	"size-explorer/internal/tree"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNodeNotFound   = errors.New("node not found")
	ErrNoSelection    = errors.New("no node selected")
	ErrBadArgument    = errors.New("bad argument")
)

// Help lists the supported commands.
const Help = `check <id>      include a node in the totals
uncheck <id>    exclude a node from the totals
toggle [id]     flip checked on the node, or on the selection
expand <id>     show a node's children as separate slices
collapse <id>   fold a node's children into one slice
hide <id>       hide a node from the tree and the chart
show <id>       undo hide
select <id>     move the selection
filter <mb>     hide nodes smaller than <mb>
preset <n>      apply the n-th configured filter preset
clear           remove the size filter
depth <n>       expand every directory above depth n`

type Session struct {
	forest  *tree.Forest
	presets []float64
}

// New wraps f and selects the first root.
func New(f *tree.Forest, presets []float64) *Session {
	s := &Session{forest: f, presets: presets}
	if roots := f.Roots(); len(roots) > 0 {
		f.Select(roots[0])
	}
	return s
}

func (s *Session) Forest() *tree.Forest {
	return s.forest
}

// Apply runs a single command line.
func (s *Session) Apply(line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "check", "uncheck":
		n, err := s.find(arg)
		if err != nil {
			return err
		}
		s.forest.SetChecked(n, cmd == "check")
	case "toggle":
		n, err := s.target(arg)
		if err != nil {
			return err
		}
		s.forest.SetChecked(n, !n.Checked())
	case "expand", "collapse":
		n, err := s.find(arg)
		if err != nil {
			return err
		}
		s.forest.SetExpanded(n, cmd == "expand")
	case "hide", "show":
		n, err := s.find(arg)
		if err != nil {
			return err
		}
		s.forest.SetVisible(n, cmd == "show")
	case "select":
		n, err := s.find(arg)
		if err != nil {
			return err
		}
		s.forest.Select(n)
	case "filter":
		mb, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: filter size %q", ErrBadArgument, arg)
		}
		s.forest.FilterBySize(mb)
	case "preset":
		i, err := strconv.Atoi(arg)
		if err != nil || i < 1 || i > len(s.presets) {
			return fmt.Errorf("%w: preset %q (have %d)", ErrBadArgument, arg, len(s.presets))
		}
		s.forest.FilterBySize(s.presets[i-1])
	case "clear":
		s.forest.FilterBySize(-1)
	case "depth":
		d, err := strconv.Atoi(arg)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: depth %q", ErrBadArgument, arg)
		}
		s.forest.ExpandToDepth(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	logging.Debug("applied command", logging.String("command", cmd), logging.String("arg", arg))
	return nil
}

// Run applies every command read from r. Blank lines and lines starting
// with # are skipped. A failing command is reported to w and does not stop
// the run. It returns the number of commands applied.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	applied := 0
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := s.Apply(line); err != nil {
			logging.Warn("command failed", logging.Int("line", lineNo), logging.Err(err))
			fmt.Fprintf(w, "line %d: %v\n", lineNo, err)
			continue
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("failed to read commands: %w", err)
	}
	return applied, nil
}

func (s *Session) find(id string) (*tree.Node, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing node id", ErrBadArgument)
	}
	n := s.forest.Find(id)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

func (s *Session) target(id string) (*tree.Node, error) {
	if id != "" {
		return s.find(id)
	}
	if n := s.forest.Selection(); n != nil {
		return n, nil
	}
	return nil, ErrNoSelection
}
