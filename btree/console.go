package btree

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleConfig controls the console output of Print.
type ConsoleConfig struct {
	LineWidth int          // lines are truncated to this many characters; 0 means no limit
	Root      *color.Color // color for the root node
	Inner     *color.Color // color for inner nodes
	Leaf      *color.Color // color for leaf nodes
}

// ConsoleConfigFromTerminal is a simple helper for creating a ConsoleConfig.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets LineWidth accordingly. Colors are set to a default palette.
func ConsoleConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{
		Root:  color.New(color.FgRed, color.Bold),
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgGreen),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	}
	tracer().Debugf("btree console: setting line width to %d", config.LineWidth)
	return config
}

// Print renders the tree to w, one line per level, e.g.
//
//	[20]
//	[5 10] [30]
//
// If config is nil, a configuration is derived from the current terminal
// (see ConsoleConfigFromTerminal).
func (t *Tree[K, V]) Print(w io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = ConsoleConfigFromTerminal()
	}
	var lines [][]*node[K, V]
	t.levelOrder(func(n *node[K, V], depth int) {
		if depth == len(lines) {
			lines = append(lines, nil)
		}
		lines[depth] = append(lines[depth], n)
	})
	for depth, level := range lines {
		width := 0
		for i, n := range level {
			text := "[" + strings.ReplaceAll(n.label(), ",", " ") + "]"
			sep := ""
			if i > 0 {
				sep = " "
			}
			if config.LineWidth > 0 && width+len(sep)+len(text) > config.LineWidth {
				if _, err := io.WriteString(w, " …"); err != nil {
					return err
				}
				break
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
			width += len(sep) + len(text)
			c := config.Leaf
			if depth == 0 {
				c = config.Root
			} else if !n.isLeaf() {
				c = config.Inner
			}
			if err := writeColored(w, c, text); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeColored(w io.Writer, c *color.Color, s string) error {
	if c == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := c.Fprint(w, s)
	return err
}
