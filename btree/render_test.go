package btree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestStringOfEmptyAndLeafTree(t *testing.T) {
	tree := makeTree(t, 3)
	if s := tree.String(); s != "" {
		t.Fatalf("expected empty rendering, got %q", s)
	}
	tree.Insert(1, "a")
	if s := tree.String(); s != "" {
		t.Fatalf("expected leaf root to have no edges, got %q", s)
	}
}

func TestToDot(t *testing.T) {
	tree := makeTree(t, 3)
	insertInts(tree, 10, 20, 30)
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("malformed DOT output:\n%s", out)
	}
	for _, want := range []string{
		`"1" [label="20"`,
		`"2" [label="10",style=filled,shape=box];`,
		`"3" [label="30",style=filled,shape=box];`,
		`"1" -> "2";`,
		`"1" -> "3";`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("DOT output lacks %q:\n%s", want, out)
		}
	}
}

func TestToDotEscapesLabels(t *testing.T) {
	tree, _ := New[string, int](3)
	tree.Insert(`say "hi"`, 1)
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	if !strings.Contains(buf.String(), `label="say \"hi\""`) {
		t.Fatalf("label not escaped:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestToDotReportsWriteErrors(t *testing.T) {
	tree := makeTree(t, 3)
	insertInts(tree, 1, 2, 3)
	if err := tree.ToDot(failingWriter{}); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestPrintLevels(t *testing.T) {
	tree := makeTree(t, 3)
	insertInts(tree, 10, 20, 30, 5)
	var buf bytes.Buffer
	if err := tree.Print(&buf, &ConsoleConfig{}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	want := "[20]\n[5 10] [30]\n"
	if buf.String() != want {
		t.Fatalf("unexpected console output %q, want %q", buf.String(), want)
	}
}

func TestPrintTruncatesLongLines(t *testing.T) {
	tree := makeTree(t, 3)
	for k := 1; k <= 15; k++ {
		tree.Insert(k, "")
	}
	var buf bytes.Buffer
	if err := tree.Print(&buf, &ConsoleConfig{LineWidth: 10}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != tree.Height() {
		t.Fatalf("expected %d lines, got %d", tree.Height(), len(lines))
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "[1] [3]") || !strings.HasSuffix(last, " …") {
		t.Fatalf("leaf level not truncated: %q", last)
	}
}

func TestPrintWithColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	tree := makeTree(t, 4)
	insertInts(tree, 1, 2, 3, 4, 5, 6)
	cfg := &ConsoleConfig{
		Root:  color.New(color.FgRed),
		Inner: color.New(color.FgBlue),
		Leaf:  color.New(color.FgGreen),
	}
	var buf bytes.Buffer
	if err := tree.Print(&buf, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[") || strings.Count(buf.String(), "\n") != tree.Height() {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
