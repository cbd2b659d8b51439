// Package content loads the lines a session pages through.
package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"scrollpage/internal/domain"
)

// DefaultTabWidth is used when Options.TabWidth is not positive
const DefaultTabWidth = 8

// ErrNoInput means there was nothing to page
var ErrNoInput = errors.New("no input")

// Origin says where content came from
type Origin int

const (
	OriginStdin Origin = iota
	OriginFile
	OriginText
)

func (o Origin) String() string {
	switch o {
	case OriginStdin:
		return "stdin"
	case OriginFile:
		return "file"
	default:
		return "text"
	}
}

// Options control line normalisation
type Options struct {
	TabWidth int
}

func (o Options) tabWidth() int {
	if o.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return o.TabWidth
}

// Load picks the content source: piped stdin first, then the first
// argument as a file path, then the argument itself as literal text.
func Load(stdin io.Reader, piped bool, args []string, opts Options) (*domain.Content, Origin, error) {
	if piped {
		lines, err := Read(stdin, opts)
		if err != nil {
			return nil, OriginStdin, fmt.Errorf("failed to read stdin: %w", err)
		}
		return nonEmpty(lines, OriginStdin)
	}

	if len(args) == 0 {
		return nil, OriginText, ErrNoInput
	}
	arg := args[0]

	f, err := os.Open(arg)
	if err != nil {
		// Anything that cannot be opened is literal text
		log.Printf("Treating argument as text: %v", err)
		lines, _ := Read(strings.NewReader(arg), opts)
		return nonEmpty(lines, OriginText)
	}
	defer f.Close()

	lines, err := readFile(f, opts)
	if err != nil {
		return nil, OriginFile, err
	}
	return nonEmpty(lines, OriginFile)
}

func nonEmpty(lines []string, origin Origin) (*domain.Content, Origin, error) {
	if len(lines) == 0 {
		return nil, origin, ErrNoInput
	}
	return domain.NewContent(lines), origin, nil
}

// ErrIsDirectory is returned for a directory argument
var ErrIsDirectory = errors.New("is a directory")

// ReadFile reads the lines of a file
func ReadFile(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return readFile(f, opts)
}

func readFile(f *os.File, opts Options) ([]string, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", f.Name(), err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name(), ErrIsDirectory)
	}

	lines, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name(), err)
	}
	return lines, nil
}

// Read splits r into lines. Line endings (LF or CRLF) are dropped, a final
// line without a newline is kept and tabs are expanded.
func Read(r io.Reader, opts Options) ([]string, error) {
	br := bufio.NewReader(r)
	width := opts.tabWidth()

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, ExpandTabs(line, width))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// ExpandTabs replaces each tab with spaces up to the next tab stop,
// counting display cells
func ExpandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if width <= 0 {
		width = DefaultTabWidth
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
