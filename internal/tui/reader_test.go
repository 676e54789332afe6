package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNewReader_NonTTYReturnsPlain(t *testing.T) {
	r := NewReader(ReaderOptions{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	if _, ok := r.(*PlainReader); !ok {
		t.Errorf("NewReader(non-TTY) = %T, want *PlainReader", r)
	}
}

func TestPlainReader_ReadsLinesThenEOF(t *testing.T) {
	// Given: two lines of input, the last without a newline
	var out bytes.Buffer
	r := NewPlainReader(strings.NewReader("hello\nadd John  0671111111"), &out, "Enter a command: ")
	ctx := context.Background()

	// When: reading until EOF
	var lines []string
	for {
		line, err := r.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		lines = append(lines, line)
	}

	// Then: both lines are returned verbatim and the prompt shown before each read
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "add John  0671111111" {
		t.Errorf("lines = %q", lines)
	}
	if got := strings.Count(out.String(), "Enter a command: "); got != 3 {
		t.Errorf("prompt shown %d times, want 3", got)
	}
}

func TestPlainReader_NoPromptWithoutWriter(t *testing.T) {
	r := NewPlainReader(strings.NewReader("all\n"), nil, "> ")

	line, err := r.ReadLine(context.Background())
	if err != nil || line != "all" {
		t.Errorf("ReadLine() = (%q, %v), want (\"all\", nil)", line, err)
	}
}

func TestPlainReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewPlainReader(strings.NewReader("all\n"), nil, "")

	if _, err := r.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadLine() error = %v, want context.Canceled", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestPlainReader_ReadError(t *testing.T) {
	r := NewPlainReader(failingReader{}, nil, "")

	_, err := r.ReadLine(context.Background())
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, want a read error", err)
	}
}
