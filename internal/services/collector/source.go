package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineSource yields one operator line per call, showing prompt first.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// ScannerSource reads lines from any reader and echoes prompts to out.
// It serves piped stdin and scripted tests. Lines have no length limit.
type ScannerSource struct {
	r   *bufio.Reader
	out io.Writer
}

func NewScannerSource(in io.Reader, out io.Writer) *ScannerSource {
	if out == nil {
		out = io.Discard
	}
	return &ScannerSource{r: bufio.NewReader(in), out: out}
}

func (s *ScannerSource) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	line, err := s.r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrInputClosed
		}
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadlineSource reads from an interactive terminal with line editing.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens a readline instance on the process terminal. History stays in memory.
func NewReadlineSource() (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("readline init: %w", err)
	}
	return &ReadlineSource{rl: rl}, nil
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd uintptr) bool {
	return readline.IsTerminal(int(fd))
}

func (r *ReadlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("readline: %w", err)
	}
	return line, nil
}

func (r *ReadlineSource) Close() error {
	return r.rl.Close()
}
