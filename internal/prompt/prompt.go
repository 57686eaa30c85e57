// Package prompt reads interactive confirmations from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Confirmer asks the operator a question and returns the raw response line.
type Confirmer interface {
	Confirm(question string) (string, error)
}

// LineConfirmer prints a question and blocks until one line of input arrives.
// There is no timeout.
type LineConfirmer struct {
	in  *bufio.Reader
	raw io.Reader
	out io.Writer
}

// NewLineConfirmer creates a confirmer reading from in and prompting on out.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), raw: in, out: out}
}

// Confirm writes question followed by a newline and reads a single line.
// End of input with nothing typed is an empty response, not an error.
func (c *LineConfirmer) Confirm(question string) (string, error) {
	if _, err := fmt.Fprintln(c.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// IsInteractive reports whether input comes from a terminal.
func (c *LineConfirmer) IsInteractive() bool {
	if file, ok := c.raw.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// Scripted replays canned responses, in order. Once they run out it
// answers with the empty string.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	Questions []string
	Err       error
}

// NewScripted creates a Scripted confirmer.
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

func (s *Scripted) Confirm(question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Questions = append(s.Questions, question)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r, nil
}
