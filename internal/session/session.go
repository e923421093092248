package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AbrarS242/csv-analyser/internal/command"
	"github.com/AbrarS242/csv-analyser/internal/engine"
)

const (
	prompt   = "> "
	farewell = "\nTa daa!!!\n"
)

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Session reads commands one line at a time and runs each to completion
// before reading the next.
type Session struct {
	eng    *engine.Engine
	in     *command.Reader
	out    io.Writer
	prompt string
	log    *logrus.Entry
}

// New creates a session. When styled is set the prompt is rendered with
// terminal colours; it should only be set for an interactive terminal.
func New(eng *engine.Engine, in io.Reader, out io.Writer, styled bool, log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	p := prompt
	if styled {
		p = promptStyle.Render(prompt)
	}

	return &Session{
		eng:    eng,
		in:     command.NewReader(in),
		out:    out,
		prompt: p,
		log:    log,
	}
}

// Run processes commands until the input is exhausted.
func (s *Session) Run() error {
	ncols := s.eng.Table().Cols()

	for {
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return errors.Wrap(err, "write prompt")
		}

		line, err := s.in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read command")
		}

		cmd, errs := command.Parse(line, ncols)
		for _, e := range errs {
			s.log.WithField("line", line).Debug(e)
			if _, err := fmt.Fprintln(s.out, e); err != nil {
				return errors.Wrap(err, "write")
			}
		}

		if err := s.eng.Execute(cmd); err != nil {
			return err
		}
	}

	_, err := io.WriteString(s.out, farewell)
	return errors.Wrap(err, "write")
}
