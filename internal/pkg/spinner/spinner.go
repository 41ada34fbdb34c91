package spinner

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yarlson/pin"
	"golang.org/x/term"

	"github.com/project-devenv/devenv/internal/pkg/logger"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))

// Spinner wraps pin with a plain-log fallback for non-interactive output.
type Spinner struct {
	pin    *pin.Pin
	cancel context.CancelFunc
	msg    string
	tty    bool
}

func New(msg string) *Spinner {
	s := &Spinner{
		msg: msg,
		tty: term.IsTerminal(int(os.Stdout.Fd())),
	}

	if s.tty {
		s.pin = pin.New(msg, pin.WithSpinnerColor(pin.ColorCyan))
	}

	return s
}

func (s *Spinner) Start(ctx context.Context) {
	if !s.tty {
		logger.Infoln(s.msg)

		return
	}

	s.cancel = s.pin.Start(ctx)
}

func (s *Spinner) UpdateMessage(msg string) {
	s.msg = msg
	if s.tty {
		s.pin.UpdateMessage(msg)

		return
	}

	logger.Infoln(msg)
}

func (s *Spinner) Stop(msg string) {
	if !s.tty {
		logger.Infoln(msg)

		return
	}

	s.pin.Stop(msg)
	s.release()
}

func (s *Spinner) Fail(msg string) {
	if !s.tty {
		logger.Errorln(msg)

		return
	}

	s.pin.Fail(msg)
	s.release()
}

// StopWithHint prints a remediation hint below the failed spinner line.
func (s *Spinner) StopWithHint(msg, hint string) {
	if hint == "" {
		return
	}

	logger.Infoln(hintStyle.Render("  hint: " + hint))
}

func (s *Spinner) release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
