package render

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andyrewlee/vtmux/internal/pty"
	"github.com/andyrewlee/vtmux/internal/safego"
	"github.com/andyrewlee/vtmux/internal/vt"
)

// frameInterval is the period of the repaint tick, grounded on the teacher's
// ptyFrameInterval in internal/ui/sidebar. Pty output is fed to the screen
// as it arrives, independent of this tick.
const frameInterval = 16 * time.Millisecond

const (
	ptyReadBufferSize = 4096
	ptyReadQueueSize  = 64
)

type frameMsg struct{}

type ptyDataMsg struct{ chunk []byte }

type ptyClosedMsg struct{ err error }

// Model is a bubbletea program that owns one pty-backed vt.Screen and
// repaints it on a fixed tick, grounded on the teacher's sidebar terminal
// pane (internal/ui/sidebar/terminal.go + terminal_pty_reader.go).
type Model struct {
	screen *vt.Screen
	term   *pty.Terminal

	width, height int

	dataCh chan []byte
	errCh  chan error

	title string
}

// New starts shell inside dir and returns a Model ready to run under
// tea.NewProgram. width/height size both the pty and the vt.Screen.
func New(shell, dir string, width, height int) (*Model, error) {
	term, err := pty.Start(shell, dir, nil, uint16(height), uint16(width))
	if err != nil {
		return nil, err
	}
	screen := vt.New(width, height)

	m := &Model{
		screen: screen,
		term:   term,
		width:  width,
		height: height,
		dataCh: make(chan []byte, ptyReadQueueSize),
		errCh:  make(chan error, 1),
	}
	screen.SetTitleFunc(func(t string) { m.title = t })
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	safego.Go("render.pty_read_loop", m.readLoop)
	return tea.Batch(m.waitForData(), m.tick())
}

func (m *Model) readLoop() {
	buf := make([]byte, ptyReadBufferSize)
	for {
		n, err := m.term.Read(buf)
		if err != nil {
			m.errCh <- err
			close(m.dataCh)
			return
		}
		if n == 0 {
			continue
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		m.dataCh <- chunk
	}
}

func (m *Model) waitForData() tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-m.dataCh
		if !ok {
			select {
			case err := <-m.errCh:
				return ptyClosedMsg{err: err}
			default:
				return ptyClosedMsg{}
			}
		}
		return ptyDataMsg{chunk: chunk}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		_, err := m.term.Write([]byte(msg.String()))
		if err != nil {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		_ = m.term.SetSize(uint16(msg.Height), uint16(msg.Width))
		return m, nil
	case ptyDataMsg:
		m.screen.Feed(msg.chunk)
		return m, m.waitForData()
	case ptyClosedMsg:
		return m, tea.Quit
	case frameMsg:
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) View() string {
	return lipgloss.NewStyle().Render(Screen(m.screen))
}

// Close releases the pty and terminates the child process.
func (m *Model) Close() error {
	return m.term.Close()
}

// Title returns the most recent OSC 0/2 window title set by the child.
func (m *Model) Title() string {
	return m.title
}
