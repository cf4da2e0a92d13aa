package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alex/internal/alex"
	"alex/internal/client"
	"alex/internal/session"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

type Model struct {
	c     *client.Client
	sess  *session.Session
	think time.Duration

	cursor alex.Square
	best   *client.BestMove

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel(c *client.Client, think time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "load <mfen> | reset | best [sec] | play | new | refresh"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	sess := session.New(alex.NewInitialPosition())
	// the first fetch is a round trip like any other
	_ = sess.Begin()

	return Model{
		c:      c,
		sess:   sess,
		think:  think,
		cursor: alex.MakeSquare(0, 0),
		m:      modeNormal,
		input:  ti,
		logLines: []string{
			"connecting... (press i for commands, ? for keys)",
		},
	}
}

func (m Model) Init() tea.Cmd {
	return fetchBoard(m.c, "board")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case boardMsg:
		if msg.err != nil {
			m.sess.Fail()
			m.appendLog(fmt.Sprintf("%s failed: %v", msg.note, msg.err))
			return m, nil
		}
		m.sess.Load(msg.pos)
		m.best = nil
		m.appendLog(fmt.Sprintf("%s ok, %s to move", msg.note, msg.pos.SideToMove))
		return m, nil

	case bestMsg:
		m.sess.Fail()
		if msg.err != nil {
			m.appendLog(fmt.Sprintf("best move failed: %v", msg.err))
			return m, nil
		}
		bm := msg.bm
		m.best = &bm
		if bm.Resign {
			m.appendLog("engine: resign")
			return m, nil
		}
		m.appendLog(fmt.Sprintf("engine: %s value=%d depth=%d pv=%s", bm.Move, bm.Value, bm.Depth, joinMoves(bm.PV)))
		return m, nil

	case newGameMsg:
		if msg.err != nil {
			m.sess.Fail()
			m.appendLog(fmt.Sprintf("new game failed: %v", msg.err))
			return m, nil
		}
		m.sess.Load(msg.pos)
		m.best = nil
		m.appendLog("new game " + msg.id)
		return m, nil

	case tea.KeyMsg:
		if m.m == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.m = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.m = modeNormal
		m.input.Blur()
		if line == "" {
			return m, nil
		}
		cmd := m.execCommand(line)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "i", ":":
		m.m = modeInput
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "?":
		m.appendLog("keys: arrows/hjkl move, enter/space select, tab reserve, y/n confirm shot, D demise, esc cancel, b best, g refresh, q quit")
		return m, nil
	case "up", "k":
		m.moveCursor(0, 1)
		return m, nil
	case "down", "j":
		m.moveCursor(0, -1)
		return m, nil
	case "left", "h":
		m.moveCursor(-1, 0)
		return m, nil
	case "right", "l":
		m.moveCursor(1, 0)
		return m, nil
	}

	if m.sess.Busy() {
		m.appendLog("waiting for the server")
		return m, nil
	}

	var (
		res session.Result
		err error
	)
	switch key {
	case "enter", " ":
		res, err = m.sess.Click(m.cursor)
	case "tab":
		res, err = m.sess.PickReserve(m.nextReserveKind())
	case "y":
		res, err = m.sess.Confirm(true)
	case "n":
		res, err = m.sess.Confirm(false)
	case "esc":
		res = m.sess.Cancel()
	case "D":
		res, err = m.sess.Demise()
		if err == nil && res.Outcome == session.Ignored {
			m.logDemiseState()
		}
	case "b":
		return m, m.requestBest()
	case "g":
		if err := m.sess.Begin(); err != nil {
			return m, nil
		}
		return m, fetchBoard(m.c, "refresh")
	default:
		return m, nil
	}
	return m, m.handleResult(res, err)
}

func (m *Model) handleResult(res session.Result, err error) tea.Cmd {
	if err != nil {
		m.appendLog(err.Error())
		return nil
	}
	switch res.Outcome {
	case session.NeedConfirm:
		m.appendLog(fmt.Sprintf("%s: shoot? (y = shoot, n = step)", res.Move))
	case session.Submit:
		m.appendLog("submit " + res.Move.String())
		return submitMove(m.c, res.Move)
	}
	return nil
}

// nextReserveKind cycles through the side to move's reserve.
func (m *Model) nextReserveKind() alex.PieceType {
	pos := m.sess.Position()
	hand := pos.Hand(pos.SideToMove)
	if len(hand) == 0 {
		return alex.PieceNone
	}
	idx := 0
	if sel := m.sess.Selection(); sel != nil && sel.Reserve != alex.PieceNone {
		for i, e := range hand {
			if e.Kind == sel.Reserve {
				idx = i + 1
				break
			}
		}
	}
	if idx >= len(hand) {
		// one more tab past the end deselects
		return hand[len(hand)-1].Kind
	}
	return hand[idx].Kind
}

func (m *Model) logDemiseState() {
	pos := m.sess.Position()
	side := pos.SideToMove
	if !pos.CanDemise(side) {
		m.appendLog(fmt.Sprintf("demise unavailable: no %s on the board", pos.Heir(side)))
		return
	}
	if m.sess.DemiseArmed() {
		m.appendLog("demise will be played with the next move")
	} else {
		m.appendLog("demise disarmed")
	}
}

func (m *Model) requestBest() tea.Cmd {
	if err := m.sess.Begin(); err != nil {
		m.appendLog(err.Error())
		return nil
	}
	m.appendLog(fmt.Sprintf("thinking %s...", m.think))
	return askBestMove(m.c, m.sess.Position(), m.think)
}

func (m *Model) moveCursor(df, dr int) {
	f := min(alex.Files-1, max(0, m.cursor.File()+df))
	r := min(alex.Ranks-1, max(0, m.cursor.Rank()+dr))
	m.cursor = alex.MakeSquare(f, r)
}

func (m *Model) execCommand(line string) tea.Cmd {
	m.appendLog("> " + line)
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	if m.sess.Busy() {
		m.appendLog("waiting for the server")
		return nil
	}

	switch parts[0] {
	case "load":
		pos, err := alex.DecodePosition(strings.Join(parts[1:], " "))
		if err != nil {
			// the current position stays
			m.appendLog(fmt.Sprintf("load: %v", err))
			return nil
		}
		_ = m.sess.Begin()
		return resetBoard(m.c, pos)

	case "reset":
		_ = m.sess.Begin()
		return resetBoard(m.c, alex.NewInitialPosition())

	case "best":
		if len(parts) > 1 {
			sec, err := strconv.ParseFloat(parts[1], 64)
			if err != nil || sec <= 0 {
				m.appendLog(fmt.Sprintf("best: bad time %q", parts[1]))
				return nil
			}
			m.think = time.Duration(sec * float64(time.Second))
		}
		return m.requestBest()

	case "play":
		if m.best == nil || m.best.Resign {
			m.appendLog("play: no engine move, use best first")
			return nil
		}
		mv := m.best.Move
		_ = m.sess.Begin()
		m.appendLog("submit " + mv.String())
		return submitMove(m.c, mv)

	case "new":
		_ = m.sess.Begin()
		return startNewGame(m.c)

	case "refresh":
		_ = m.sess.Begin()
		return fetchBoard(m.c, "refresh")

	case "move":
		if len(parts) != 2 {
			m.appendLog("move: want one move, e.g. move C2C4")
			return nil
		}
		mv, err := alex.ParseMove(parts[1])
		if err != nil {
			m.appendLog(fmt.Sprintf("move: %v", err))
			return nil
		}
		_ = m.sess.Begin()
		return submitMove(m.c, mv)

	default:
		m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
	}
	return nil
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func joinMoves(ms []alex.Move) string {
	out := make([]string, len(ms))
	for i, mv := range ms {
		out[i] = mv.String()
	}
	return strings.Join(out, " ")
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	pos := m.sess.Position()
	status := fmt.Sprintf("%s to move", pos.SideToMove)
	if m.sess.Busy() {
		status += "  [waiting]"
	}
	if m.sess.DemiseArmed() {
		status += "  [demise armed]"
	}
	game := m.c.Game()
	if game == "" {
		game = "default"
	}
	header := titleStyle.Render(fmt.Sprintf("alex  game:%s  %s", game, status))

	board := boxStyle.Render(RenderBoard(pos, m.sess.Selection(), m.cursor) + "\n" + RenderReserves(pos, m.sess.Selection()))

	logWidth := max(20, m.width-lipgloss.Width(board)-4)
	logHeight := max(5, lipgloss.Height(board)-2)
	logStart := max(0, len(m.logLines)-logHeight)
	logBox := boxStyle.Width(logWidth).Height(logHeight).Render(strings.Join(m.logLines[logStart:], "\n"))

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else if mv, ok := m.sess.Pending(); ok {
		inputLine = fmt.Sprintf("%s: y = shoot, n = step, esc = cancel", mv)
	} else {
		inputLine = "press i to enter a command, ? for keys"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, board, logBox) + "\n" + inputBox + "\n"
}
