package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/octodial/internal/engine"
	"github.com/DaanHessen/octodial/internal/text"
	"github.com/DaanHessen/octodial/internal/util"
)

const (
	viewDial  = "dial"
	viewTable = "table"
	viewHelp  = "help"
)

// settledMsg ends the cosmetic delay between a snap and the lit units refreshing.
type settledMsg struct{ seq int }

type model struct {
	cfg  util.Config
	dial *engine.Dial
	log  *slog.Logger

	view         string
	theme        string
	styles       styles
	notationName string
	notation     engine.Notation

	// settling is true between EndDrag and the matching settledMsg
	settling  bool
	settleSeq int

	// rendered markdown for the table and help views
	tableMD string
	helpMD  string

	status string
	width  int
	height int
}

func initialModel(cfg util.Config, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	n, err := text.ByName(cfg.Notation)
	if err != nil {
		n = text.NewUnicode()
		cfg.Notation = text.NameUnicode
	}
	m := model{
		cfg:          cfg,
		dial:         engine.NewDial(engine.DefaultTable(), engine.WithLogger(logger), engine.WithDialNotation(n)),
		log:          logger,
		view:         viewDial,
		theme:        cfg.Theme,
		styles:       stylesFor(paletteFor(cfg.Theme)),
		notationName: cfg.Notation,
		notation:     n,
	}
	m.log.Info("dial ready", "dial_id", m.dial.ID.String(), "theme", m.theme, "notation", m.notationName)
	return m
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) View() string {
	switch m.view {
	case viewTable:
		return m.styles.title.Render("OCTODIAL (Multiplication table)") + "\n" + m.tableMD +
			m.styles.help.Render("row × column  [Tab] dial  [Esc] back")
	case viewHelp:
		return m.styles.title.Render("OCTODIAL (Help)") + "\n" + m.helpMD +
			m.styles.help.Render("[?] or [Esc] back")
	default:
		return m.renderDialView()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshMarkdown()
		return m, nil
	case settledMsg:
		if msg.seq == m.settleSeq {
			m.settling = false
		}
		return m, nil
	case tea.MouseMsg:
		if m.view != viewDial {
			return m, nil
		}
		return m.handleMouse(msg)
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view != viewDial {
			switch k {
			case "esc", "q":
				m.view = viewDial
			case "tab":
				m.cycleViews()
			case "?":
				m.toggleHelp()
			}
			return m, nil
		}
		switch k {
		case "q", "esc":
			return m, tea.Quit
		case "right", "down", " ", "space":
			m.dial.StepNext()
			m.settling = false
			m.status = ""
		case "left", "up":
			m.dial.StepPrevious()
			m.settling = false
			m.status = ""
		case "tab":
			m.cycleViews()
		case "?":
			m.toggleHelp()
		case "c":
			m.theme = nextThemeName(m.theme, 1)
			m.styles = stylesFor(paletteFor(m.theme))
			m.refreshMarkdown()
		case "n":
			m.toggleNotation()
		default:
			if len(k) == 1 && k[0] >= '0' && k[0] < '0'+engine.Units {
				m.clickUnit(engine.Generator(k[0] - '0'))
			}
		}
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, inside := toCanvas(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		if g, ok := unitAt(x, y); ok && m.lit(g) {
			m.clickUnit(g)
			return m, nil
		}
		m.dial.BeginDrag(pointerAngle(x, y))
		m.status = ""
	case tea.MouseActionMotion:
		if m.dial.Dragging() {
			m.dial.ContinueDrag(pointerAngle(x, y))
		}
	case tea.MouseActionRelease:
		if !m.dial.Dragging() {
			return m, nil
		}
		m.dial.EndDrag()
		if m.cfg.SettleDelay <= 0 {
			m.settling = false
			return m, nil
		}
		m.settling = true
		m.settleSeq++
		seq := m.settleSeq
		return m, tea.Tick(m.cfg.SettleDelay, func(time.Time) tea.Msg { return settledMsg{seq: seq} })
	}
	return m, nil
}

// clickUnit forwards a unit click; clicks are dropped while the mask is being dragged.
func (m *model) clickUnit(g engine.Generator) {
	if m.dial.Dragging() {
		return
	}
	if !m.dial.Click(g) {
		m.status = fmt.Sprintf("%s is hidden at position %d", m.notation.Unit(g), m.dial.Position())
		return
	}
	m.status = ""
}

// lit reports whether unit g is drawn above the mask and so clickable with the mouse.
func (m *model) lit(g engine.Generator) bool {
	if m.dial.Dragging() || m.settling {
		return false
	}
	return m.dial.VisibleSet().Contains(g)
}

func (m *model) cycleViews() {
	order := []string{viewDial, viewTable}
	cur := 0
	for i, v := range order {
		if v == m.view {
			cur = i
			break
		}
	}
	m.view = order[(cur+1)%len(order)]
	m.refreshMarkdown()
	m.log.Debug("view changed", "view", m.view)
}

func (m *model) toggleHelp() {
	if m.view == viewHelp {
		m.view = viewDial
		return
	}
	m.view = viewHelp
	m.refreshMarkdown()
}

func (m *model) toggleNotation() {
	name := text.Toggle(m.notationName)
	n, err := text.ByName(name)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.notationName = name
	m.notation = n
	m.dial.SetNotation(n)
	m.refreshMarkdown()
}

func (m *model) refreshMarkdown() {
	m.tableMD = m.renderMarkdown(text.TableMarkdown(m.dial.Table(), m.notation))
	m.helpMD = m.renderMarkdown(helpMarkdown(m.dial, m.notation))
}

func (m *model) renderMarkdown(md string) string {
	w := m.width
	if w <= 0 {
		w = 100
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(w))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Layout rendering -----------------------------------------------------------
func (m model) renderDialView() string {
	top := m.renderTopBar()
	body := drawDial(m.dial, m.notation, m.lit).render(m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, top, "", body, "", m.renderBottomBar())
}

func (m model) renderTopBar() string {
	left := "OCTODIAL"
	var right string
	if m.dial.Dragging() {
		right = fmt.Sprintf("dragging %+.1f°", m.dial.DragOffset())
	} else {
		r := m.dial.Rule()
		right = fmt.Sprintf("position %d • %.2f° • %s", r.Position, m.dial.Angle(), m.notation.Product(r.Triple[0], r.Triple[1], r.Entry))
	}
	w := m.width
	if w <= 0 {
		w = dialW + 2*dialLeft + 20
	}
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.title.Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderBottomBar() string {
	shown := m.dial.Display().Text
	if shown == "" {
		shown = "(pick two lit units)"
	}
	line := m.styles.status.Render("Display> " + shown)
	if m.status != "" {
		line += "  " + m.styles.help.Render(m.status)
	}
	keys := "[←/→ space] rotate  [0-6] pick  [drag] turn mask  [Tab] table  [n] notation  [c] colours  [?] help  [q] quit"
	return line + "\n" + m.styles.help.Render(keys)
}

func helpMarkdown(d *engine.Dial, n engine.Notation) string {
	var b strings.Builder
	b.WriteString("# Octonion dial\n\n")
	b.WriteString("Seven imaginary units sit on a ring under a rotating mask. At each of the seven mask ")
	b.WriteString("positions three units show through. Pick two of them to see their product: ")
	b.WriteString("the result is the third unit, positive when the picks run clockwise and negative otherwise. ")
	b.WriteString("A unit times itself is -1.\n\n")
	b.WriteString("## Controls\n\n")
	b.WriteString("- Right, Down or Space: rotate to the next position\n")
	b.WriteString("- Left or Up: rotate to the previous position\n")
	b.WriteString("- Drag the mask with the mouse; it snaps to the nearest position on release\n")
	b.WriteString("- Click a lit unit or press its digit to pick it\n")
	b.WriteString("- Rotating clears the current pick\n\n")
	b.WriteString("## Positions\n\n")
	b.WriteString(text.RulesMarkdown(d, n))
	return b.String()
}
