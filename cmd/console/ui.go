package main

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ogvalley/internal/app/action"
	"ogvalley/internal/app/observe"
	"ogvalley/internal/bootstrap"
	"ogvalley/internal/domain/valley"
)

const refreshEvery = 100 * time.Millisecond

type refreshMsg struct{}

type stateMsg struct {
	state observe.Response
	err   error
}

type resultMsg struct {
	result action.Response
	err    error
}

type console struct {
	ctx  context.Context
	game bootstrap.Game

	state         observe.Response
	fromContainer bool
	lastErr       error
	ready         bool
}

func newConsole(ctx context.Context, game bootstrap.Game) console {
	return console{ctx: ctx, game: game}
}

func (m console) Init() tea.Cmd {
	return tea.Batch(m.observe(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m console) observe() tea.Cmd {
	return func() tea.Msg {
		s, err := m.game.Observe.Execute(m.ctx)
		return stateMsg{state: s, err: err}
	}
}

func (m console) send(in action.Intent) tea.Cmd {
	return func() tea.Msg {
		r, err := m.game.Action.Execute(m.ctx, action.Request{Intent: in})
		return resultMsg{result: r, err: err}
	}
}

func (m console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m, tea.Batch(m.observe(), tick())
	case stateMsg:
		if msg.err == nil {
			m.state = msg.state
			m.ready = true
		}
		m.lastErr = msg.err
		if m.state.UIMode != valley.ModeChest {
			m.fromContainer = false
		}
		return m, nil
	case resultMsg:
		m.lastErr = msg.err
		return m, m.observe()
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m console) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.fromContainer = !m.fromContainer
		return m, nil
	case "ctrl+s":
		return m, func() tea.Msg {
			_ = m.game.Persist.Save(m.ctx)
			return refreshMsg{}
		}
	case "ctrl+r":
		return m, func() tea.Msg {
			_ = m.game.Persist.Reset(m.ctx)
			return refreshMsg{}
		}
	}
	in, ok := intentFor(key, m.state.UIMode, m.fromContainer, m.state.Clock.Paused)
	if !ok {
		return m, nil
	}
	return m, m.send(in)
}

func (m console) View() string {
	if !m.ready {
		return "\n  Loading the valley..."
	}
	s := m.state
	left := lipgloss.JoinVertical(lipgloss.Left, renderGrid(s), renderStatus(s))

	var panels []string
	switch s.UIMode {
	case valley.ModeInventory:
		panels = append(panels, renderSlots("Inventory", s.Player.Inventory, s.Player.SelectedSlot))
	case valley.ModeChest:
		pSel, cSel := -1, -1
		if m.fromContainer {
			cSel = 0
		} else {
			pSel = 0
		}
		panels = append(panels,
			renderSlots("Inventory", s.Player.Inventory, pSel),
			renderSlots("Chest", s.Container, cSel))
	case valley.ModeShop:
		panels = append(panels, renderShop(s.Shop))
	default:
		panels = append(panels, renderSlots("Toolbar", s.Player.Inventory[:min(10, len(s.Player.Inventory))], s.Player.SelectedSlot))
	}
	if s.Dialogue != nil {
		panels = append(panels, panelStyle.Render(titleStyle.Render(s.Dialogue.Speaker)+"\n"+s.Dialogue.Text))
	}
	if s.Tooltip != nil {
		panels = append(panels, panelStyle.Render(s.Tooltip.Name+"\n"+s.Tooltip.Description))
	}
	right := lipgloss.JoinVertical(lipgloss.Left, panels...)

	var footer []string
	if s.Message != nil {
		footer = append(footer, messageStyle.Render(s.Message.Text))
	}
	for _, ft := range s.FloatingTexts {
		footer = append(footer, dimStyle.Render(ft.Text))
	}
	if m.lastErr != nil {
		footer = append(footer, monsterStyle.Render(m.lastErr.Error()))
	}
	footer = append(footer, dimStyle.Render("wasd move  e use  1-0 slot  i bag  tab side  p pause  ctrl+s save  q quit"))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		strings.Join(footer, "\n"))
}
