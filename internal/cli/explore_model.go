package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rendezvous/internal/cli/formatter"
	"github.com/alexanderramin/rendezvous/internal/domain"
	"github.com/alexanderramin/rendezvous/internal/eval"
	"github.com/alexanderramin/rendezvous/internal/planner"
	"github.com/alexanderramin/rendezvous/internal/sim"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// exploreKeyMap defines the explorer keybindings.
type exploreKeyMap struct {
	Cafe       key.Binding
	Restaurant key.Binding
	Cinema     key.Binding
	Park       key.Binding
	Shelter    key.Binding
	Plan       key.Binding
	Undo       key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultExploreKeys() exploreKeyMap {
	return exploreKeyMap{
		Cafe:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cafe")),
		Restaurant: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restaurant")),
		Cinema:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cinema")),
		Park:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "park")),
		Shelter:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shelter")),
		Plan:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "run plan")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Reset:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// exploreModel is the bubbletea model for the interactive explorer. It
// keeps the full state history so steps can be undone; the engine
// itself stays pure.
type exploreModel struct {
	initial domain.DateState
	history []domain.DateState
	plans   []planner.Plan
	keys    exploreKeyMap
	log     viewport.Model
	lines   []string
	width   int
	height  int
}

func newExploreModel(initial domain.DateState, plans []planner.Plan) exploreModel {
	vp := viewport.New(0, 0)
	return exploreModel{
		initial: initial,
		history: []domain.DateState{initial},
		plans:   plans,
		keys:    defaultExploreKeys(),
		log:     vp,
		lines:   []string{formatter.Dim("start") + "  " + formatter.FormatState(initial)},
	}
}

func (m exploreModel) current() domain.DateState {
	return m.history[len(m.history)-1]
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = msg.Width
		logHeight := msg.Height - 8
		if logHeight < 3 {
			logHeight = 3
		}
		m.log.Height = logHeight
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cafe):
			return m.step("cafe", sim.GoToCafe), nil
		case key.Matches(msg, m.keys.Restaurant):
			return m.step("restaurant", sim.GoToRestaurant), nil
		case key.Matches(msg, m.keys.Cinema):
			return m.step("cinema", sim.GoToCinema), nil
		case key.Matches(msg, m.keys.Park):
			return m.step("park", sim.GoToPark), nil
		case key.Matches(msg, m.keys.Shelter):
			return m.step("shelter", sim.EmergencyShelter), nil
		case key.Matches(msg, m.keys.Plan):
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(m.plans) {
				p := m.plans[idx]
				return m.step("plan:"+p.Name, p.Apply), nil
			}
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if len(m.history) > 1 {
				m.history = m.history[:len(m.history)-1]
				m.appendLine(formatter.Dim("undo") + "  " + formatter.FormatState(m.current()))
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.history = []domain.DateState{m.initial}
			m.appendLine(formatter.Dim("reset") + "  " + formatter.FormatState(m.initial))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

// step applies a transition, logging whether anything changed.
func (m exploreModel) step(name string, apply func(domain.DateState) domain.DateState) exploreModel {
	before := m.current()
	after := apply(before)
	if after == before {
		m.appendLine(formatter.Dim(fmt.Sprintf("%-12s no-op (guard failed)", name)))
		return m
	}
	m.history = append(m.history, after)
	m.appendLine(fmt.Sprintf("%s  %s", formatter.Bold(fmt.Sprintf("%-12s", name)), formatter.FormatState(after)))
	return m
}

func (m *exploreModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *exploreModel) refreshLog() {
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

func (m exploreModel) View() string {
	cur := m.current()
	score := eval.EvaluateDatePlan(m.initial, cur)

	var b strings.Builder
	b.WriteString(formatter.Header("rendezvous explorer"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatState(cur))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  score %s  %s\n",
		formatter.OutcomeIndicator(eval.Classify(cur)),
		formatter.Bold(fmt.Sprintf("%d", score.Total)),
		formatter.Dim(fmt.Sprintf("(mood %d, budget %d, time %d)",
			score.MoodScore, score.BudgetEfficiency, score.TimeEfficiency)),
	))
	b.WriteString("\n")
	b.WriteString(m.log.View())
	b.WriteString("\n")

	help := []string{
		"c cafe", "r restaurant", "m cinema", "p park", "s shelter",
		"1-6 plans", "u undo", "R reset", "q quit",
	}
	b.WriteString(formatter.Dim(strings.Join(help, " · ")))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
