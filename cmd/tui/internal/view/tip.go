package view

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leaveatip/internal/tip"
)

const (
	sheetWidth   = 44
	presetWidth  = 10
	customLabel  = "Custom"
	confirmTitle = "Thank you!"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).MarginBottom(1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2)
	inputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1)
)

var _ View = TipModel{}

// TipModel is the single screen of the app: preset buttons, the custom entry
// sheet and the confirmation dialog, all driven by a tip.Flow.
type TipModel struct {
	CommonModel
	flow  *tip.Flow
	shake *Shake

	title   string
	presets []int
	focus   int // index into presets; len(presets) is the Custom button

	input textinput.Model
	keys  keyMap
	help  help.Model
}

// NewTipModel builds the screen. shake should be the effect the flow was built with.
func NewTipModel(title string, flow *tip.Flow, shake *Shake, presets []int) TipModel {
	ti := textinput.New()
	ti.Placeholder = "Amount"
	ti.Prompt = ""
	ti.Width = fieldWidth(shake.Travel()) - inputStyle.GetHorizontalPadding() - 1

	return TipModel{
		flow:    flow,
		shake:   shake,
		title:   title,
		presets: presets,
		input:   ti,
		keys:    newKeyMap(len(presets)),
		help:    help.New(),
	}
}

func (m TipModel) Title() string { return m.title }

func (m TipModel) ShortHelp() string {
	return m.help.ShortHelpView(m.keys.forScreen(m.flow.Screen()))
}

func (m TipModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m TipModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case shakeFrameMsg:
		return m, m.shake.Update(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.flow.Screen() {
		case tip.ScreenMain:
			return m.updateMain(msg)
		case tip.ScreenCustomEntry:
			return m.updateCustom(msg)
		case tip.ScreenConfirming:
			return m.updateConfirming(msg)
		}
	}

	if m.flow.Screen() == tip.ScreenCustomEntry {
		return m.updateInput(msg)
	}

	return m, nil
}

func (m TipModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := len(m.presets) + 1

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus + buttons - 1) % buttons
	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % buttons
	case key.Matches(msg, m.keys.Preset):
		i := int(msg.String()[0] - '1')
		m.focus = i
		m.flow.SelectFixed(m.presets[i])
	case key.Matches(msg, m.keys.Custom):
		m.focus = len(m.presets)
		m.flow.OpenCustom()
	case key.Matches(msg, m.keys.Press):
		if m.focus < len(m.presets) {
			m.flow.SelectFixed(m.presets[m.focus])
		} else {
			m.flow.OpenCustom()
		}
	}

	return m, m.sync()
}

func (m TipModel) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.flow.DismissCustom()
		return m, m.sync()
	case key.Matches(msg, m.keys.Submit):
		m.flow.EditText(m.input.Value())
		m.flow.Submit()
		syncCmd := m.sync()

		return m, tea.Batch(syncCmd, m.shake.Start())
	}

	return m.updateInput(msg)
}

func (m TipModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.flow.EditText(m.input.Value())

	return m, cmd
}

func (m TipModel) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.OK) {
		m.flow.DismissConfirmation()
	}

	return m, m.sync()
}

// sync pushes flow state into the text input after a flow operation.
func (m *TipModel) sync() tea.Cmd {
	s := m.flow.State()
	if m.input.Value() != s.CustomTipText {
		m.input.SetValue(s.CustomTipText)
	}

	if !s.CustomInputVisible {
		m.input.Blur()
		return nil
	}

	if m.input.Focused() {
		return nil
	}

	return m.input.Focus()
}

func (m TipModel) View() string {
	var body string

	switch m.flow.Screen() {
	case tip.ScreenCustomEntry:
		body = m.place(m.viewSheet())
	case tip.ScreenConfirming:
		body = m.place(m.viewConfirmation())
	default:
		body = m.place(m.viewMain())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.ShortHelp())
}

func (m TipModel) viewMain() string {
	buttons := make([]string, len(m.presets))
	for i, p := range m.presets {
		buttons[i] = RenderButton(FormatPercent(p), m.focus == i, presetWidth)
	}

	row := ButtonRow(buttons...)
	custom := RenderButton(customLabel, m.focus == len(m.presets), lipgloss.Width(row))

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Leave a tip?"),
		row,
		"",
		custom,
	)
}

func (m TipModel) viewSheet() string {
	s := m.flow.State()
	inner := sheetWidth - cardStyle.GetHorizontalFrameSize()

	closeCtl := lipgloss.PlaceHorizontal(inner, lipgloss.Right, mutedStyle.Render("✕ esc"))
	field := lipgloss.NewStyle().
		MarginLeft(m.shake.Travel() + m.shake.Offset()).
		Render(inputStyle.Width(fieldWidth(m.shake.Travel())).Render(m.input.View()))

	lines := []string{
		closeCtl,
		titleStyle.Render("Enter custom tip amount (%)"),
		field,
	}

	if s.ValidationError != "" {
		lines = append(lines, errorStyle.Render("❌ "+s.ValidationError))
	}

	lines = append(lines, "", RenderButton("Submit", true, inner))

	return cardStyle.Width(sheetWidth - cardStyle.GetHorizontalBorderSize()).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func (m TipModel) viewConfirmation() string {
	note := huh.NewNote().Title(confirmTitle)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		note.View(),
		"",
		RenderButton("OK", true, 0),
	))
}

// fieldWidth leaves room inside the sheet for the field to shake by travel columns each way.
func fieldWidth(travel int) int {
	return sheetWidth - cardStyle.GetHorizontalFrameSize() - 2*travel - inputStyle.GetHorizontalBorderSize()
}

// place centers content in the window once its size is known.
func (m TipModel) place(content string) string {
	if m.Width <= 0 || m.Height <= 0 {
		return content
	}

	height := max(m.Height-1, lipgloss.Height(content))

	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, content)
}
