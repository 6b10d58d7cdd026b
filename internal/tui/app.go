package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/cuneify/internal/clipboard"
	"github.com/f3rmion/cuneify/internal/cuneify"
	"github.com/f3rmion/cuneify/internal/tui/bigchar"
)

const (
	glyphCols = 24
	glyphRows = 8
)

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// tokenView is one token of the current input with its resolution.
type tokenView struct {
	text  string
	match cuneify.Match
	ok    bool
}

// Model converts the input line as it is typed and shows the match and
// candidate signs for one selected token.
type Model struct {
	conv   *cuneify.Converter
	glyphs *cuneify.Resolver
	render *bigchar.Renderer

	input      textinput.Model
	candidates viewport.Model

	output   string
	tokens   []tokenView
	selected int

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the interactive model over conv.
func New(conv *cuneify.Converter) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a transliteration, e.g. a-na šar-ri be-li₂-ia"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		conv:       conv,
		glyphs:     cuneify.NewResolver(conv.Inventory(), cuneify.EmitGlyph),
		render:     bigchar.New(),
		input:      ti,
		candidates: viewport.New(60, 10),
	}
}

// Run starts the program on the alternate screen.
func Run(conv *cuneify.Converter) error {
	p := tea.NewProgram(New(conv), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 20)
		m.candidates.Width = max(msg.Width-4, 20)
		m.candidates.Height = max(msg.Height-glyphRows-16, 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selectToken(m.selected + 1)
			return m, nil
		case "shift+tab":
			m.selectToken(m.selected - 1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.candidates, cmd = m.candidates.Update(msg)
			return m, cmd
		case "ctrl+y":
			return m, m.copyOutput()
		}

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.convert()
	}
	return m, cmd
}

// convert re-resolves the whole input and keeps the selection in range.
func (m *Model) convert() {
	text := m.input.Value()
	m.output = m.conv.Convert(text).Text()

	m.tokens = nil
	for _, line := range m.conv.Tokenize(text) {
		for _, tok := range line {
			match, ok := m.conv.Resolver().Match(tok)
			m.tokens = append(m.tokens, tokenView{text: tok, match: match, ok: ok})
		}
	}

	// Follow the cursor: the token being typed is usually the last one.
	m.selectToken(len(m.tokens) - 1)
}

func (m *Model) selectToken(i int) {
	if len(m.tokens) == 0 {
		m.selected = 0
		m.candidates.SetContent("")
		return
	}
	m.selected = (i%len(m.tokens) + len(m.tokens)) % len(m.tokens)

	found := m.conv.Finder().Find(m.tokens[m.selected].text)
	if len(found) == 0 {
		m.candidates.SetContent(HelpStyle.Render("no candidate signs"))
	} else {
		m.candidates.SetContent(renderTable(found))
	}
	m.candidates.GotoTop()
}

func (m *Model) copyOutput() tea.Cmd {
	if m.output == "" {
		return nil
	}
	if err := clipboard.Write(m.output); err != nil {
		m.status = "copy failed: " + err.Error()
		m.statusErr = true
	} else {
		m.status = "copied"
		m.statusErr = false
	}
	return clearStatusAfter(2 * time.Second)
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("cuneify"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.output != "" {
		b.WriteString(OutputStyle.Render(m.output))
		b.WriteString("\n")
	}

	if len(m.tokens) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderTokens())
		b.WriteString("\n\n")
		b.WriteString(m.renderSelected())
		b.WriteString("\n\n")
		b.WriteString(m.candidates.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = ErrorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
	}

	b.WriteString("\n")
	help := []string{"tab/shift+tab: select token", "pgup/pgdn: scroll", "esc: quit"}
	if clipboard.Available() {
		help = append([]string{"ctrl+y: copy"}, help...)
	}
	b.WriteString(HelpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}

func (m Model) renderTokens() string {
	parts := make([]string, len(m.tokens))
	for i, t := range m.tokens {
		switch {
		case i == m.selected:
			parts[i] = TokenActiveStyle.Render(t.text)
		case !t.ok:
			parts[i] = TokenUnresolvedStyle.Render(t.text)
		default:
			parts[i] = TokenStyle.Render(t.text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderSelected() string {
	t := m.tokens[m.selected]
	if !t.ok {
		return ErrorStyle.Render(fmt.Sprintf("%q matches no sign", t.text))
	}

	details := []string{
		LabelStyle.Render("Form") + ValueStyle.Render(t.match.Sign.Form),
		LabelStyle.Render("Glyph") + ValueStyle.Render(t.match.Sign.Glyph),
		LabelStyle.Render("Reading") + ValueStyle.Render(t.match.Sign.Value),
		LabelStyle.Render("Matched") + ValueStyle.Render(describeMatch(t.match)),
	}
	if t.match.Sign.Language != "" {
		details = append(details, LabelStyle.Render("Language")+ValueStyle.Render(t.match.Sign.Language))
	}
	info := strings.Join(details, "\n")

	art := m.render.Render(m.glyphs.Resolve(t.text), glyphCols, glyphRows)
	if art == "" {
		return info
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, BigGlyphStyle.Render(art), "  ", info)
}

func describeMatch(mt cuneify.Match) string {
	s := fmt.Sprintf("%s via %s", mt.Key, mt.Tier)
	if mt.Swapped {
		s += " (case swapped)"
	}
	return s
}
