package picker

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/kubepick/kubepick/internal/bindings"
	"github.com/kubepick/kubepick/internal/domain"
	"github.com/kubepick/kubepick/internal/ui/splitpanel"
	"github.com/kubepick/kubepick/internal/ui/style"
)

//
// Model
//

type model struct {
	query  textinput.Model
	rows   []domain.Row
	header string

	acceptKeys map[string]struct{}

	matches  []int        // row indexes passing the filter, in listing order
	cursor   int          // position within matches
	offset   int          // first visible position, for scrolling
	selected map[int]bool // row index -> toggled on

	layout      *splitpanel.Layout
	showPreview bool
	width       int
	height      int

	accepted bool
	aborted  bool
	trigger  string
}

func newModel(req domain.PickRequest) model {
	ti := textinput.New()
	ti.Prompt = req.Prompt
	ti.Placeholder = "filter"
	ti.Focus()
	if req.InitialQuery != "" {
		ti.SetValue(req.InitialQuery)
	}

	accept := make(map[string]struct{}, len(req.AcceptKeys))
	for _, key := range req.AcceptKeys {
		accept[key] = struct{}{}
	}

	m := model{
		query:      ti,
		rows:       req.Rows,
		header:     req.Header,
		acceptKeys: accept,
		selected:   make(map[int]bool),
		layout:     splitpanel.NewLayout(80, splitpanel.DefaultConfig()),
		width:      80,
		height:     24,
	}
	m.refilter()
	return m
}

//
// Bubble Tea lifecycle
//

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetWidth(msg.Width)
		m.scrollIntoView()
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {

		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			// Plain accept maps to the empty trigger. When no action
			// claims it, enter does nothing.
			if _, ok := m.acceptKeys[""]; ok {
				m.accepted = true
				m.trigger = ""
				return m, tea.Quit
			}
			return m, nil

		case bindings.TogglePreviewKey:
			m.showPreview = !m.showPreview
			m.layout.SetPreviewOpen(m.showPreview)
			return m, nil

		case "tab":
			if len(m.matches) > 0 {
				rowIdx := m.matches[m.cursor]
				if m.selected[rowIdx] {
					delete(m.selected, rowIdx)
				} else {
					m.selected[rowIdx] = true
				}
				m.moveCursor(1)
			}
			return m, nil

		case "up":
			m.moveCursor(-1)
			return m, nil

		case "down":
			m.moveCursor(1)
			return m, nil

		default:
			// Registered accept keys win over the query input, so an
			// action bound to a key textinput would otherwise eat
			// (ctrl+e, ctrl+k, ...) still dispatches.
			if _, ok := m.acceptKeys[key]; ok {
				m.accepted = true
				m.trigger = key
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		m.refilter()
		return m, cmd
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

//
// View
//

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.query.View())
	b.WriteString("\n")
	b.WriteString(style.Muted("  " + m.header))
	b.WriteString("\n")

	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.matches))

	lines := make([]string, 0, visible)
	for p := m.offset; p < end; p++ {
		rowIdx := m.matches[p]

		marker := "  "
		if p == m.cursor {
			marker = style.Info("→ ")
		}
		chosen := "  "
		if m.selected[rowIdx] {
			chosen = style.Success("✓ ")
		}
		lines = append(lines, marker+chosen+m.rows[rowIdx].Text())
	}
	if len(m.matches) == 0 {
		lines = append(lines, style.Muted("  no matches"))
	}

	list := splitpanel.Panel{
		Lines:      lines,
		ScrollPos:  m.offset,
		TotalItems: len(m.matches),
	}

	var preview splitpanel.Panel
	if m.showPreview && len(m.matches) > 0 {
		preview = splitpanel.Panel{
			Lines: strings.Split(m.rows[m.matches[m.cursor]].Preview(), "\n"),
		}
	}

	b.WriteString(m.layout.Render(list, preview, max(m.height-2, 3)))
	return b.String()
}

//
// Internals
//

// refilter recomputes the match set for the current query. Matches stay
// in listing order regardless of fuzzy score, so display order always
// mirrors the listing.
func (m *model) refilter() {
	q := strings.TrimSpace(m.query.Value())
	if q == "" {
		m.matches = make([]int, len(m.rows))
		for i := range m.rows {
			m.matches[i] = i
		}
	} else {
		texts := make([]string, len(m.rows))
		for i, row := range m.rows {
			texts[i] = row.Text()
		}
		found := fuzzy.Find(q, texts)
		matches := make([]int, 0, len(found))
		for _, f := range found {
			matches = append(matches, f.Index)
		}
		sort.Ints(matches)
		m.matches = matches
	}

	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
	m.scrollIntoView()
}

func (m *model) moveCursor(delta int) {
	if len(m.matches) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	m.scrollIntoView()
}

func (m *model) scrollIntoView() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is how many listing rows fit under the query and header
// lines, inside the panel borders.
func (m *model) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// selectedTexts returns the toggled rows in listing order, falling back
// to the row under the cursor when nothing was toggled.
func (m model) selectedTexts() []string {
	var texts []string
	for i, row := range m.rows {
		if m.selected[i] {
			texts = append(texts, row.Text())
		}
	}
	if len(texts) == 0 && len(m.matches) > 0 {
		texts = append(texts, m.rows[m.matches[m.cursor]].Text())
	}
	return texts
}
