package searchview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"
	"go.uber.org/zap"

	"github.com/altinukshini/shop-tui/internal/cart"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/search"
	"github.com/altinukshini/shop-tui/internal/ui"
)

const (
	hintText  = "Type at least 2 characters to search"
	emptyText = "No products found"
	errorText = "Search failed, try again"
)

// Searcher is the one network call the overlay makes.
type Searcher interface {
	Search(ctx context.Context, query string) (*model.SearchResponse, error)
}

type Model struct {
	input    textinput.Model
	pipeline *search.Pipeline
	searcher Searcher
	debounce time.Duration
	log      *zap.Logger
	cursor   int
	width    int
	height   int
	active   bool
}

func New(searcher Searcher, debounce time.Duration, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search products"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		input:    ti,
		pipeline: search.New(),
		searcher: searcher,
		debounce: debounce,
		log:      logger.Named("search"),
	}
}

// Open shows the overlay with an empty query. Anything scheduled or in
// flight from a previous session is discarded.
func (m *Model) Open() tea.Cmd {
	m.active = true
	m.cursor = 0
	m.pipeline.Open()
	m.input.SetValue("")
	return m.input.Focus()
}

// Close hides the overlay. A request already on the wire is left to
// finish; its response is dropped on the next Open.
func (m *Model) Close() {
	m.active = false
	m.input.Blur()
}

func (m Model) IsActive() bool { return m.active }

func (m Model) State() search.State { return m.pipeline.State() }

func (m Model) Query() string { return m.pipeline.Query() }

func (m Model) SelectedProduct() *model.Product {
	products := m.pipeline.Products()
	if m.pipeline.State() != search.StateResults || m.cursor >= len(products) {
		return nil
	}
	p := products[m.cursor]
	return &p
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.SearchTickMsg:
		if !m.pipeline.Fire(msg.Ticket) {
			return m, nil
		}
		return m, m.fetch(msg.Ticket)

	case ui.SearchDoneMsg:
		if msg.Err != nil {
			m.log.Debug("search failed", zap.Uint64("seq", msg.Seq), zap.Error(msg.Err))
		}
		if m.pipeline.Resolve(msg.Seq, msg.Resp, msg.Err) {
			m.cursor = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.Close()
			return m, nil
		case "enter":
			p := m.SelectedProduct()
			if p == nil {
				return m, nil
			}
			m.Close()
			url := p.URL
			return m, func() tea.Msg { return ui.OpenURLMsg{URL: url} }
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.pipeline.Products())-1 {
				m.cursor++
			}
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.schedule())
		}
		return m, cmd
	}
	return m, nil
}

// schedule feeds the current input to the pipeline and, for a long enough
// query, arms the debounce timer.
func (m *Model) schedule() tea.Cmd {
	t, ok := m.pipeline.Input(m.input.Value())
	if !ok {
		return nil
	}
	m.cursor = 0
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return ui.SearchTickMsg{Ticket: t}
	})
}

func (m Model) fetch(t search.Ticket) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		resp, err := searcher.Search(context.Background(), t.Query)
		return ui.SearchDoneMsg{Seq: t.Seq, Resp: resp, Err: err}
	}
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + m.input.View() + "\n\n")
	b.WriteString(m.renderBody())
	return b.String()
}

func (m Model) renderBody() string {
	switch m.pipeline.State() {
	case search.StateLoading:
		return ui.StyleInfo.Render("  Searching...")
	case search.StateResults:
		return m.renderResults()
	case search.StateEmpty:
		return ui.StyleMuted.Render("  " + emptyText)
	case search.StateError:
		return ui.StyleFailure.Render("  " + errorText)
	default:
		return ui.StyleMuted.Render("  " + hintText)
	}
}

func (m Model) renderResults() string {
	products := m.pipeline.Products()
	bold := lipgloss.NewStyle().Bold(true)

	nameW := m.width - 30
	if nameW < 20 {
		nameW = 20
	}

	// Keep the cursor inside the rows that fit.
	rows := m.height - 5
	if rows < 1 {
		rows = len(products)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(products) {
		end = len(products)
	}

	var b strings.Builder
	b.WriteString(ui.StyleMuted.Render(fmt.Sprintf("  %s", text.Pluralize(len(products), "result"))) + "\n")
	for i := start; i < end; i++ {
		p := products[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, bold.Render(text.Truncate(nameW, p.DisplayName())))
		if p.Category != "" && p.Category != p.DisplayName() {
			line += "  " + ui.StyleMuted.Render(p.Category)
		}
		if !p.Price.IsZero() {
			line += "  " + ui.StylePrice.Render(cart.FormatAmount(p.Price))
		}
		if i == m.cursor {
			line = ui.StyleSelected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
