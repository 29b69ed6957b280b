package homeview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/shop-tui/internal/carousel"
	"github.com/altinukshini/shop-tui/internal/cart"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/notify"
	"github.com/altinukshini/shop-tui/internal/ui"
)

const cardWidth = 24

// focusSlides is the focus index of the slideshow; shelves follow from 1.
const focusSlides = 0

type Model struct {
	home    *model.Home
	slides  carousel.Slideshow
	strips  []carousel.Strip
	focus   int
	wished  map[int64]bool
	width   int
	height  int
	loading bool
	err     error

	// dragFrom is the x of a left-button press, -1 when no drag is active.
	dragFrom int
}

func New() Model {
	return Model{wished: make(map[int64]bool), loading: true, dragFrom: -1}
}

func (m Model) Slideshow() carousel.Slideshow { return m.slides }

func (m Model) Focus() int { return m.focus }

// IsWished reports whether the product was added to the wishlist this session.
func (m Model) IsWished(id int64) bool { return m.wished[id] }

func (m *Model) SetLoading() {
	m.loading = true
	m.err = nil
}

// SelectedProduct is the card under the cursor of the focused shelf.
func (m Model) SelectedProduct() *model.Product {
	if m.home == nil || m.focus == focusSlides {
		return nil
	}
	i := m.focus - 1
	if i >= len(m.home.Shelves) || i >= len(m.strips) {
		return nil
	}
	products := m.home.Shelves[i].Products
	c := m.strips[i].Cursor()
	if c >= len(products) {
		return nil
	}
	p := products[c]
	return &p
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.HomeLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.home = msg.Home
		m.slides.Reset(len(msg.Home.Slides))
		m.strips = make([]carousel.Strip, len(msg.Home.Shelves))
		for i, s := range msg.Home.Shelves {
			m.strips[i] = carousel.NewStrip(len(s.Products), m.visibleCards())
		}
		m.focus = focusSlides
		if len(m.strips) > 0 {
			m.focus = 1
		} else {
			m.slides.Pause()
		}
		return m, m.autoplay()

	case ui.SlideTickMsg:
		if m.slides.Advance(msg.Gen) {
			return m, m.autoplay()
		}
		return m, nil

	case ui.WishlistMutationMsg:
		if msg.Err != nil {
			return m, nil
		}
		switch msg.Action {
		case ui.WishlistAdd:
			m.wished[msg.ProductID] = true
		case ui.WishlistRemove:
			delete(m.wished, msg.ProductID)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.strips {
			m.strips[i].SetVisible(m.visibleCards())
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.home == nil {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleMouse turns a horizontal drag into a slide change.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.dragFrom = msg.X
	case tea.MouseActionRelease:
		if m.dragFrom < 0 {
			return m, nil
		}
		dir := carousel.Swipe(m.dragFrom, msg.X)
		m.dragFrom = -1
		if dir != 0 && m.slides.Len() > 1 {
			m.slides.Change(dir)
			return m, m.autoplay()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ui.Keys.NextShelf), key.Matches(msg, ui.Keys.Down):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, ui.Keys.PrevShelf), key.Matches(msg, ui.Keys.Up):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, ui.Keys.NextSlide):
		m.slides.Next()
		return m, m.autoplay()
	case key.Matches(msg, ui.Keys.PrevSlide):
		m.slides.Prev()
		return m, m.autoplay()
	case key.Matches(msg, ui.Keys.Pause):
		if m.slides.Paused() {
			m.slides.Resume()
			return m, tea.Batch(m.autoplay(), statusCmd("Slideshow playing"))
		}
		m.slides.Pause()
		return m, statusCmd("Slideshow paused")
	}

	if m.focus == focusSlides {
		switch {
		case key.Matches(msg, ui.Keys.Right):
			m.slides.Next()
		case key.Matches(msg, ui.Keys.Left):
			m.slides.Prev()
		case key.Matches(msg, ui.Keys.Enter):
			if len(m.home.Slides) == 0 {
				return m, nil
			}
			url := m.home.Slides[m.slides.Index()].LinkURL
			if url == "" {
				return m, noLink
			}
			return m, func() tea.Msg { return ui.OpenURLMsg{URL: url} }
		}
		return m, nil
	}

	strip := &m.strips[m.focus-1]
	switch {
	case key.Matches(msg, ui.Keys.Right):
		strip.Move(1)
	case key.Matches(msg, ui.Keys.Left):
		strip.Move(-1)
	case key.Matches(msg, ui.Keys.ScrollRight):
		strip.Scroll(carousel.DefaultStep)
	case key.Matches(msg, ui.Keys.ScrollLeft):
		strip.Scroll(-carousel.DefaultStep)
	case key.Matches(msg, ui.Keys.Enter):
		p := m.SelectedProduct()
		if p == nil {
			return m, nil
		}
		if p.URL == "" {
			return m, noLink
		}
		url := p.URL
		return m, func() tea.Msg { return ui.OpenURLMsg{URL: url} }
	}
	return m, nil
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return ui.StatusMsg{Text: text} }
}

func noLink() tea.Msg {
	return ui.NotifyMsg{Kind: notify.Error, Message: "No page to open for this item"}
}

// setFocus moves between the slideshow and the shelves. The slideshow
// holds still while it has focus.
func (m Model) setFocus(f int) (Model, tea.Cmd) {
	if f < focusSlides || f > len(m.strips) || f == m.focus {
		return m, nil
	}
	prev := m.focus
	m.focus = f
	switch {
	case f == focusSlides:
		m.slides.Pause()
	case prev == focusSlides:
		m.slides.Resume()
		return m, m.autoplay()
	}
	return m, nil
}

func (m Model) autoplay() tea.Cmd {
	if m.slides.Paused() || m.slides.Len() < 2 {
		return nil
	}
	gen := m.slides.Generation()
	return tea.Tick(carousel.AutoplayInterval, func(time.Time) tea.Msg {
		return ui.SlideTickMsg{Gen: gen}
	})
}

func (m Model) visibleCards() int {
	n := (m.width - 2) / (cardWidth + 1)
	if n < 1 {
		n = 1
	}
	return n
}

// --- View ---

func (m Model) View() string {
	switch {
	case m.loading:
		return "\n  Loading storefront..."
	case m.err != nil:
		return "\n  " + ui.StyleFailure.Render("Could not load home page: "+m.err.Error())
	}

	var b strings.Builder
	b.WriteString(m.renderSlideshow())
	for i, shelf := range m.home.Shelves {
		b.WriteString("\n" + m.renderShelf(i, shelf))
	}
	return b.String()
}

func (m Model) renderSlideshow() string {
	if len(m.home.Slides) == 0 {
		return ""
	}
	slide := m.home.Slides[m.slides.Index()]

	var dots []string
	for i := range m.home.Slides {
		if i == m.slides.Index() {
			dots = append(dots, lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("●"))
		} else {
			dots = append(dots, ui.StyleMuted.Render("○"))
		}
	}
	status := strings.Join(dots, " ")
	if m.slides.Paused() {
		status += ui.StyleMuted.Render("  paused")
	}

	title := lipgloss.NewStyle().Bold(true).Render(slide.Title)
	body := title
	if slide.Description != "" {
		body += "\n" + ui.StyleMuted.Render(slide.Description)
	}
	body += "\n\n" + status

	style := ui.StylePane
	if m.focus == focusSlides {
		style = ui.StylePaneFocused
	}
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return style.Width(w).Padding(0, 1).Render(body)
}

func (m Model) renderShelf(i int, shelf model.Shelf) string {
	focused := m.focus == i+1
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMuted)
	if focused {
		titleStyle = titleStyle.Foreground(ui.ColorPrimary)
	}
	header := " " + titleStyle.Render(shelf.Title)
	if len(shelf.Products) == 0 {
		return header + "\n" + ui.StyleMuted.Render("   Nothing here yet")
	}

	strip := m.strips[i]
	start, end := strip.Window()
	if start > 0 {
		header += ui.StyleMuted.Render("  ‹")
	}
	if end < strip.Len() {
		header += ui.StyleMuted.Render("  ›")
	}

	var cards []string
	for j := start; j < end; j++ {
		cards = append(cards, m.renderCard(shelf.Products[j], focused && j == strip.Cursor()))
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderCard(p model.Product, selected bool) string {
	name := text.Truncate(cardWidth-4, p.DisplayName())
	price := ""
	if !p.Price.IsZero() {
		price = ui.StylePrice.Render(cart.FormatAmount(p.Price))
	}
	body := name + "\n" + price + " " + ui.WishIcon(m.wished[p.ID])

	style := ui.StylePane.Width(cardWidth - 2)
	if selected {
		style = ui.StylePaneFocused.Width(cardWidth - 2)
	}
	return style.Render(body)
}
