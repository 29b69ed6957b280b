package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Refresh     key.Binding
	Search      key.Binding
	Menu        key.Binding
	Home        key.Binding
	Cart        key.Binding
	Wishlist    key.Binding
	Increase    key.Binding
	Decrease    key.Binding
	Delete      key.Binding
	AddCart     key.Binding
	AddWish     key.Binding
	NextShelf   key.Binding
	PrevShelf   key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	NextSlide   key.Binding
	PrevSlide   key.Binding
	Pause       key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
}

var Keys = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Menu:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Home:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
	Cart:        key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cart")),
	Wishlist:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "wishlist")),
	Increase:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
	Decrease:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrease")),
	Delete:      key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
	AddCart:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
	AddWish:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist")),
	NextShelf:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next row")),
	PrevShelf:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev row")),
	ScrollLeft:  key.NewBinding(key.WithKeys("H", "<"), key.WithHelp("H", "scroll left")),
	ScrollRight: key.NewBinding(key.WithKeys("L", ">"), key.WithHelp("L", "scroll right")),
	NextSlide:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next slide")),
	PrevSlide:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev slide")),
	Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause slides")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/left", "left")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/right", "right")),
}
