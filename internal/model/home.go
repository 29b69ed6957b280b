package model

// MaxSlides mirrors the storefront, which renders at most five active slides.
const MaxSlides = 5

type Slide struct {
	Title       string
	Description string
	LinkURL     string
	Image       string
	Order       int
}

// Shelf is a horizontally scrolled product strip on the home page.
type Shelf struct {
	ID       string
	Title    string
	Products []Product
}

type MenuLink struct {
	Title string
	URL   string
}

// MenuSection is one sidebar entry; sections with links are dropdowns.
type MenuSection struct {
	Title string
	URL   string
	Links []MenuLink
}

func (s MenuSection) IsDropdown() bool {
	return len(s.Links) > 0
}

type Home struct {
	Slides  []Slide
	Shelves []Shelf
	Menu    []MenuSection
}
