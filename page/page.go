// Package page models the personalised text of the portal page and the
// named surfaces the background animation attaches to.
//
// Formatting is kept free of any drawing code: ParseQuery, FormatName,
// Kickers and IdentityLines are pure, and Page.Apply is the single step that
// writes their results into a document.
package page

// Default kicker text shown when no name is supplied
const (
	DefaultTopKicker    = "WELCOME TO THE"
	DefaultBottomKicker = "JOIN US INSIDE THE"
)

// Surface is a named render target, positioned as fractions of the window
type Surface struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// Rect returns the surface rectangle in logical pixels for a window of the given size
func (s Surface) Rect(width, height float64) (x, y, w, h float64) {
	return s.X * width, s.Y * height, s.W * width, s.H * height
}

// Page is the text document drawn over the animated surfaces
type Page struct {
	TopKicker    string
	Title        string
	BottomKicker string

	// Identity holds the lines of the optional identity block.
	// nil means the block is removed from the page.
	Identity []string

	Surfaces []Surface
}

// New creates a page with default kickers and no identity block
func New(title string, surfaces []Surface) *Page {
	return &Page{
		TopKicker:    DefaultTopKicker,
		Title:        title,
		BottomKicker: DefaultBottomKicker,
		Surfaces:     surfaces,
	}
}

// Apply writes personalised text into the page.
// A missing name keeps the current kickers; a missing or blank identity
// removes the identity block.
func (p *Page) Apply(params Params) {
	if name, ok := FormatName(params.Name); ok {
		p.TopKicker, p.BottomKicker = Kickers(name)
	}

	p.Identity = IdentityLines(params.Identity)
}

// HasIdentity reports whether the identity block is present
func (p *Page) HasIdentity() bool {
	return len(p.Identity) > 0
}

// Surface looks up a render target by name
func (p *Page) Surface(name string) (Surface, bool) {
	for _, s := range p.Surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}
