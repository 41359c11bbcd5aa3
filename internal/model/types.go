// Package model defines shared data structures.
package model

import "time"

// Badge is a selectable option in the hero section.
type Badge struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Primary bool   `yaml:"primary"`
	// Code is the sample typed into the code window while the badge is selected.
	Code string `yaml:"code"`
}

// Testimonial is a single quote shown in the testimonial carousel.
type Testimonial struct {
	ID         string `yaml:"id"`
	Text       string `yaml:"text"`
	AuthorName string `yaml:"author"`
	AuthorRole string `yaml:"role"`
	AvatarURL  string `yaml:"avatar,omitempty"`
}

// NavLink is an entry of the navigation bar.
type NavLink struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// LinkCard is a clickable card with an icon, title and short description.
type LinkCard struct {
	Title       string `yaml:"title"`
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// FAQEntry is a question and its answer. Answers may contain markdown.
type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// ShowcaseTab is one slide of a showcase card.
type ShowcaseTab struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ShowcaseCard groups tabs that are navigated with dots.
type ShowcaseCard struct {
	Tabs []ShowcaseTab `yaml:"tabs"`
}

// Hero holds the copy of the "why choose us" section.
type Hero struct {
	Title       string  `yaml:"title"`
	BrandName   string  `yaml:"brand"`
	Description string  `yaml:"description"`
	Badges      []Badge `yaml:"badges"`
}

// TestimonialSection holds the copy and entries of the testimonial carousel.
type TestimonialSection struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Entries  []Testimonial `yaml:"entries"`
}

// Content is the complete site copy rendered by the TUI.
type Content struct {
	SiteName     string             `yaml:"site"`
	NavLinks     []NavLink          `yaml:"nav"`
	Hero         Hero               `yaml:"hero"`
	Cards        []LinkCard         `yaml:"cards"`
	Showcase     []ShowcaseCard     `yaml:"showcase"`
	Testimonials TestimonialSection `yaml:"testimonials"`
	FAQ          []FAQEntry         `yaml:"faq"`
}

// Direction is a carousel navigation direction.
type Direction int

const (
	// Next moves forward one page.
	Next Direction = iota
	// Prev moves back one page.
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ViewportMode classifies the terminal width against a breakpoint.
type ViewportMode int

const (
	// Compact is used below the breakpoint; links move into an overlay menu.
	Compact ViewportMode = iota
	// Wide is used at or above the breakpoint; links are shown inline.
	Wide
)

func (m ViewportMode) String() string {
	if m == Wide {
		return "wide"
	}
	return "compact"
}

// Settings defines runtime options for the site TUI.
type Settings struct {
	TypingSpeed  time.Duration
	FileName     string
	InitialBadge string
	PageSize     int
	Breakpoint   int
	ContentPath  string
	WatchContent bool
}
