// Package content loads the site copy rendered by the TUI.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/slynxsite/internal/model"
)

const (
	defaultTestimonialTitle    = "Slynx Testimonials"
	defaultTestimonialSubtitle = "Developer Approved and production ready."
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the built-in content document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the built-in content.
func Default() (model.Content, error) {
	return Parse(defaultYAML)
}

// Load reads content from path. An empty path selects the built-in content.
func Load(path string) (model.Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML content document and normalizes it.
func Parse(data []byte) (model.Content, error) {
	var c model.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return model.Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	Normalize(&c)
	return c, nil
}

// Normalize fills in defaults and makes ids unique. Badges without an id take
// one derived from their label; duplicate badge ids are dropped. Testimonials
// without an id, or with a duplicate one, get a random id.
func Normalize(c *model.Content) {
	if c.Testimonials.Title == "" {
		c.Testimonials.Title = defaultTestimonialTitle
	}
	if c.Testimonials.Subtitle == "" {
		c.Testimonials.Subtitle = defaultTestimonialSubtitle
	}
	c.Hero.Badges = normalizeBadges(c.Hero.Badges)
	c.Testimonials.Entries = normalizeTestimonials(c.Testimonials.Entries)
}

func normalizeBadges(badges []model.Badge) []model.Badge {
	seen := make(map[string]struct{}, len(badges))
	out := make([]model.Badge, 0, len(badges))
	for _, b := range badges {
		if b.ID == "" {
			b.ID = slug(b.Label)
		}
		if b.ID == "" {
			continue
		}
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		if b.Label == "" {
			b.Label = b.ID
		}
		out = append(out, b)
	}
	return out
}

func normalizeTestimonials(entries []model.Testimonial) []model.Testimonial {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.Testimonial, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; e.ID == "" || dup {
			e.ID = uuid.NewString()
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

func slug(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	return strings.Join(fields, "-")
}

// CodeFor returns the code sample of the badge with the given id.
func CodeFor(c model.Content, id string) (string, bool) {
	for _, b := range c.Hero.Badges {
		if b.ID == id {
			return b.Code, true
		}
	}
	return "", false
}

// BadgeIDs lists the badge ids in display order.
func BadgeIDs(c model.Content) []string {
	ids := make([]string, 0, len(c.Hero.Badges))
	for _, b := range c.Hero.Badges {
		ids = append(ids, b.ID)
	}
	return ids
}
