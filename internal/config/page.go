package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_page.yaml
var defaultPage []byte

var (
	ErrNoSections  = errors.New("page has no sections")
	ErrMusicVolume = errors.New("music volume must be within [0, 1]")
)

// Section is one full-height block of the page. Sections are themed by
// their position: the first five pick the intro, dawn, clouds, memories
// and proposal themes.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type Music struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type Page struct {
	Title       string    `yaml:"title"`
	Sections    []Section `yaml:"sections"`
	Question    string    `yaml:"question"`
	Yes         string    `yaml:"yes"`
	No          string    `yaml:"no"`
	Celebration string    `yaml:"celebration"`
	Music       Music     `yaml:"music"`
}

// DefaultPage returns the embedded page.
func DefaultPage() (*Page, error) {
	return ParsePage(defaultPage)
}

// LoadPage reads a page from path. An empty path yields the default page.
func LoadPage(path string) (*Page, error) {
	if path == "" {
		return DefaultPage()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	p, err := ParsePage(data)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return p, nil
}

func ParsePage(data []byte) (*Page, error) {
	p := &Page{
		Title: WindowTitle,
		Yes:   "Yes",
		No:    "No",
		Music: Music{Volume: MusicVolume, Loop: true},
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Page) Validate() error {
	if len(p.Sections) == 0 {
		return ErrNoSections
	}
	if p.Music.Volume < 0 || p.Music.Volume > 1 {
		return fmt.Errorf("%w: got %v", ErrMusicVolume, p.Music.Volume)
	}
	return nil
}
