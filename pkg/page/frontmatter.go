package page

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when front matter is opened but never closed.
var ErrMissingClosingDelimiter = errors.New("front matter: missing closing ---")

// frontMatter is the YAML shape of a front matter block. Both "hidden" and
// "isHidden" are accepted.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Hidden      bool   `yaml:"hidden"`
	IsHidden    bool   `yaml:"isHidden"`
	Category    string `yaml:"category"`
	Order       *int   `yaml:"order"`
}

// SplitFrontMatter separates `---` delimited front matter from the body.
// When the content does not start with a delimiter, had is false and body
// is the full input.
func SplitFrontMatter(content []byte) (fm, body []byte, had bool, err error) {
	nl := []byte("\n")
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = []byte("\r\n")
	}

	open := append([]byte("---"), nl...)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}
	if string(rest) == "---" {
		return []byte{}, []byte{}, true, nil
	}

	closing := append(append([]byte{}, nl...), open...)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// Closing delimiter at EOF without a trailing newline.
		if bytes.HasSuffix(rest, append(append([]byte{}, nl...), "---"...)) {
			return rest[:len(rest)-3], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// ParseFrontMatter decodes a YAML front matter block into Meta.
// An empty block yields nil Meta.
func ParseFrontMatter(fm []byte) (*Meta, error) {
	if len(bytes.TrimSpace(fm)) == 0 {
		return nil, nil
	}

	var raw frontMatter
	if err := yaml.Unmarshal(fm, &raw); err != nil {
		return nil, err
	}

	return &Meta{
		Title:       raw.Title,
		Description: raw.Description,
		Hidden:      raw.Hidden || raw.IsHidden,
		Category:    raw.Category,
		Order:       raw.Order,
	}, nil
}
