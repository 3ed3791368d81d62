package program

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a document that decoded but does not have the expected shape.
var ErrInvalid = errors.New("invalid program document")

// Format selects the decoder for a program file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForExt maps a file extension to a Format.
func FormatForExt(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	}
	return 0, false
}

// Decode parses and validates a program document.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the shape assumptions the views rely on: a name, at least
// one day, and non-empty unique day ids.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalid)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(d.Days) == 0 {
		return fmt.Errorf("%w: at least one day is required", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(d.Days))
	for i, day := range d.Days {
		id := strings.TrimSpace(day.ID)
		if id == "" {
			return fmt.Errorf("%w: day %d has no id", ErrInvalid, i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate day id %q", ErrInvalid, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidID reports whether id is a usable program identifier. Identifiers
// become path segments, so anything outside a lowercase slug is refused.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

const videoSearchBase = "https://www.youtube.com/results?search_query="

// VideoSearchURL builds the outbound demo link for a free-text query.
// Spaces are encoded as %20 and every reserved character is escaped.
// An empty query yields an empty string.
func VideoSearchURL(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	return videoSearchBase + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
