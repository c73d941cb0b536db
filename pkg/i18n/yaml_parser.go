package i18n

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML translation files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content as a single flat YAML mapping. Keys containing dots
// are literal keys, not nested paths; nested mappings are malformed.
func (p *YAMLParser) Parse(content []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(content, &table); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return table, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
