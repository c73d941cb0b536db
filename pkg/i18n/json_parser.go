package i18n

import (
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements the Parser interface for JSON translation files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes content as a single flat JSON object. Keys containing dots
// are literal keys, not nested paths; nested objects are malformed.
func (p *JSONParser) Parse(content []byte) (Table, error) {
	var table Table
	if err := json.Unmarshal(content, &table); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return table, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
