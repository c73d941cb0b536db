package i18n

import "strings"

// Parser decodes translation file content into a flat Table for one
// language. Implementations report which file extensions they handle so the
// preloader can skip unrelated files.
type Parser interface {
	// Parse decodes content into a flat mapping from dotted keys to
	// template strings. Nested structures are rejected as malformed.
	Parse(content []byte) (Table, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (both "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension,
// or nil when the extension is not recognized.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename.
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
