package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PreloadStore populates store from a translation file or directory tree.
// A missing path is a no-op. Directories are walked recursively in listing
// order (which is platform-dependent and not relied upon). Files with a
// recognized extension are parsed as a flat mapping and stored under the
// file's base name without extension (e.g. "locales/en.json" -> "en");
// other files are skipped silently.
//
// Preloading is a startup-time operation: malformed content is returned as
// an error and is not recovered from. Run it before serving requests;
// preloading concurrently with lookups on the same store is not supported.
func PreloadStore(store Store, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Join(ErrFailedToReadPath, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return errors.Join(ErrFailedToReadPath, err)
		}
		for _, entry := range entries {
			if err := PreloadStore(store, filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	table, err := parser.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	store.Set(langFromPath(path), table)
	return nil
}

// langFromPath derives the language code from a translation file path:
// the base name without its extension.
func langFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
