package i18n

import "log/slog"

// Option is a function that configures an I18n instance.
type Option func(*I18n)

// WithFallbackLanguage sets the language bound when no candidate has
// translations. Default is DefaultLanguage. Empty values are ignored.
func WithFallbackLanguage(lang string) Option {
	return func(i *I18n) {
		if lang != "" {
			i.fallback = lang
		}
	}
}

// WithExtractor sets the language extractor producing candidate codes for a
// request. Default is DefaultLangExtractor(). Nil values are ignored.
func WithExtractor(extractor LangExtractor) Option {
	return func(i *I18n) {
		if extractor != nil {
			i.extractor = extractor
		}
	}
}

// WithLogger provides a customizable logger for resolution events.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(i *I18n) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMissingLogging controls whether candidates without translations are
// logged at debug level. Default is false to avoid excessive logging.
func WithMissingLogging(log bool) Option {
	return func(i *I18n) {
		i.logMisses = log
	}
}
