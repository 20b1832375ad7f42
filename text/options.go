package text

import "log/slog"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	index int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{index: 0}
}

// WithCollectionIndex selects the font inside a TTC/OTC collection.
// Single font files only accept index 0.
func WithCollectionIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryConfig)

// libraryConfig holds configuration for Library.
type libraryConfig struct {
	logger    *slog.Logger
	cacheDir  string
	system    bool
	fontFiles []string
}

// defaultLibraryConfig returns the default library configuration:
// system fonts enabled, index cached in the platform cache directory.
func defaultLibraryConfig() libraryConfig {
	return libraryConfig{
		logger: slog.New(slog.DiscardHandler),
		system: true,
	}
}

// WithLogger sets the logger used for font scanning warnings.
// Passing nil keeps logging disabled.
func WithLogger(l *slog.Logger) LibraryOption {
	return func(c *libraryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCacheDir sets the directory holding the system font index.
// An empty string selects the platform default.
func WithCacheDir(dir string) LibraryOption {
	return func(c *libraryConfig) {
		c.cacheDir = dir
	}
}

// WithoutSystemFonts disables scanning the installed fonts.
// Useful for tests and for tools that only work with explicit files.
func WithoutSystemFonts() LibraryOption {
	return func(c *libraryConfig) {
		c.system = false
	}
}

// WithFontFiles adds font files to the library in addition to (or instead
// of) the installed fonts.
func WithFontFiles(paths ...string) LibraryOption {
	return func(c *libraryConfig) {
		c.fontFiles = append(c.fontFiles, paths...)
	}
}
