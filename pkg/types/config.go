package types

import "time"

// HTTPConfig holds shared HTTP settings for operations that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "docsmart/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PageNumberConfig holds settings for the page-number stamp operation.
// Earlier script generations hardcoded font, size, and margins per variant;
// they are explicit configuration here.
type PageNumberConfig struct {
	// FontSize is the label size in points (default 14).
	FontSize int `json:"font_size" yaml:"font_size"`

	// Position is the page corner anchor: tl, tr, bl, or br (default tr).
	Position string `json:"position" yaml:"position"`

	// Margin is the distance in points from the anchored corner (default 30).
	Margin int `json:"margin" yaml:"margin"`

	// FontFile is an optional TrueType font file. When missing or
	// unloadable the stamp falls back to the built-in font and reports
	// the fallback on the status stream.
	FontFile string `json:"font_file,omitempty" yaml:"font_file,omitempty"`
}

// WatermarkConfig holds settings for the watermark stamp operation.
type WatermarkConfig struct {
	// Text is the watermark text (default "Processed by DocSmart").
	Text string `json:"text" yaml:"text"`

	// FontSize is the watermark size in points (default 40).
	FontSize int `json:"font_size" yaml:"font_size"`

	// Opacity is the fill opacity between 0 and 1 (default 0.2).
	Opacity float64 `json:"opacity" yaml:"opacity"`

	// Rotation is the counterclockwise rotation in degrees (default 45).
	Rotation int `json:"rotation" yaml:"rotation"`
}

// OfficeConfig holds settings for office-suite format conversion.
type OfficeConfig struct {
	// Binary forces a specific office binary instead of auto-detection
	// (soffice first, then libreoffice).
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// FetchConfig holds settings for the fetch operation.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`
}

// HistoryConfig holds settings for the operation history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default .docsmart/history.db).
	Path string `json:"path" yaml:"path"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`

	// MaxResults is the default maximum number of list results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ToolConfig groups all operation configurations.
type ToolConfig struct {
	PageNumber PageNumberConfig `json:"page_number" yaml:"page_number"`
	Watermark  WatermarkConfig  `json:"watermark" yaml:"watermark"`
	Office     OfficeConfig     `json:"office" yaml:"office"`
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
