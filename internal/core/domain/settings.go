package domain

import "time"

// Default source and output locations.
const (
	DefaultSourceURL      = "https://www.fundamentus.com.br/resultado.php"
	DefaultTimeout        = 30 * time.Second
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	DefaultAcceptLanguage = "pt-BR,pt;q=0.9,en;q=0.8"

	DefaultOutputDir  = "docs"
	DefaultFullCSV    = "resultado.csv"
	DefaultCuratedCSV = "resultado-clean.csv"
	DefaultHTML       = "resultado.html"
	DefaultXLSX       = "resultado-clean.xlsx"

	// DefaultReplacementThreshold is the number of U+FFFD characters at
	// which a candidate decode is rejected.
	DefaultReplacementThreshold = 5
)

// SourceSettings describes how the screener page is requested.
type SourceSettings struct {
	// URL is the screener page.
	URL string

	// Timeout bounds the whole request.
	Timeout time.Duration

	// UserAgent is sent as the User-Agent header.
	UserAgent string

	// Accept is sent as the Accept header.
	Accept string

	// AcceptLanguage is sent as the Accept-Language header.
	AcceptLanguage string

	// Cookie is an optional session cookie supplied out of band.
	// It is never persisted.
	Cookie string
}

// DecoderSettings tunes charset detection.
type DecoderSettings struct {
	// ReplacementThreshold rejects decodes with at least this many U+FFFD.
	ReplacementThreshold int
}

// OutputSettings controls which files are published and where.
type OutputSettings struct {
	// Dir is the directory receiving every file.
	Dir string

	// FullCSV is the file name of the all-columns CSV.
	FullCSV string

	// CuratedCSV is the file name of the curated CSV.
	CuratedCSV string

	// HTML is the file name of the standalone table fragment.
	HTML string

	// XLSX enables the curated spreadsheet.
	XLSX bool

	// XLSXFile is the file name of the curated spreadsheet.
	XLSXFile string

	// Site enables the index.html landing page and .nojekyll marker.
	Site bool
}

// Settings holds all application settings.
type Settings struct {
	Source  SourceSettings
	Decoder DecoderSettings
	Columns ColumnSet
	Output  OutputSettings
}

// DefaultSettings returns settings matching the public screener page.
func DefaultSettings() Settings {
	return Settings{
		Source: SourceSettings{
			URL:            DefaultSourceURL,
			Timeout:        DefaultTimeout,
			UserAgent:      DefaultUserAgent,
			Accept:         DefaultAccept,
			AcceptLanguage: DefaultAcceptLanguage,
		},
		Decoder: DecoderSettings{
			ReplacementThreshold: DefaultReplacementThreshold,
		},
		Columns: DefaultColumnSet(),
		Output: OutputSettings{
			Dir:        DefaultOutputDir,
			FullCSV:    DefaultFullCSV,
			CuratedCSV: DefaultCuratedCSV,
			HTML:       DefaultHTML,
			XLSX:       false,
			XLSXFile:   DefaultXLSX,
			Site:       true,
		},
	}
}
