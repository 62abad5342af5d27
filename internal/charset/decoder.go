package charset

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Encoding labels tried after the declared charset.
const (
	LabelUTF8        = "utf-8"
	LabelISO88591    = "iso-8859-1"
	LabelWindows1252 = "windows-1252"
)

// LabelLossyUTF8 is reported when no candidate passed the threshold.
const LabelLossyUTF8 = "utf-8 (lossy)"

const replacementChar = "\uFFFD"

// fallbacks follow the declared charset, in order.
var fallbacks = []string{LabelUTF8, LabelISO88591, LabelWindows1252}

// Decoder picks the cleanest decode among candidate encodings.
type Decoder struct {
	threshold int
}

// New creates a decoder rejecting decodes with at least threshold
// replacement characters. Non-positive values use the default.
func New(threshold int) *Decoder {
	if threshold <= 0 {
		threshold = domain.DefaultReplacementThreshold
	}
	return &Decoder{threshold: threshold}
}

// Threshold returns the replacement character threshold.
func (d *Decoder) Threshold() int {
	return d.threshold
}

// Decode decodes the document and rewrites its charset declaration to UTF-8.
func (d *Decoder) Decode(raw *domain.RawDocument) (text, label string) {
	if raw == nil {
		return "", LabelUTF8
	}
	text, label = d.DecodeBytes(raw.Content, raw.Charset)
	logger.Debug("decoded %d bytes from %s as %s (declared %q)", len(raw.Content), raw.URI, label, raw.Charset)
	return EnsureUTF8Meta(text), label
}

// DecodeBytes decodes content, trying declared first when present.
// The returned label names the encoding that was used.
func (d *Decoder) DecodeBytes(content []byte, declared string) (text, label string) {
	if text, label, ok := d.pick(content, Candidates(declared)); ok {
		return text, label
	}
	logger.Warn("no candidate encoding below %d replacement characters, decoding as lossy UTF-8", d.threshold)
	return strings.ToValidUTF8(string(content), replacementChar), LabelLossyUTF8
}

// pick returns the first candidate whose decode stays below the threshold.
func (d *Decoder) pick(content []byte, candidates []string) (string, string, bool) {
	for _, label := range candidates {
		text, err := decodeAs(content, label)
		if err != nil {
			logger.Debug("charset %s: %v", label, err)
			continue
		}
		bad := strings.Count(text, replacementChar)
		if bad < d.threshold {
			return text, label, true
		}
		logger.Debug("charset %s: %d replacement characters", label, bad)
	}
	return "", "", false
}

// Candidates returns the ordered, de-duplicated encodings to try.
// The declared charset comes first; labels compare case-insensitively.
func Candidates(declared string) []string {
	seen := make(map[string]bool, len(fallbacks)+1)
	candidates := make([]string, 0, len(fallbacks)+1)
	for _, label := range append([]string{declared}, fallbacks...) {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		candidates = append(candidates, label)
	}
	if len(candidates) == 0 {
		return []string{LabelUTF8}
	}
	return candidates
}

// decodeAs decodes content with the named encoding.
func decodeAs(content []byte, label string) (string, error) {
	enc, err := lookup(label)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// lookup resolves IANA names first so ISO-8859-1 stays distinct from
// windows-1252, then falls back to WHATWG labels.
func lookup(label string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, &UnsupportedError{Label: label}
	}
	return enc, nil
}

// UnsupportedError reports an encoding label with no known decoder.
type UnsupportedError struct {
	Label string
}

func (e *UnsupportedError) Error() string {
	return "unsupported charset " + e.Label
}
