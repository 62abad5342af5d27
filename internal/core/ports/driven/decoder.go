package driven

import "github.com/custodia-labs/fundamentus-cli/internal/core/domain"

// Decoder turns raw bytes into valid UTF-8 markup.
// Decoding never fails; a lossy UTF-8 decode is the last resort.
type Decoder interface {
	// Decode returns the decoded markup, with its charset declaration
	// rewritten to UTF-8, and the label of the encoding that was chosen.
	Decode(raw *domain.RawDocument) (text string, label string)
}
