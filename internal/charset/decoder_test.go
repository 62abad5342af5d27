package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

const accented = "Papel Cotação Patrimônio Líquido Média Ação"

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestNew_Threshold(t *testing.T) {
	assert.Equal(t, domain.DefaultReplacementThreshold, New(0).Threshold())
	assert.Equal(t, domain.DefaultReplacementThreshold, New(-3).Threshold())
	assert.Equal(t, 2, New(2).Threshold())
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		expected []string
	}{
		{"no hint", "", []string{"utf-8", "iso-8859-1", "windows-1252"}},
		{"blank hint", "   ", []string{"utf-8", "iso-8859-1", "windows-1252"}},
		{"duplicate of fallback", "UTF-8", []string{"utf-8", "iso-8859-1", "windows-1252"}},
		{"latin1 hint first", "ISO-8859-1", []string{"iso-8859-1", "utf-8", "windows-1252"}},
		{"unknown hint kept", "x-mac-roman", []string{"x-mac-roman", "utf-8", "iso-8859-1", "windows-1252"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Candidates(tt.declared))
		})
	}
}

func TestDecodeBytes_UTF8Unchanged(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	for _, declared := range []string{"", "utf-8", "UTF-8"} {
		text, label := d.DecodeBytes([]byte(accented), declared)
		assert.Equal(t, accented, text)
		assert.Equal(t, LabelUTF8, label)
	}
}

func TestDecodeBytes_Latin1WithoutHint(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	text, label := d.DecodeBytes(latin1(t, accented), "")

	assert.Equal(t, LabelISO88591, label)
	assert.Equal(t, accented, text)
	assert.Less(t, strings.Count(text, "\uFFFD"), 5)
}

func TestDecodeBytes_Latin1WithFalseHint(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	text, label := d.DecodeBytes(latin1(t, accented), "utf-8")

	assert.Equal(t, LabelISO88591, label)
	assert.Equal(t, accented, text)
}

func TestDecodeBytes_DeclaredCharsetPreferred(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	content, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Preço € 10"))
	require.NoError(t, err)

	text, label := d.DecodeBytes(content, "Windows-1252")
	assert.Equal(t, "windows-1252", label)
	assert.Equal(t, "Preço € 10", text)
}

func TestDecodeBytes_UnknownHintSkipped(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	text, label := d.DecodeBytes([]byte("plain ascii"), "x-not-a-charset")
	assert.Equal(t, LabelUTF8, label)
	assert.Equal(t, "plain ascii", text)
}

func TestDecodeBytes_FewInvalidBytesStayUTF8(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	// Two stray latin1 bytes are below the threshold.
	content := append([]byte("Cota"), 0xE7, 0xE3, 'o')
	text, label := d.DecodeBytes(content, "")

	assert.Equal(t, LabelUTF8, label)
	assert.Equal(t, 2, strings.Count(text, "\uFFFD"))
}

func TestPick_NoPassingCandidate(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	_, _, ok := d.pick(latin1(t, accented), []string{"utf-8", "x-not-a-charset"})
	assert.False(t, ok)
}

func TestPick_FirstPassingWins(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)

	text, label, ok := d.pick(latin1(t, accented), []string{"x-not-a-charset", "utf-8", "windows-1252", "iso-8859-1"})
	require.True(t, ok)
	assert.Equal(t, "windows-1252", label)
	assert.Equal(t, accented, text)
}

func TestDecode_RewritesMeta(t *testing.T) {
	d := New(domain.DefaultReplacementThreshold)
	page := `<html><head><meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1"></head><body>Ação</body></html>`

	raw := &domain.RawDocument{
		URI:     "page.html",
		Charset: "iso-8859-1",
		Content: latin1(t, page),
	}

	text, label := d.Decode(raw)
	assert.Equal(t, LabelISO88591, label)
	assert.Equal(t, `<html><head><meta charset="utf-8"></head><body>Ação</body></html>`, text)
}

func TestDecode_NilDocument(t *testing.T) {
	text, label := New(0).Decode(nil)
	assert.Empty(t, text)
	assert.Equal(t, LabelUTF8, label)
}

func TestUnsupportedError(t *testing.T) {
	_, err := decodeAs([]byte("x"), "x-not-a-charset")
	require.Error(t, err)

	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "x-not-a-charset", unsupported.Label)
	assert.Equal(t, "unsupported charset x-not-a-charset", err.Error())
}
