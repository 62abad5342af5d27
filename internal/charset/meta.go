package charset

import "regexp"

// MetaUTF8 is the declaration written into decoded pages.
const MetaUTF8 = `<meta charset="utf-8">`

var (
	metaCharset = regexp.MustCompile(`(?i)<meta[^>]*charset=[^>]*>`)
	headOpen    = regexp.MustCompile(`(?i)<head(?:\s[^>]*)?>`)
)

// EnsureUTF8Meta makes markup declare UTF-8.
//
// Only the head's charset declaration is targeted: the first meta tag
// carrying a charset is replaced, otherwise a declaration is inserted
// right after the opening head tag. Markup with neither is unchanged.
func EnsureUTF8Meta(markup string) string {
	if loc := metaCharset.FindStringIndex(markup); loc != nil {
		return markup[:loc[0]] + MetaUTF8 + markup[loc[1]:]
	}
	if loc := headOpen.FindStringIndex(markup); loc != nil {
		return markup[:loc[1]] + MetaUTF8 + markup[loc[1]:]
	}
	return markup
}
