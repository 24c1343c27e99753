package extraction

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

const (
	minInputLength = 10
	minInputWords  = 5
	maxSymbolRatio = 0.5
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRe   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	htmlCommentRe  = regexp.MustCompile(`(?s)<!--.*?-->`)
	chromeBlockRe  = regexp.MustCompile(`(?is)<(?:nav|header|footer|aside)\b[^>]*>.*?</(?:nav|header|footer|aside)>`)
	adBlockRe      = regexp.MustCompile(`(?is)<div\b[^>]*(?:class|id)="[^"]*(?:advert|sponsor|banner|promo)[^"]*"[^>]*>.*?</div>`)
	htmlTagRe      = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	horizSpaceRe   = regexp.MustCompile(`[ \t\x{00a0}]+`)
	trailingWSRe   = regexp.MustCompile(`(?m)[ \t]+$`)
	extraBreaksRe  = regexp.MustCompile(`\n{3,}`)
	crlfReplacer   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalize cleans pasted posting text: decodes HTML entities, removes markup
// noise, and collapses whitespace while preserving line structure for the
// line-oriented heuristics downstream.
func Normalize(text string) string {
	out := html.UnescapeString(text)
	out = crlfReplacer.Replace(out)

	out = scriptBlockRe.ReplaceAllString(out, " ")
	out = styleBlockRe.ReplaceAllString(out, " ")
	out = htmlCommentRe.ReplaceAllString(out, " ")
	out = chromeBlockRe.ReplaceAllString(out, " ")
	out = adBlockRe.ReplaceAllString(out, " ")
	out = htmlTagRe.ReplaceAllString(out, "\n")

	out = horizSpaceRe.ReplaceAllString(out, " ")
	out = trailingWSRe.ReplaceAllString(out, "")
	out = extraBreaksRe.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// IsValid reports whether the input is plausible prose worth extracting. It is
// the only input gate in the pipeline: rejection here short-circuits before
// any cache lookup or remote call.
func IsValid(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if len(trimmed) < minInputLength {
		return false
	}
	if len(strings.Fields(trimmed)) < minInputWords {
		return false
	}

	var total, symbols int
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			symbols++
		}
	}
	if total == 0 {
		return false
	}
	return float64(symbols)/float64(total) <= maxSymbolRatio
}
