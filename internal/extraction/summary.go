package extraction

import (
	"regexp"
	"strings"
)

const (
	sectionWindow      = 1000
	copulaSearchWindow = 50
	sentenceMaxLen     = 300
	minSectionLine     = 10
	maxSectionLine     = 300
)

type sectionSpec struct {
	heading  string
	anchors  []string
	maxLines int
}

// Anchor order within a section matters: the earliest anchor in this list that
// appears in the text wins.
var summarySections = []sectionSpec{
	{
		heading: "Responsibilities",
		anchors: []string{
			"responsibilities", "what you'll do", "what you will do",
			"your role", "duties", "the role",
		},
		maxLines: 4,
	},
	{
		heading: "Requirements",
		anchors: []string{
			"requirements", "qualifications", "what you'll need",
			"what we're looking for", "who you are", "must have",
		},
		maxLines: 4,
	},
	{
		heading: "Benefits",
		anchors: []string{
			"benefits", "perks", "what we offer", "why join us",
		},
		maxLines: 3,
	},
}

// Webpage boilerplate markers. Text before "full description" and after the
// first footer marker is dropped before section scanning.
var (
	descriptionMarker = "full description"
	footerMarkers     = []string{
		"similar jobs", "related jobs", "report this job", "share this job",
		"about the company page", "cookie policy", "sign in to apply",
	}
)

var copulaPhrases = []string{
	"is a", "is an", "is the leading", "is one of", "is on a mission",
	"was founded", "builds", "provides", "helps",
}

var legalBoilerplateTerms = []string{
	"equal opportunity", "e-verify", "all rights reserved",
	"reasonable accommodation", "without regard to",
}

var (
	emailRe      = regexp.MustCompile(`\S+@\S+\.\S+`)
	bulletTrimRe = regexp.MustCompile(`^[-•*·▪]+\s*`)
)

// Summarize renders a multi-section, human-readable summary from the posting
// text and the already-derived fields. The result is never empty: the header
// line alone is always present.
func Summarize(rawText, title, company, experienceLevel, location, salaryRange string) string {
	text := stripPageBoilerplate(rawText)

	parts := []string{title + " at " + company}

	if detail := detailLine(location, experienceLevel, salaryRange); detail != "" {
		parts = append(parts, detail)
	}
	if about := companySentence(text, company); about != "" {
		parts = append(parts, about)
	}
	for _, spec := range summarySections {
		if section := renderSection(text, spec); section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, "\n\n")
}

// lowerASCII lowercases ASCII letters only, so indexes found in the result
// stay valid in the original string. strings.ToLower can change byte length
// for characters like U+0130.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func stripPageBoilerplate(text string) string {
	lower := lowerASCII(text)
	if idx := strings.Index(lower, descriptionMarker); idx >= 0 {
		text = text[idx+len(descriptionMarker):]
		lower = lower[idx+len(descriptionMarker):]
	}
	cut := len(text)
	for _, marker := range footerMarkers {
		if idx := strings.Index(lower, marker); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return text[:cut]
}

// detailLine joins location, experience and salary with pipes, omitting any
// field that was not determined.
func detailLine(location, experienceLevel, salaryRange string) string {
	var fields []string
	if location != NotSpecified && location != "" {
		fields = append(fields, "Location: "+location)
	}
	if experienceLevel != NotSpecified && experienceLevel != "" {
		fields = append(fields, "Experience: "+experienceLevel)
	}
	if salaryRange != NotSpecified && salaryRange != "" {
		fields = append(fields, "Salary: "+salaryRange)
	}
	return strings.Join(fields, " | ")
}

// companySentence extracts the sentence where the company introduces itself:
// the company's first name token followed within a short window by a copula
// phrase. Short legal boilerplate sentences are skipped.
func companySentence(text, company string) string {
	if isBlank(company) || company == DefaultCompany {
		return ""
	}
	token := strings.Fields(company)[0]
	lower := lowerASCII(text)
	needle := lowerASCII(token)

	from := 0
	for {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			return ""
		}
		idx += from
		from = idx + len(needle)

		window := lower[from:min(from+copulaSearchWindow, len(lower))]
		if !containsCopula(window) {
			continue
		}
		sentence := sentenceAround(text, idx)
		if isLegalBoilerplate(sentence) {
			continue
		}
		return truncateAtWord(sentence, sentenceMaxLen)
	}
}

func containsCopula(window string) bool {
	for _, phrase := range copulaPhrases {
		if strings.Contains(window, phrase) {
			return true
		}
	}
	return false
}

// sentenceAround returns the sentence enclosing position idx, bounded by the
// previous and next period or line break.
func sentenceAround(text string, idx int) string {
	start := 0
	if prev := strings.LastIndexAny(text[:idx], ".\n"); prev >= 0 {
		start = prev + 1
	}
	end := len(text)
	if next := strings.IndexAny(text[idx:], ".\n"); next >= 0 {
		end = idx + next + 1
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text[start:end]), "."))
}

func isLegalBoilerplate(sentence string) bool {
	if len(sentence) >= 100 {
		return false
	}
	lower := strings.ToLower(sentence)
	for _, term := range legalBoilerplateTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func truncateAtWord(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := strings.LastIndex(s[:maxLen], " ")
	if cut <= 0 {
		cut = maxLen
	}
	return strings.TrimSpace(s[:cut]) + "..."
}

// renderSection locates the section by its earliest configured anchor, slices
// the text up to the next anchor header or the window cap, and renders the
// qualifying lines as bullets.
func renderSection(text string, spec sectionSpec) string {
	lower := lowerASCII(text)

	start := -1
	for _, anchor := range spec.anchors {
		if idx := strings.Index(lower, anchor); idx >= 0 {
			start = idx + len(anchor)
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := min(start+sectionWindow, len(text))
	if next := nextAnchorAfter(lower, start, spec.heading); next >= 0 && next < end {
		end = next
	}

	lines := sectionLines(text[start:end], spec.maxLines)
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(spec.heading + ":")
	for _, line := range lines {
		b.WriteString("\n• " + line)
	}
	return b.String()
}

// nextAnchorAfter finds the closest anchor of any other section at or after
// pos, so a captured window never swallows the following section's header.
// Anchors belonging to the section being captured are skipped: a keyword like
// "must have" inside a Requirements bullet must not end the Requirements
// window.
func nextAnchorAfter(lower string, pos int, current string) int {
	next := -1
	for _, spec := range summarySections {
		if spec.heading == current {
			continue
		}
		for _, anchor := range spec.anchors {
			idx := strings.Index(lower[pos:], anchor)
			if idx < 0 {
				continue
			}
			if abs := pos + idx; next < 0 || abs < next {
				next = abs
			}
		}
	}
	return next
}

func sectionLines(block string, maxLines int) []string {
	var out []string
	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		line = bulletTrimRe.ReplaceAllString(line, "")
		line = strings.TrimSuffix(strings.TrimPrefix(line, ":"), ":")
		line = strings.TrimSpace(line)
		if !keepSectionLine(line) {
			continue
		}
		out = append(out, line)
		if len(out) == maxLines {
			break
		}
	}
	return out
}

func keepSectionLine(line string) bool {
	if len(line) < minSectionLine || len(line) > maxSectionLine {
		return false
	}
	if strings.HasPrefix(line, "#") {
		return false
	}
	if emailRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "we offer") || strings.HasPrefix(lower, "we are proud") {
		return false
	}
	for _, term := range legalBoilerplateTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
