package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// Role keywords that mark a line as a plausible job title.
var roleKeywords = []string{
	"developer", "engineer", "designer", "manager", "analyst",
	"architect", "lead", "senior", "junior", "specialist", "consultant",
}

// skillVocabulary is the fixed technology vocabulary. Matches are reported in
// vocabulary order regardless of where they appear in the text.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "React", "Angular", "Vue",
	"Next.js", "Node.js", "Express", "Django", "Flask", "Spring", "Rails",
	"Laravel", "GraphQL", "REST", "HTML", "CSS", "Sass", "Tailwind", "SQL",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"RabbitMQ", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"Ansible", "Jenkins", "Git", "CI/CD", "Linux", "Agile", "Scrum",
	"Machine Learning", "TensorFlow", "PyTorch", "Figma", "Photoshop",
}

var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		out[i] = regexp.MustCompile(`(?i)(?:\A|[^a-z0-9])` + regexp.QuoteMeta(skill) + `(?:[^a-z0-9]|\z)`)
	}
	return out
}

// Phrases that follow "at"/"@" in prose without naming an employer.
var companyDenyPhrases = []string{
	"least", "the moment", "this time", "the time", "a glance", "all times",
	"your convenience", "the heart", "scale", "once", "first", "the end",
	"the forefront", "home", "work",
}

var (
	// Horizontal whitespace only: a company name never spans lines.
	legalSuffixRe = regexp.MustCompile(`([A-Z][A-Za-z0-9&'.-]*(?:[ \t]+[A-Z][A-Za-z0-9&'.-]*){0,4}),?[ \t]+(Inc\.?|Corp\.?|LLC|Ltd\.?|Co\.)`)
	atCompanyRe   = regexp.MustCompile(`(?:\bat[ \t]+|@[ \t]*)([A-Z][A-Za-z0-9&'.-]*(?:[ \t]+[A-Z][A-Za-z0-9&'.-]*){0,3})`)

	markdownEmphasisRe = regexp.MustCompile(`\*\*|__|^#+\s`)
	yearsOfExpRe       = regexp.MustCompile(`(\d+)\s*\+?\s*year`)
	seniorRe           = regexp.MustCompile(`(?i)\b(senior|sr\.?|lead)\b`)
	juniorRe           = regexp.MustCompile(`(?i)\b(junior|jr\.?|entry)\b`)
	midRe              = regexp.MustCompile(`(?i)\b(mid|intermediate)\b`)

	salaryRangeRe  = regexp.MustCompile(`([$£])\s?(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?[kK]?)\s*(?:-|–|—|\bto\b)\s*[$£]?\s?(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?[kK]?)`)
	salarySingleRe = regexp.MustCompile(`([$£])\s?(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?[kK]?)`)

	numericLineRe = regexp.MustCompile(`^\d[\d\s.,-]*$`)
)

// Words that disqualify a line from being read as a company name.
var companyNoiseWords = []string{
	"remote", "hybrid", "on-site", "onsite", "salary", "location", "full-time",
	"part-time", "contract", "apply", "posted", "$", "£",
}

// ExtractFields derives every field except the summary from normalized text
// using deterministic pattern and keyword matchers. Each field is independent;
// within a field the first matching rule wins.
func ExtractFields(text string) Record {
	lines := splitLines(text)
	title, titleIdx := extractTitle(lines)
	return Record{
		Title:           title,
		Company:         extractCompany(text, lines, titleIdx),
		Skills:          ExtractSkills(text),
		ExperienceLevel: ExtractExperienceLevel(text),
		Location:        ExtractLocation(text),
		SalaryRange:     ExtractSalaryRange(text),
	}
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// extractTitle returns the first short line containing a role keyword along
// with its index, so the company matcher can inspect the following line.
func extractTitle(lines []string) (string, int) {
	for i, line := range lines {
		if len(line) >= 100 {
			continue
		}
		lower := strings.ToLower(line)
		keyword := false
		for _, kw := range roleKeywords {
			if strings.Contains(lower, kw) {
				keyword = true
				break
			}
		}
		if !keyword {
			continue
		}
		if markdownEmphasisRe.MatchString(line) || strings.Contains(lower, " at ") || containsEmoji(line) {
			continue
		}
		return line, i
	}
	return "", -1
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F000 || (r >= 0x2600 && r <= 0x27BF) {
			return true
		}
	}
	return false
}

func extractCompany(text string, lines []string, titleIdx int) string {
	if m := legalSuffixRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSuffix(strings.TrimSpace(m[1]), ",") + " " + m[2]
	}

	for _, m := range atCompanyRe.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || isDeniedCompany(candidate) {
			continue
		}
		return candidate
	}

	if titleIdx >= 0 && titleIdx+1 < len(lines) {
		if next := lines[titleIdx+1]; isPlausibleCompanyLine(next) {
			return next
		}
	}
	return ""
}

func isDeniedCompany(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, phrase := range companyDenyPhrases {
		if lower == phrase || strings.HasPrefix(lower, phrase+" ") {
			return true
		}
	}
	return false
}

func isPlausibleCompanyLine(line string) bool {
	if line == "" || len(line) > 60 {
		return false
	}
	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	if numericLineRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, noise := range companyNoiseWords {
		if strings.Contains(lower, noise) {
			return false
		}
	}
	for _, skill := range skillVocabulary {
		if strings.EqualFold(line, skill) {
			return false
		}
	}
	return true
}

// ExtractSkills matches the technology vocabulary against the text and keeps
// hits in vocabulary order.
func ExtractSkills(text string) []string {
	var out []string
	for i, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			out = append(out, skillVocabulary[i])
		}
	}
	return out
}

// ExtractExperienceLevel classifies seniority. Explicit keywords win over
// years-of-experience figures, so "Senior Developer, 2 years on our stack"
// still reads as Senior.
func ExtractExperienceLevel(text string) string {
	switch {
	case seniorRe.MatchString(text):
		return LevelSenior
	case juniorRe.MatchString(text):
		return LevelEntry
	case midRe.MatchString(text):
		return LevelMid
	}
	if m := yearsOfExpRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		years := 0
		for _, ch := range m[1] {
			years = years*10 + int(ch-'0')
		}
		switch {
		case years >= 5:
			return LevelSenior
		case years >= 2:
			return LevelMid
		default:
			return LevelEntry
		}
	}
	return NotSpecified
}

// ExtractLocation classifies the work mode from location keywords.
func ExtractLocation(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "remote"):
		return LocationRemote
	case strings.Contains(lower, "hybrid"):
		return LocationHybrid
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"), strings.Contains(lower, "office"):
		return LocationOnSite
	}
	return NotSpecified
}

// ExtractSalaryRange finds a currency range, falling back to a single amount.
// The currency symbol of the first match determines the formatted output.
func ExtractSalaryRange(text string) string {
	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		sym := m[1]
		return sym + compactAmount(m[2]) + " - " + sym + compactAmount(m[3])
	}
	if m := salarySingleRe.FindStringSubmatch(text); m != nil {
		return m[1] + compactAmount(m[2])
	}
	return NotSpecified
}

func compactAmount(amount string) string {
	return strings.ReplaceAll(strings.TrimSpace(amount), " ", "")
}
