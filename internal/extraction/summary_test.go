package extraction

import (
	"strings"
	"testing"
)

func TestSummarizeHeaderAlwaysPresent(t *testing.T) {
	got := Summarize("", DefaultTitle, DefaultCompany, NotSpecified, NotSpecified, NotSpecified)
	if got != "Job Position at Company Name" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummarizeDetailLineOmitsUnknowns(t *testing.T) {
	got := Summarize("", "Backend Engineer", "Acme", LevelSenior, NotSpecified, "$80k - $90k")
	lines := strings.Split(got, "\n\n")
	if len(lines) < 2 {
		t.Fatalf("expected detail line, got %q", got)
	}
	if lines[0] != "Backend Engineer at Acme" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "Experience: Senior | Salary: $80k - $90k" {
		t.Fatalf("unexpected detail line %q", lines[1])
	}
	if strings.Contains(got, "Location:") {
		t.Fatalf("expected unknown location omitted, got %q", got)
	}
}

func TestSummarizeCompanySentence(t *testing.T) {
	text := "Acme is a leading robotics maker in Europe. We ship reliable machines every week."
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if !strings.Contains(got, "Acme is a leading robotics maker in Europe") {
		t.Fatalf("expected company sentence, got %q", got)
	}
}

func TestSummarizeSkipsCompanySentenceForPlaceholder(t *testing.T) {
	text := "Company Name is a placeholder often left in templates."
	got := Summarize(text, "Engineer", DefaultCompany, NotSpecified, NotSpecified, NotSpecified)
	if strings.Contains(got, "placeholder") {
		t.Fatalf("expected no company sentence for placeholder company, got %q", got)
	}
}

func TestSummarizeCapsSectionLines(t *testing.T) {
	text := strings.Join([]string{
		"Responsibilities:",
		"- Design and build backend services",
		"- Operate our deployment pipeline",
		"- Review code from other teammates",
		"- Mentor newer members of the team",
		"- Attend weekly planning sessions",
		"- Write documentation for new features",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if !strings.Contains(got, "Responsibilities:") {
		t.Fatalf("expected responsibilities section, got %q", got)
	}
	if bullets := strings.Count(got, "• "); bullets != 4 {
		t.Fatalf("expected 4 bullets, got %d in %q", bullets, got)
	}
	if strings.Contains(got, "planning sessions") || strings.Contains(got, "documentation") {
		t.Fatalf("expected excess lines dropped, got %q", got)
	}
}

func TestSummarizeSectionStopsAtNextAnchor(t *testing.T) {
	text := strings.Join([]string{
		"Responsibilities:",
		"- Design and build backend services",
		"Requirements:",
		"- Comfort with distributed systems",
		"- Production debugging experience",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	sections := strings.Split(got, "\n\n")
	var respSection string
	for _, s := range sections {
		if strings.HasPrefix(s, "Responsibilities:") {
			respSection = s
		}
	}
	if respSection == "" {
		t.Fatalf("expected responsibilities section in %q", got)
	}
	if strings.Contains(respSection, "distributed systems") {
		t.Fatalf("responsibilities section swallowed requirements: %q", respSection)
	}
	if !strings.Contains(got, "Requirements:") {
		t.Fatalf("expected requirements section, got %q", got)
	}
}

func TestSummarizeDropsFooterContent(t *testing.T) {
	text := strings.Join([]string{
		"Benefits:",
		"- Generous learning budget every year",
		"Similar jobs",
		"Requirements:",
		"- This belongs to another posting entirely",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if !strings.Contains(got, "learning budget") {
		t.Fatalf("expected benefits content, got %q", got)
	}
	if strings.Contains(got, "another posting") {
		t.Fatalf("expected footer content dropped, got %q", got)
	}
}

func TestSummarizeSectionKeepsOwnAnchorInContent(t *testing.T) {
	text := strings.Join([]string{
		"Requirements:",
		"- Must have 5+ years of Go experience",
		"- Experience operating production systems",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if !strings.Contains(got, "Requirements:") {
		t.Fatalf("expected requirements section, got %q", got)
	}
	if !strings.Contains(got, "5+ years of Go experience") {
		t.Fatalf("expected first bullet kept despite keyword, got %q", got)
	}
	if !strings.Contains(got, "production systems") {
		t.Fatalf("expected second bullet kept, got %q", got)
	}
}

func TestSummarizeOwnAnchorDoesNotEndSectionBeforeNextHeader(t *testing.T) {
	text := strings.Join([]string{
		"Responsibilities:",
		"- Own your role end to end and ship weekly improvements",
		"Requirements:",
		"- Solid experience with distributed systems",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	var respSection string
	for _, s := range strings.Split(got, "\n\n") {
		if strings.HasPrefix(s, "Responsibilities:") {
			respSection = s
		}
	}
	if !strings.Contains(respSection, "your role end to end") {
		t.Fatalf("expected bullet with section keyword kept, got %q", got)
	}
	if strings.Contains(respSection, "distributed systems") {
		t.Fatalf("responsibilities section swallowed requirements: %q", respSection)
	}
	if !strings.Contains(got, "Requirements:") {
		t.Fatalf("expected requirements section, got %q", got)
	}
}

func TestSummarizeBlankCompanyHasNoCompanySentence(t *testing.T) {
	text := "Acme is a leading robotics maker in Europe."
	got := Summarize(text, "Engineer", "   ", NotSpecified, NotSpecified, NotSpecified)
	if strings.Contains(got, "robotics") {
		t.Fatalf("expected no company sentence for blank company, got %q", got)
	}
}

func TestSummarizeSectionOffsetsSurviveNonASCIIText(t *testing.T) {
	text := strings.Join([]string{
		"İstanbul, İzmir, Ankara ve İstanbul ofisleri İçin İlan",
		"Responsibilities:",
		"- Design good APIs for partners",
		"- Mentor junior engineers on the team",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if !strings.Contains(got, "• Design good APIs for partners") {
		t.Fatalf("expected intact first bullet, got %q", got)
	}
	if !strings.Contains(got, "• Mentor junior engineers on the team") {
		t.Fatalf("expected intact second bullet, got %q", got)
	}
}

func TestSummarizeFiltersNoiseLines(t *testing.T) {
	text := strings.Join([]string{
		"Requirements:",
		"- short",
		"- Contact careers@example.com with questions",
		"- We are an equal opportunity employer",
		"- Solid experience operating production systems",
	}, "\n")
	got := Summarize(text, "Engineer", "Acme", NotSpecified, NotSpecified, NotSpecified)
	if strings.Contains(got, "short") {
		t.Fatalf("expected short line dropped, got %q", got)
	}
	if strings.Contains(got, "careers@example.com") {
		t.Fatalf("expected email line dropped, got %q", got)
	}
	if strings.Contains(got, "equal opportunity") {
		t.Fatalf("expected legal line dropped, got %q", got)
	}
	if !strings.Contains(got, "production systems") {
		t.Fatalf("expected real requirement kept, got %q", got)
	}
}
