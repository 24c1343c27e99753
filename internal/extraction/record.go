package extraction

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Placeholder values substituted when a field cannot be determined.
const (
	DefaultTitle   = "Job Position"
	DefaultCompany = "Company Name"
	DefaultSkill   = "See job description"
	NotSpecified   = "Not specified"
)

// Experience levels and location modes are closed sets.
const (
	LevelEntry  = "Entry-level"
	LevelMid    = "Mid-level"
	LevelSenior = "Senior"

	LocationRemote = "Remote"
	LocationHybrid = "Hybrid"
	LocationOnSite = "On-site"
)

// Record is the structured result of one extraction. Title, company, skills
// and summary are never empty once the record leaves the pipeline.
type Record struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salaryRange"`
	Summary         string   `json:"summary"`
}

// MarshalBinary lets cache implementations store an independent copy.
func (r Record) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalBinary restores a record written by MarshalBinary.
func (r *Record) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}

// applyDefaults fills sentinel values so the record invariants hold on both
// the remote and the heuristic path.
func (r *Record) applyDefaults() {
	if isBlank(r.Title) {
		r.Title = DefaultTitle
	}
	if isBlank(r.Company) {
		r.Company = DefaultCompany
	}
	if len(r.Skills) == 0 {
		r.Skills = []string{DefaultSkill}
	}
	if isBlank(r.ExperienceLevel) {
		r.ExperienceLevel = NotSpecified
	}
	if isBlank(r.Location) {
		r.Location = NotSpecified
	}
	if isBlank(r.SalaryRange) {
		r.SalaryRange = NotSpecified
	}
}

func isBlank(s string) bool {
	for _, ch := range s {
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			return false
		}
	}
	return true
}

// Fingerprint returns the stable cache key for a raw posting text. The hash
// covers the raw input, not the normalized form: two inputs that normalize
// identically but differ in raw bytes do not share a cache entry.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
