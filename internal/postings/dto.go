package postings

import "time"

type postingResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Location        string   `json:"location"`
	SalaryRange     string   `json:"salaryRange"`
	Summary         string   `json:"summary"`
	CreatedAt       string   `json:"createdAt"`
}

func toResponse(p Posting) postingResponse {
	return postingResponse{
		ID:              p.ID,
		Title:           p.Title,
		Company:         p.Company,
		Skills:          p.Skills,
		ExperienceLevel: p.ExperienceLevel,
		Location:        p.Location,
		SalaryRange:     p.SalaryRange,
		Summary:         p.Summary,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toResponseList(items []Posting) []postingResponse {
	out := make([]postingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	return out
}
