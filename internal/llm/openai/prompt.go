package openai

import "fmt"

// Message represents a chat message sent to the completion endpoint.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a job posting analysis engine. Extract structured job data from the posting. Respond with a single JSON object only. No markdown, no commentary."

// schemaTemplate is embedded literally in the user message so the model sees
// the exact output shape and the allowed enumeration values.
const schemaTemplate = `{
  "title": "job title",
  "company": "company name",
  "skills": ["skill1", "skill2"],
  "experienceLevel": "Entry-level | Mid-level | Senior | Not specified",
  "location": "Remote | Hybrid | On-site | Not specified",
  "salaryRange": "e.g. $80,000 - $100,000, or Not specified",
  "descriptionSummary": "short multi-section summary of the role"
}`

// BuildPrompt creates the chat messages for a posting extraction request.
func BuildPrompt(postingText string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(postingText)},
	}
}

func buildUserPrompt(postingText string) string {
	return fmt.Sprintf("Extract the fields below from this job posting. Return JSON matching this schema exactly:\n%s\n\nJob Posting:\n%s", schemaTemplate, postingText)
}
