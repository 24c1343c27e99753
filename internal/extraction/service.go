package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"jobpost-backend/internal/llm"
	"jobpost-backend/internal/shared/cache"
	"jobpost-backend/internal/shared/metrics"
	"jobpost-backend/internal/shared/telemetry"
)

// ErrInvalidInput marks text that fails validation. It is the only error the
// pipeline surfaces to callers; every other failure degrades to heuristics.
var ErrInvalidInput = errors.New("posting text is empty or not recognizable as a job posting")

const (
	cacheTTL       = 30 * time.Minute
	cacheKeyPrefix = "extraction:"

	defaultRemoteTimeout = 30 * time.Second
	defaultMaxTextLength = 12000
)

// Options configures one Service instance. Endpoint, credential and model are
// consumed when the llm.Client is built; the orchestrator itself uses the
// timeout and length limits.
type Options struct {
	Endpoint       string
	APIKey         string
	Model          string
	MaxRetries     int
	TimeoutSeconds int
	MaxTextLength  int
}

// Service sequences one extraction: validate, cache lookup, normalize, remote
// attempt or heuristic fallback, sentinel defaulting, cache store.
type Service struct {
	LLM   llm.Client
	Cache cache.Cache

	remoteTimeout time.Duration
	maxTextLength int
}

// NewService constructs a Service. LLM may be nil, in which case every call
// takes the heuristic path.
func NewService(client llm.Client, store cache.Cache, opts Options) *Service {
	timeout := time.Duration(opts.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	maxLen := opts.MaxTextLength
	if maxLen <= 0 {
		maxLen = defaultMaxTextLength
	}
	return &Service{
		LLM:           client,
		Cache:         store,
		remoteTimeout: timeout,
		maxTextLength: maxLen,
	}
}

// Extract converts a pasted job posting into a structured record. For valid
// input it always returns a complete record: remote failures, malformed
// replies, and a missing credential all fall back to heuristic extraction.
func (s *Service) Extract(ctx context.Context, text string) (Record, error) {
	if !IsValid(text) {
		return Record{}, ErrInvalidInput
	}

	// The fingerprint covers the raw input, before truncation and
	// normalization.
	fingerprint := Fingerprint(text)
	key := cacheKeyPrefix + fingerprint

	if s.Cache != nil {
		var cached Record
		if err := s.Cache.Get(ctx, key, &cached); err == nil {
			metrics.IncExtractionCacheHit()
			telemetry.Info("extraction.cache_hit", map[string]any{
				"fingerprint": fingerprint,
			})
			return cached, nil
		}
	}

	started := time.Now()
	metrics.IncExtractionStarted()

	working := truncateRunes(text, s.maxTextLength)
	normalized := Normalize(working)

	record, err := s.remoteExtract(ctx, normalized)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Info("extraction.fallback", map[string]any{
				"fingerprint": fingerprint,
				"reason":      err.Error(),
			})
		}
		metrics.IncExtractionFallback()
		record = s.heuristicExtract(normalized)
	}
	record.applyDefaults()

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, &record, cacheTTL); err != nil {
			telemetry.Error("extraction.cache_store", map[string]any{
				"fingerprint": fingerprint,
				"error":       err.Error(),
			})
		}
	}

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDuration(time.Since(started))
	return record, nil
}

// heuristicExtract is the error-of-last-resort path: pure computation over
// already-validated text, so it cannot fail.
func (s *Service) heuristicExtract(normalized string) Record {
	record := ExtractFields(normalized)
	record.applyDefaults()
	record.Summary = Summarize(
		normalized,
		record.Title,
		record.Company,
		record.ExperienceLevel,
		record.Location,
		record.SalaryRange,
	)
	return record
}

// remoteReply mirrors the schema the model is asked to produce. Field names
// match case-insensitively.
type remoteReply struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Skills             []string `json:"skills"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Location           string   `json:"location"`
	SalaryRange        string   `json:"salaryRange"`
	DescriptionSummary string   `json:"descriptionSummary"`
}

func (s *Service) remoteExtract(ctx context.Context, normalized string) (Record, error) {
	if s.LLM == nil {
		return Record{}, llm.ErrNotConfigured
	}

	callCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	raw, err := s.LLM.ExtractPosting(callCtx, normalized)
	if err != nil {
		return Record{}, err
	}

	var reply remoteReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return Record{}, err
	}

	record := Record{
		Title:           strings.TrimSpace(reply.Title),
		Company:         strings.TrimSpace(reply.Company),
		Skills:          cleanSkills(reply.Skills),
		ExperienceLevel: canonicalLevel(reply.ExperienceLevel),
		Location:        canonicalLocation(reply.Location),
		SalaryRange:     strings.TrimSpace(reply.SalaryRange),
		Summary:         strings.TrimSpace(reply.DescriptionSummary),
	}
	if record.Title == "" && record.Company == "" && len(record.Skills) == 0 {
		return Record{}, errors.New("remote reply carries no usable values")
	}
	if record.Summary == "" {
		record.applyDefaults()
		record.Summary = Summarize(
			normalized,
			record.Title,
			record.Company,
			record.ExperienceLevel,
			record.Location,
			record.SalaryRange,
		)
	}
	return record, nil
}

func cleanSkills(skills []string) []string {
	var out []string
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func canonicalLevel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "entry-level", "entry level", "entry", "junior":
		return LevelEntry
	case "mid-level", "mid level", "mid", "intermediate":
		return LevelMid
	case "senior":
		return LevelSenior
	default:
		return NotSpecified
	}
}

func canonicalLocation(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "remote":
		return LocationRemote
	case "hybrid":
		return LocationHybrid
	case "on-site", "onsite":
		return LocationOnSite
	default:
		return NotSpecified
	}
}

func truncateRunes(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
