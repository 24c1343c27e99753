package postings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobpost-backend/internal/extraction"
)

// Extractor converts raw posting text into a structured record.
type Extractor interface {
	Extract(ctx context.Context, text string) (extraction.Record, error)
}

// Service contains business logic for postings.
type Service struct {
	Repo      Repo
	Extractor Extractor
}

// Create runs the extraction pipeline on the submitted text and persists the
// resulting record.
func (s *Service) Create(ctx context.Context, text string) (Posting, error) {
	if s.Extractor == nil {
		return Posting{}, errors.New("extractor is not configured")
	}
	record, err := s.Extractor.Extract(ctx, text)
	if err != nil {
		return Posting{}, err
	}

	posting := Posting{
		ID:              uuid.NewString(),
		Title:           record.Title,
		Company:         record.Company,
		Skills:          record.Skills,
		ExperienceLevel: record.ExperienceLevel,
		Location:        record.Location,
		SalaryRange:     record.SalaryRange,
		Summary:         record.Summary,
		RawText:         text,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, posting); err != nil {
		return Posting{}, err
	}
	return posting, nil
}

// Get returns a posting by ID.
func (s *Service) Get(ctx context.Context, id string) (Posting, error) {
	if id == "" {
		return Posting{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns postings newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Posting, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Delete removes a posting by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, id)
}
