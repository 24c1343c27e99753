package postings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	posting := seedPosting("p1", time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	mock.ExpectExec("INSERT INTO postings").
		WithArgs(
			posting.ID,
			posting.Title,
			posting.Company,
			[]byte(`["Go"]`),
			posting.ExperienceLevel,
			posting.Location,
			posting.SalaryRange,
			posting.Summary,
			posting.RawText,
			posting.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), posting); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func pgColumns() []string {
	return []string{
		"id", "title", "company", "skills", "experience_level",
		"location", "salary_range", "summary", "raw_text", "created_at",
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	createdAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(pgColumns()).AddRow(
		"p1", "Backend Engineer", "Acme", []byte(`["Go","SQL"]`),
		"Senior", "Remote", "$100k", "summary", "raw", createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM postings").WithArgs("p1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Backend Engineer" || len(got.Skills) != 2 {
		t.Fatalf("unexpected posting %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM postings").WithArgs("absent").
		WillReturnRows(sqlmock.NewRows(pgColumns()))

	if _, err := repo.GetByID(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	createdAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(pgColumns()).AddRow(
		"p1", "Backend Engineer", "Acme", []byte(`["Go"]`),
		"Senior", "Remote", "$100k", "summary", "raw", createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM postings ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM postings").WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	mock.ExpectExec("DELETE FROM postings").WithArgs("absent").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
