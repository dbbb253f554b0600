package students

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, email, branch, created_at FROM students").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "branch", "created_at"}).
			AddRow(int64(7), "Jane Doe", "jane@uni.edu", "CSE", created))

	repo := &PGRepo{DB: db}
	s, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if s.Name != "Jane Doe" || s.Branch != "CSE" || !s.CreatedAt.Equal(created) {
		t.Fatalf("unexpected student: %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMapsNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM students").WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err = (&PGRepo{DB: db}).GetByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO students").
		WithArgs("Jane Doe", "jane@uni.edu", "CSE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	s, err := (&PGRepo{DB: db}).Create(context.Background(), Student{Name: "Jane Doe", Email: "jane@uni.edu", Branch: "CSE"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID != 3 {
		t.Fatalf("expected id 3, got %d", s.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
