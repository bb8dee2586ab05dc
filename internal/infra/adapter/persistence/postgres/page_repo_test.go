package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"post-scheduler/internal/domain/entity"
	pg "post-scheduler/internal/infra/adapter/persistence/postgres"
)

func pageRow(p *entity.Page) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "external_id", "name", "active", "created_at",
	}).AddRow(p.ID, p.ExternalID, p.Name, p.Active, p.CreatedAt)
}

func TestPageRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.Page{ID: 2, ExternalID: "ext-200", Name: "Product Updates", Active: true, CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(2)).
		WillReturnRows(pageRow(want))

	repo := pg.NewPageRepo(db)
	got, err := repo.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPageRepo_SetPrimary(t *testing.T) {
	t.Run("swap happens inside one transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectExec("SET is_primary = false").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("SET is_primary = true").
			WithArgs(int64(2), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := pg.NewPageRepo(db)
		if err := repo.SetPrimary(context.Background(), 2, 5); err != nil {
			t.Fatalf("SetPrimary err=%v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("missing assignment rolls back", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectExec("SET is_primary = false").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("SET is_primary = true").
			WithArgs(int64(2), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := pg.NewPageRepo(db)
		err := repo.SetPrimary(context.Background(), 2, 99)
		if !errors.Is(err, entity.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestPageRepo_Assign_FirstAssignmentBecomesPrimary(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// Even though the caller asked for a non-primary assignment, the first
	// assignment clears and claims primary.
	mock.ExpectExec("SET is_primary = false").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO page_assignments").
		WithArgs(int64(2), int64(5), true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := pg.NewPageRepo(db)
	if err := repo.Assign(context.Background(), 2, 5, false); err != nil {
		t.Fatalf("Assign err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPageRepo_Unassign_PromotesNextPrimary(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM page_assignments").
		WithArgs(int64(2), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"is_primary"}).AddRow(true))
	mock.ExpectExec("SET is_primary = true").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewPageRepo(db)
	if err := repo.Unassign(context.Background(), 2, 5); err != nil {
		t.Fatalf("Unassign err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPageRepo_SetActive_ReturnsPreviousValue(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT active FROM pages").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(true))
	mock.ExpectExec("UPDATE pages SET active").
		WithArgs(false, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := pg.NewPageRepo(db)
	wasActive, err := repo.SetActive(context.Background(), 2, false)
	if err != nil {
		t.Fatalf("SetActive err=%v", err)
	}
	if !wasActive {
		t.Fatal("expected previous value true")
	}
}
