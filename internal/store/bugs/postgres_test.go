package bugs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestInsert_ReturnsAssignedIDAndCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bug_reports .* RETURNING id, created_at`).
		WithArgs("Search", "Finds things", "Finds nothing", "E42", "nil deref", "High", "Open", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("b-1", created))

	got, err := repo.Insert(context.Background(), models.Entry{
		Title: "Search", ExpectedBehavior: "Finds things", ActualBehavior: "Finds nothing",
		ErrorCode: "E42", ErrorMessage: "nil deref",
		Priority: models.PriorityHigh, Status: models.StatusOpen,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "b-1" || !got.CreatedAt.Equal(created) || got.Kind != models.KindBug {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO bug_reports`).
		WillReturnError(errors.New("db is down"))

	_, err := repo.Insert(context.Background(), models.Entry{Title: "x"})
	if !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}

func TestListOrderedByCreatedDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "feature_name", "expected_behavior", "actual_behavior",
		"error_code", "error_message", "priority", "status", "converted_from", "created_at",
	}).
		AddRow("b-2", "Later", "e", "a", "", "", "Normal", "Open", nil, created.Add(time.Hour)).
		AddRow("b-1", "Earlier", "e", "a", "E1", "m", "High", "Resolved", "f-9", created)

	mock.ExpectQuery(`SELECT .* FROM bug_reports\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	got, err := repo.ListOrderedByCreatedDesc(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].ID != "b-2" || got[0].ConvertedFrom != "" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].ConvertedFrom != "f-9" || got[1].Kind != models.KindBug {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestListOrderedByCreatedDesc_EmptyTable(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM bug_reports`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "feature_name", "expected_behavior", "actual_behavior",
			"error_code", "error_message", "priority", "status", "converted_from", "created_at",
		}))

	got, err := repo.ListOrderedByCreatedDesc(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestUpdateFields_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE bug_reports`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFields(context.Background(), "nope", models.PatchStatus(models.StatusClosed))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateFields_PatchesOnlyGivenField(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE bug_reports\s+SET priority = COALESCE\(\$2, priority\), status = COALESCE\(\$3, status\)`).
		WithArgs("b-1", "Critical", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateFields(context.Background(), "b-1", models.PatchPriority(models.PriorityCritical)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteByID_MissingRowIsSuccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM bug_reports WHERE id = \$1`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByID(context.Background(), "nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteByIDs_EmptySliceSkipsQuery(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.DeleteByIDs(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected query: %v", err)
	}
}
