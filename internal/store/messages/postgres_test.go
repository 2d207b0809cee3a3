package messages

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

func TestInsert_StoresUnread(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO user_communications .* RETURNING id, created_at`).
		WithArgs("bug", "b-1", "info_request", "Need More Information: Search", "Which browser?", "high", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("m-1", created))

	got, err := repo.Insert(context.Background(), models.Message{
		RelatedEntryKind: models.KindBug,
		RelatedEntryID:   "b-1",
		Type:             models.MessageInfoRequest,
		Subject:          "Need More Information: Search",
		Body:             "Which browser?",
		Priority:         models.MessagePriorityHigh,
		FromAdmin:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "m-1" || got.IsRead || got.ReadAt != nil {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestMarkRead_KeepsOriginalTimestamp(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE user_communications\s+SET is_read = true, read_at = COALESCE\(read_at, \$2\)`).
		WithArgs("m-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkRead(context.Background(), "m-1", at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkRead_MissingRowIsSuccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE user_communications`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkRead(context.Background(), "gone", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListOrderedByCreatedDesc_ReadAtNullable(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	read := created.Add(time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "item_type", "item_id", "message_type", "subject", "message",
		"priority", "from_admin", "is_read", "created_at", "read_at",
	}).
		AddRow("m-2", "bug", "b-1", "general", "s", "b", "normal", true, false, created.Add(time.Minute), nil).
		AddRow("m-1", "feature", "f-1", "update", "s", "b", "low", true, true, created, read)

	mock.ExpectQuery(`SELECT .* FROM user_communications\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	got, err := repo.ListOrderedByCreatedDesc(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].ReadAt != nil {
		t.Fatalf("unread message has read_at: %+v", got[0])
	}
	if got[1].ReadAt == nil || !got[1].ReadAt.Equal(read) {
		t.Fatalf("read message lost read_at: %+v", got[1])
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM user_communications`).
		WillReturnError(errors.New("db is down"))

	_, err := repo.ListOrderedByCreatedDesc(context.Background())
	if !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}
