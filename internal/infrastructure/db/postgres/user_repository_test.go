package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

var userColumns = []string{
	"id", "account", "password", "nickname", "email", "phone_number",
	"area", "height", "weight", "deleted_reason", "created_at", "updated_at",
}

func TestUserRepository_Find_LiveOnly(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(3, "bob", "hash", "Bob", "b@x", "010", "", 180, 70, 0, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE account = $1 AND deleted_reason = $2 ORDER BY CASE WHEN deleted_reason = 0`)).
		WillReturnRows(rows)

	got, err := repo.Find(context.Background(), ports.UserFilter{Account: "bob"}, 2)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 || got[0].Account != "bob" || got[0].Height != 180 {
		t.Fatalf("unexpected users: %+v", got)
	}
	if !got[0].IsLive() {
		t.Fatal("expected live user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Find_IncludeDeleted(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(5, "bob", "hash", "Bob", "b@x", "010", "", 0, 0, 1, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND phone_number = $2 ORDER BY`)).
		WillReturnRows(rows)

	got, err := repo.Find(context.Background(), ports.UserFilter{Email: "b@x", PhoneNumber: "010", IncludeDeleted: true}, 1)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 1 || got[0].DeletedReason != domain.ReasonWithdrawn {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestUserRepository_Find_DBError(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("db down"))

	_, err := repo.Find(context.Background(), ports.UserFilter{Account: "bob"}, 0)
	if err == nil || !regexp.MustCompile(`find users: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUserRepository_FindAll(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "alice", "h", "", "", "", "", 0, 0, 0, now, now).
		AddRow(2, "bob", "h", "", "", "", "", 0, 0, 1, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY id`)).WillReturnRows(rows)

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(got) != 2 || got[1].IsLive() {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestUserRepository_Create_Success(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	got, err := repo.Create(context.Background(), &domain.User{Account: "alice", Password: "hash"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Account != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Create_DuplicateLiveAccount(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.User{Account: "alice", Password: "hash"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	u := &domain.User{ID: 9, Account: "alice", Password: "hash", DeletedReason: domain.ReasonWithdrawn}
	got, err := repo.Update(context.Background(), u)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.DeletedReason != domain.ReasonWithdrawn {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Update_DBError(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(errors.New("db down"))

	_, err := repo.Update(context.Background(), &domain.User{ID: 9, Account: "alice"})
	if err == nil || !regexp.MustCompile(`update user: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
