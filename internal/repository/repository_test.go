package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/linskybing/issue-tracker/internal/domain/user"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateUser sets id", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewUserRepo(gdb)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		u := &user.User{Email: "a@example.com", Name: "A", CreatedAt: time.Now()}
		require.NoError(t, r.CreateUser(ctx, u))
		assert.Equal(t, uint(7), u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewUserRepo(gdb)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		mock.ExpectRollback()

		err := r.CreateUser(ctx, &user.User{Email: "a@example.com", Name: "A"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewUserRepo(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := r.GetUserByID(ctx, 99)
		assert.True(t, repository.IsNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListUsers empty returns empty slice", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewUserRepo(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY id ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name"}))

		users, err := r.ListUsers(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestProjectRepo_ListProjectsByUserID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewProjectRepo(gdb)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE created_by = \$1 OR id IN \(SELECT "project_id" FROM "project_members" WHERE user_id = \$2\) ORDER BY id ASC`).
		WithArgs(3, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_by"}).
			AddRow(1, "mine", 3).
			AddRow(4, "shared", 9))

	projects, err := r.ListProjectsByUserID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "mine", projects[0].Name)
	assert.Equal(t, uint(4), projects[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateMember unique violation", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewMemberRepo(gdb)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "project_members"`)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_project_members_pair"})
		mock.ExpectRollback()

		err := r.CreateMember(ctx, &project.ProjectMember{ProjectID: 1, UserID: 2, Role: project.RoleView})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetMember by pair", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewMemberRepo(gdb)

		mock.ExpectQuery(`SELECT \* FROM "project_members" WHERE project_id = \$1 AND user_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "user_id", "role"}).
				AddRow(5, 1, 2, "view"))

		m, err := r.GetMember(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, project.RoleView, m.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIssueRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("ListIssuesByProject applies filters", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewIssueRepo(gdb)

		status := issue.StatusOpen
		assignee := uint(4)
		mock.ExpectQuery(`SELECT \* FROM "issues" WHERE project_id = \$1 AND status = \$2 AND assigned_to = \$3 ORDER BY id ASC`).
			WithArgs(2, "open", 4).
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "status"}).AddRow(1, 2, "open"))

		issues, err := r.ListIssuesByProject(ctx, 2, issue.Filters{Status: &status, AssignedTo: &assignee})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProjectIDByIssueID", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewIssueRepo(gdb)

		mock.ExpectQuery(`SELECT "project_id" FROM "issues" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(12))

		pid, err := r.GetProjectIDByIssueID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(12), pid)
	})

	t.Run("UpdateIssueFields missing row", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		r := repository.NewIssueRepo(gdb)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "issues" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := r.UpdateIssueFields(ctx, 42, map[string]interface{}{"title": "x", "updated_at": time.Now()})
		assert.True(t, repository.IsNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepo_ListOrdersOldestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewCommentRepo(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE issue_id = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "issue_id", "content"}).
			AddRow(1, 8, "first").
			AddRow(2, 8, "second"))

	comments, err := r.ListCommentsByIssue(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, []string{comments[0].Content, comments[1].Content})
}

func TestAuditRepo_DeleteAuditLogsBefore(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewAuditRepo(gdb)

	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "audit_logs" WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := r.DeleteAuditLogsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_DeleteAuditLogsBeforeFailure(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewAuditRepo(gdb)

	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "audit_logs" WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	n, err := r.DeleteAuditLogsBefore(context.Background(), cutoff)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, n)
}

func TestAuditRepo_GetAuditLogsNewestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewAuditRepo(gdb)

	userID := uint(4)
	action := "update"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE user_id = $1 AND action = $2 ORDER BY created_at DESC, id DESC`)).
		WithArgs(userID, action).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "action"}).
			AddRow(9, 4, "update").
			AddRow(7, 4, "update"))

	logs, err := r.GetAuditLogs(context.Background(), repository.AuditQueryParams{UserID: &userID, Action: &action})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, []uint{9, 7}, []uint{logs[0].ID, logs[1].ID})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_GetAuditLogsEmpty(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := repository.NewAuditRepo(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" ORDER BY created_at DESC, id DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	logs, err := r.GetAuditLogs(context.Background(), repository.AuditQueryParams{})
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestReposExecTxRollsBack(t *testing.T) {
	gdb, mock := newMockDB(t)
	repos := repository.NewRepositories(gdb)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repos.ExecTx(context.Background(), func(tx *repository.Repos) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}
