package repository

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"gorm.io/gorm"
)

type IssueRepo interface {
	CreateIssue(ctx context.Context, i *issue.Issue) error
	GetIssueByID(ctx context.Context, id uint) (issue.Issue, error)
	GetProjectIDByIssueID(ctx context.Context, id uint) (uint, error)
	ListIssuesByProject(ctx context.Context, projectID uint, f issue.Filters) ([]issue.Issue, error)
	UpdateIssueFields(ctx context.Context, id uint, fields map[string]interface{}) error
	WithTx(tx *gorm.DB) IssueRepo
}

type DBIssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *DBIssueRepo {
	return &DBIssueRepo{
		db: db,
	}
}

func (r *DBIssueRepo) CreateIssue(ctx context.Context, i *issue.Issue) error {
	return translate(r.db.WithContext(ctx).Create(i).Error)
}

func (r *DBIssueRepo) GetIssueByID(ctx context.Context, id uint) (issue.Issue, error) {
	var i issue.Issue
	err := r.db.WithContext(ctx).First(&i, id).Error
	return i, err
}

func (r *DBIssueRepo) GetProjectIDByIssueID(ctx context.Context, id uint) (uint, error) {
	var row struct{ ProjectID uint }
	err := r.db.WithContext(ctx).Model(&issue.Issue{}).
		Select("project_id").
		Where("id = ?", id).
		Take(&row).Error
	return row.ProjectID, err
}

func (r *DBIssueRepo) ListIssuesByProject(ctx context.Context, projectID uint, f issue.Filters) ([]issue.Issue, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Priority != nil {
		query = query.Where("priority = ?", *f.Priority)
	}
	if f.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *f.AssignedTo)
	}

	issues := []issue.Issue{}
	err := query.Order("id ASC").Find(&issues).Error
	return issues, err
}

// UpdateIssueFields writes the given columns. A nil value stores NULL.
func (r *DBIssueRepo) UpdateIssueFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&issue.Issue{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBIssueRepo) WithTx(tx *gorm.DB) IssueRepo {
	if tx == nil {
		return r
	}
	return &DBIssueRepo{
		db: tx,
	}
}
