package repository

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/project"
	"gorm.io/gorm"
)

type MemberRepo interface {
	CreateMember(ctx context.Context, member *project.ProjectMember) error
	GetMember(ctx context.Context, projectID, userID uint) (project.ProjectMember, error)
	ListMembersByProject(ctx context.Context, projectID uint) ([]project.ProjectMember, error)
	WithTx(tx *gorm.DB) MemberRepo
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{
		db: db,
	}
}

func (r *DBMemberRepo) CreateMember(ctx context.Context, member *project.ProjectMember) error {
	return translate(r.db.WithContext(ctx).Create(member).Error)
}

func (r *DBMemberRepo) GetMember(ctx context.Context, projectID, userID uint) (project.ProjectMember, error) {
	var m project.ProjectMember
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&m).Error
	return m, err
}

func (r *DBMemberRepo) ListMembersByProject(ctx context.Context, projectID uint) ([]project.ProjectMember, error) {
	members := []project.ProjectMember{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *DBMemberRepo) WithTx(tx *gorm.DB) MemberRepo {
	if tx == nil {
		return r
	}
	return &DBMemberRepo{
		db: tx,
	}
}
