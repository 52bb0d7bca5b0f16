package repository

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(ctx context.Context, p *project.Project) error
	GetProjectByID(ctx context.Context, id uint) (project.Project, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListProjectsByUserID(ctx context.Context, userID uint) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) CreateProject(ctx context.Context, p *project.Project) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *DBProjectRepo) GetProjectByID(ctx context.Context, id uint) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) ListProjects(ctx context.Context) ([]project.Project, error) {
	projects := []project.Project{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&projects).Error
	return projects, err
}

// ListProjectsByUserID returns projects the user created or holds a membership on.
func (r *DBProjectRepo) ListProjectsByUserID(ctx context.Context, userID uint) ([]project.Project, error) {
	db := r.db.WithContext(ctx)
	memberOf := db.Model(&project.ProjectMember{}).Select("project_id").Where("user_id = ?", userID)

	projects := []project.Project{}
	err := db.Where("created_by = ?", userID).
		Or("id IN (?)", memberOf).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
