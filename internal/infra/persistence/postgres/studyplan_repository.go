package postgres

import (
	"context"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// studyPlanRepository implements repository.StudyPlanRepository on PostgreSQL.
type studyPlanRepository struct {
	db *gorm.DB
}

// NewStudyPlanRepository is the constructor for studyPlanRepository.
func NewStudyPlanRepository(db *gorm.DB) repository.StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

// FindProgramView loads the raw study-program row.
func (r *studyPlanRepository) FindProgramView(ctx context.Context, programID int64) (*entity.StudyProgramView, error) {
	var row model.StudyProgramModel
	err := r.db.WithContext(ctx).
		Where("id = ?", programID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query study program")
	}

	return &entity.StudyProgramView{
		ProgramID:    row.ID,
		Code:         row.Code,
		Name:         row.Name,
		FormCode:     row.FormCode,
		TypeCode:     row.TypeCode,
		LanguageCode: row.LanguageCode,
		Credits:      row.Credits,
		Semesters:    row.Semesters,
	}, nil
}

// FindPlanView loads the raw study-plan row.
func (r *studyPlanRepository) FindPlanView(ctx context.Context, planID int64) (*entity.StudyPlanView, error) {
	var row model.StudyPlanModel
	err := r.db.WithContext(ctx).
		Where("id = ?", planID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query study plan")
	}

	return &entity.StudyPlanView{
		PlanID:       row.ID,
		ProgramID:    row.StudyProgramID,
		FieldOfStudy: row.FieldOfStudy,
	}, nil
}
