package postgres

import (
	"context"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// studentRepository implements repository.StudentRepository on PostgreSQL.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindProfileView loads the raw student row.
func (r *studentRepository) FindProfileView(ctx context.Context, studentID int64) (*entity.StudentProfileView, error) {
	var row model.StudentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", studentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to query student")
	}

	return &entity.StudentProfileView{
		StudentID:      row.ID,
		PersonID:       row.PersonID,
		StudyProgramID: row.StudyProgramID,
		StudyPlanID:    row.StudyPlanID,
		StudyYear:      row.StudyYear,
		StudyFormCode:  row.StudyFormCode,
		StudyStateCode: row.StudyStateCode,
		EnrollmentYear: row.EnrollmentYear,
	}, nil
}

// FindStudentIDsByPersonID lists the student record ids owned by a person.
func (r *studentRepository) FindStudentIDsByPersonID(ctx context.Context, personID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("person_id = ?", personID).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query student ids")
	}

	return ids, nil
}

// FindPersonIDByStudentID resolves the owning person of a student record.
func (r *studentRepository) FindPersonIDByStudentID(ctx context.Context, studentID int64) (int64, error) {
	var row model.StudentModel
	err := r.db.WithContext(ctx).
		Select("person_id").
		Where("id = ?", studentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrRecordNotFound
		}

		return 0, errors.Wrap(err, "failed to query student person id")
	}

	return row.PersonID, nil
}
