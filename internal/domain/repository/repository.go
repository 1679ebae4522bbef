// Package repository defines the persistence ports of the domain layer.
package repository

import (
	"context"

	"campus/internal/domain/entity"
	"campus/internal/errors"
)

// ErrRecordNotFound is returned by point-reads when no row matches.
var ErrRecordNotFound = errors.New("record not found")

// CodelistRepository resolves reference data for the batched lookup.
type CodelistRepository interface {
	// FindMeaningsByKeys returns the localized meanings for the given keys.
	// Unknown keys are simply absent from the result.
	FindMeaningsByKeys(ctx context.Context, keys []entity.CodelistKey, language string) (map[entity.CodelistKey]entity.CodelistMeaning, error)
	// FindCountryNamesByIDs returns country display names by id.
	FindCountryNamesByIDs(ctx context.Context, ids []int64, language string) (map[int64]string, error)
	// FindPlaceNamesByPartIDs returns the place-name triple per
	// municipality-part id.
	FindPlaceNamesByPartIDs(ctx context.Context, ids []int64) (map[int64]entity.PlaceName, error)
	// FindHighSchool returns the institution record with its address
	// place names resolved.
	FindHighSchool(ctx context.Context, id int64) (*entity.HighSchool, error)
	// FindFieldOfStudyName resolves a field-of-study number to its name.
	FindFieldOfStudyName(ctx context.Context, number string) (*string, error)
}

// PersonRepository serves the user service's point-reads.
type PersonRepository interface {
	FindProfileView(ctx context.Context, personID int64) (*entity.PersonProfileView, error)
	FindAddressView(ctx context.Context, personID int64) (*entity.PersonAddressView, error)
	FindBankingView(ctx context.Context, personID int64) (*entity.PersonBankingView, error)
	FindEducationView(ctx context.Context, personID int64) (*entity.PersonEducationView, error)
}

// StudentRepository serves the student service's point-reads.
type StudentRepository interface {
	FindProfileView(ctx context.Context, studentID int64) (*entity.StudentProfileView, error)
	// FindStudentIDsByPersonID lists the student records of one person.
	FindStudentIDsByPersonID(ctx context.Context, personID int64) ([]int64, error)
	// FindPersonIDByStudentID resolves the owning person of a student record.
	FindPersonIDByStudentID(ctx context.Context, studentID int64) (int64, error)
}

// StudyPlanRepository serves the study-plan service's point-reads.
type StudyPlanRepository interface {
	FindProgramView(ctx context.Context, programID int64) (*entity.StudyProgramView, error)
	FindPlanView(ctx context.Context, planID int64) (*entity.StudyPlanView, error)
}
