// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// CodelistUsecase defines the codelist service's batched lookup operation.
type CodelistUsecase interface {
	Lookup(ctx context.Context, req entity.LookupRequest) (*entity.LookupResult, error)
}

// PersonUsecase defines the user service's profile operations.
type PersonUsecase interface {
	GetProfile(ctx context.Context, personID int64, language string) (*entity.Profile, error)
	GetAddresses(ctx context.Context, personID int64, language string) (*entity.Addresses, error)
	GetBanking(ctx context.Context, personID int64, language string) (*entity.Banking, error)
	GetEducation(ctx context.Context, personID int64, language string) (*entity.Education, error)
	// GetSimpleProfile serves the internal facade consumed by the
	// student service.
	GetSimpleProfile(ctx context.Context, personID int64, language string) (*entity.SimpleProfile, error)
}

// StudentUsecase defines the student service's operations.
type StudentUsecase interface {
	GetStudentProfile(ctx context.Context, studentID int64, language string) (*entity.StudentProfile, error)
	StudentIDs(ctx context.Context, personID int64) ([]int64, error)
	PersonID(ctx context.Context, studentID int64) (int64, error)
}

// StudyProgramUsecase defines the study-plan service's operations.
type StudyProgramUsecase interface {
	GetStudyProgram(ctx context.Context, programID int64, language string) (*entity.StudyProgram, error)
	ProgramAndField(ctx context.Context, programID, planID int64, language string) (*entity.ProgramAndField, error)
}
