// Package service defines the outbound ports to sibling services.
package service

import (
	"context"

	"campus/internal/domain/entity"
)

// CodelistGateway enriches domain views with reference data. Each method
// batches the view's coded references into one remote lookup; when the view
// references nothing, the method returns nil with no remote call.
type CodelistGateway interface {
	EnrichProfile(ctx context.Context, view *entity.PersonProfileView, language string) (*entity.LookupResult, error)
	EnrichAddresses(ctx context.Context, view *entity.PersonAddressView, language string) (*entity.LookupResult, error)
	EnrichBanking(ctx context.Context, view *entity.PersonBankingView, language string) (*entity.LookupResult, error)
	EnrichEducation(ctx context.Context, view *entity.PersonEducationView, language string) (*entity.LookupResult, error)
	EnrichStudyProgram(ctx context.Context, view *entity.StudyProgramView, language string) (*entity.LookupResult, error)
	EnrichStudentProfile(ctx context.Context, view *entity.StudentProfileView, language string) (*entity.LookupResult, error)
}

// PersonGateway exposes the user service's internal person facade.
type PersonGateway interface {
	SimpleProfile(ctx context.Context, personID int64, language string) (*entity.SimpleProfile, error)
}

// StudentGateway exposes the student service's internal lookups.
type StudentGateway interface {
	StudentIDs(ctx context.Context, personID int64) ([]int64, error)
	PersonID(ctx context.Context, studentID int64) (int64, error)
}

// StudyPlanGateway exposes the study-plan service's internal projection.
type StudyPlanGateway interface {
	ProgramAndField(ctx context.Context, programID, planID int64, language string) (*entity.ProgramAndField, error)
}
