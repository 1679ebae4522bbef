package impl

import (
	"context"
	"log/slog"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/errors"
	"campus/internal/usecase"
)

// studyProgramService implements the StudyProgramUsecase interface.
type studyProgramService struct {
	planRepo repository.StudyPlanRepository
	codelist service.CodelistGateway
	logger   *slog.Logger
}

// NewStudyProgramService is the constructor for studyProgramService.
func NewStudyProgramService(
	planRepo repository.StudyPlanRepository,
	codelist service.CodelistGateway,
	logger *slog.Logger,
) usecase.StudyProgramUsecase {
	return &studyProgramService{
		planRepo: planRepo,
		codelist: codelist,
		logger:   logger,
	}
}

// GetStudyProgram returns the program with its coded fields resolved.
func (srv *studyProgramService) GetStudyProgram(ctx context.Context, programID int64, language string) (*entity.StudyProgram, error) {
	srv.logger.Debug("getting study program", "programID", programID, "language", language)

	view, err := srv.planRepo.FindProgramView(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStudyProgramNotFound, "study program not found")
		}

		return nil, errors.Wrap(err, "failed to find study program")
	}

	lookup, err := srv.codelist.EnrichStudyProgram(ctx, view, language)
	if err != nil {
		return nil, wrapBranchErr("program enrichment", programID, err)
	}

	return &entity.StudyProgram{
		ProgramID: view.ProgramID,
		Code:      view.Code,
		Name:      view.Name,
		Form:      lookup.Meaning(entity.DomainStudyForm, str(view.FormCode)),
		Type:      lookup.Meaning(entity.DomainStudyType, str(view.TypeCode)),
		Language:  lookup.Meaning(entity.DomainStudyLanguage, str(view.LanguageCode)),
		Credits:   view.Credits,
		Semesters: view.Semesters,
	}, nil
}

// ProgramAndField serves the internal projection consumed by the student
// service: the program name plus the plan's field of study.
func (srv *studyProgramService) ProgramAndField(ctx context.Context, programID, planID int64, language string) (*entity.ProgramAndField, error) {
	srv.logger.Debug("getting program and field", "programID", programID, "planID", planID)

	view, err := srv.planRepo.FindProgramView(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStudyProgramNotFound, "study program not found")
		}

		return nil, errors.Wrap(err, "failed to find study program")
	}

	projection := &entity.ProgramAndField{
		ProgramID:   view.ProgramID,
		ProgramName: view.Name,
	}

	plan, err := srv.planRepo.FindPlanView(ctx, planID)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to find study plan")
		}
	} else {
		projection.FieldName = plan.FieldOfStudy
	}

	return projection, nil
}
