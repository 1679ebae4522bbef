package impl

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/errors"
	"campus/internal/usecase"
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	studentRepo repository.StudentRepository
	codelist    service.CodelistGateway
	persons     service.PersonGateway
	studyPlans  service.StudyPlanGateway
	logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(
	studentRepo repository.StudentRepository,
	codelist service.CodelistGateway,
	persons service.PersonGateway,
	studyPlans service.StudyPlanGateway,
	logger *slog.Logger,
) usecase.StudentUsecase {
	return &studentService{
		studentRepo: studentRepo,
		codelist:    codelist,
		persons:     persons,
		studyPlans:  studyPlans,
		logger:      logger,
	}
}

// GetStudentProfile aggregates the student row with the person simple
// profile, the study-program projection and codelist enrichment. The three
// remote branches run concurrently; the first failure cancels the rest.
func (srv *studentService) GetStudentProfile(ctx context.Context, studentID int64, language string) (*entity.StudentProfile, error) {
	srv.logger.Debug("getting student profile", "studentID", studentID, "language", language)

	view, err := srv.studentRepo.FindProfileView(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStudentNotFound, "student not found")
		}

		return nil, errors.Wrap(err, "failed to find student profile")
	}

	var (
		person  *entity.SimpleProfile
		program *entity.ProgramAndField
		lookup  *entity.LookupResult
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		res, err := srv.persons.SimpleProfile(groupCtx, view.PersonID, language)
		if err != nil {
			return wrapBranchErr("person profile", studentID, err)
		}
		person = res

		return nil
	})
	group.Go(func() error {
		res, err := srv.studyPlans.ProgramAndField(groupCtx, view.StudyProgramID, view.StudyPlanID, language)
		if err != nil {
			return wrapBranchErr("study program", studentID, err)
		}
		program = res

		return nil
	})
	group.Go(func() error {
		res, err := srv.codelist.EnrichStudentProfile(groupCtx, view, language)
		if err != nil {
			return wrapBranchErr("student enrichment", studentID, err)
		}
		lookup = res

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &entity.StudentProfile{
		StudentID:      view.StudentID,
		Person:         person,
		Program:        program,
		StudyYear:      view.StudyYear,
		StudyForm:      lookup.Meaning(entity.DomainStudyForm, str(view.StudyFormCode)),
		StudyState:     lookup.Meaning(entity.DomainStudyState, str(view.StudyStateCode)),
		EnrollmentYear: view.EnrollmentYear,
	}, nil
}

// StudentIDs lists the student records owned by a person.
func (srv *studentService) StudentIDs(ctx context.Context, personID int64) ([]int64, error) {
	ids, err := srv.studentRepo.FindStudentIDsByPersonID(ctx, personID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student ids")
	}
	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}

// PersonID resolves the owning person of a student record.
func (srv *studentService) PersonID(ctx context.Context, studentID int64) (int64, error) {
	personID, err := srv.studentRepo.FindPersonIDByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return 0, errors.Wrap(domainerrors.ErrStudentNotFound, "student not found")
		}

		return 0, errors.Wrap(err, "failed to find person id")
	}

	return personID, nil
}
