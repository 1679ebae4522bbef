package impl

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/errors"
	"campus/internal/usecase"
)

// personService implements the PersonUsecase interface.
type personService struct {
	personRepo repository.PersonRepository
	codelist   service.CodelistGateway
	students   service.StudentGateway
	logger     *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(
	personRepo repository.PersonRepository,
	codelist service.CodelistGateway,
	students service.StudentGateway,
	logger *slog.Logger,
) usecase.PersonUsecase {
	return &personService{
		personRepo: personRepo,
		codelist:   codelist,
		students:   students,
		logger:     logger,
	}
}

// GetProfile returns the enriched person profile. The stored view is read
// first; when the person does not exist no remote call is made. Codelist
// enrichment and the student-ids lookup then run concurrently.
func (srv *personService) GetProfile(ctx context.Context, personID int64, language string) (*entity.Profile, error) {
	srv.logger.Debug("getting person profile", "personID", personID, "language", language)

	view, err := srv.personRepo.FindProfileView(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, errors.Wrap(err, "failed to find person profile")
	}

	var (
		lookup     *entity.LookupResult
		studentIDs []int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		res, err := srv.codelist.EnrichProfile(groupCtx, view, language)
		if err != nil {
			return wrapBranchErr("profile enrichment", personID, err)
		}
		lookup = res

		return nil
	})
	group.Go(func() error {
		ids, err := srv.students.StudentIDs(groupCtx, personID)
		if err != nil {
			return wrapBranchErr("student ids", personID, err)
		}
		studentIDs = ids

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if studentIDs == nil {
		studentIDs = []int64{}
	}

	return &entity.Profile{
		PersonID:         view.PersonID,
		FirstName:        view.FirstName,
		LastName:         view.LastName,
		BirthSurname:     view.BirthSurname,
		Titles:           resolveTitles(view, lookup),
		Gender:           lookup.Meaning(entity.DomainGender, str(view.GenderCode)),
		MaritalStatus:    lookup.Meaning(entity.DomainMaritalStatus, str(view.MaritalStatusCode)),
		Citizenship:      lookup.Meaning(entity.DomainCitizenship, str(view.CitizenshipCode)),
		BirthCountryName: lookup.CountryName(view.BirthCountryID),
		BirthPlace:       view.BirthPlace,
		BirthDate:        view.BirthDate,
		Email:            view.Email,
		Phone:            view.Phone,
		StudentIDs:       studentIDs,
	}, nil
}

// GetAddresses returns the person's addresses with country and municipality
// references resolved to display names.
func (srv *personService) GetAddresses(ctx context.Context, personID int64, language string) (*entity.Addresses, error) {
	srv.logger.Debug("getting person addresses", "personID", personID, "language", language)

	view, err := srv.personRepo.FindAddressView(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, errors.Wrap(err, "failed to find person addresses")
	}

	lookup, err := srv.codelist.EnrichAddresses(ctx, view, language)
	if err != nil {
		return nil, wrapBranchErr("address enrichment", personID, err)
	}

	return &entity.Addresses{
		PersonID:  view.PersonID,
		Permanent: resolveAddress(view.Permanent, lookup),
		Temporary: resolveAddress(view.Temporary, lookup),
	}, nil
}

// GetBanking returns the person's banking data with bank codes resolved.
func (srv *personService) GetBanking(ctx context.Context, personID int64, language string) (*entity.Banking, error) {
	srv.logger.Debug("getting person banking", "personID", personID, "language", language)

	view, err := srv.personRepo.FindBankingView(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, errors.Wrap(err, "failed to find person banking")
	}

	lookup, err := srv.codelist.EnrichBanking(ctx, view, language)
	if err != nil {
		return nil, wrapBranchErr("banking enrichment", personID, err)
	}

	return &entity.Banking{
		PersonID:        view.PersonID,
		AccountNumber:   view.AccountNumber,
		AccountPrefix:   view.AccountPrefix,
		BankName:        lookup.Meaning(entity.DomainBank, str(view.BankCode)),
		EuroAccount:     view.EuroAccountNumber,
		EuroBankName:    lookup.Meaning(entity.DomainEuroBank, str(view.EuroBankCode)),
		EuroIBAN:        view.EuroIBAN,
		EuroCountryName: lookup.CountryName(view.EuroCountryID),
	}, nil
}

// GetEducation returns the person's secondary education with the high
// school, field of study and country resolved.
func (srv *personService) GetEducation(ctx context.Context, personID int64, language string) (*entity.Education, error) {
	srv.logger.Debug("getting person education", "personID", personID, "language", language)

	view, err := srv.personRepo.FindEducationView(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, errors.Wrap(err, "failed to find person education")
	}

	lookup, err := srv.codelist.EnrichEducation(ctx, view, language)
	if err != nil {
		return nil, wrapBranchErr("education enrichment", personID, err)
	}

	education := &entity.Education{
		PersonID:          view.PersonID,
		GraduationYear:    view.GraduationYear,
		ForeignSchoolName: view.ForeignSchoolName,
		CountryName:       lookup.CountryName(view.CountryID),
	}
	if lookup != nil {
		education.HighSchool = lookup.HighSchool
	}

	return education, nil
}

// GetSimpleProfile serves the trimmed projection consumed by the student
// service.
func (srv *personService) GetSimpleProfile(ctx context.Context, personID int64, language string) (*entity.SimpleProfile, error) {
	srv.logger.Debug("getting person simple profile", "personID", personID, "language", language)

	view, err := srv.personRepo.FindProfileView(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, errors.Wrap(err, "failed to find person profile")
	}

	lookup, err := srv.codelist.EnrichProfile(ctx, view, language)
	if err != nil {
		return nil, wrapBranchErr("profile enrichment", personID, err)
	}

	return &entity.SimpleProfile{
		PersonID:  view.PersonID,
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Titles:    resolveTitles(view, lookup),
		Email:     view.Email,
	}, nil
}

// resolveTitles maps the stored title codes to display texts.
func resolveTitles(view *entity.PersonProfileView, lookup *entity.LookupResult) entity.Titles {
	return entity.Titles{
		Prefix: lookup.Meaning(entity.DomainTitlePrefix, str(view.TitlePrefixCode)),
		Suffix: lookup.Meaning(entity.DomainTitleSuffix, str(view.TitleSuffixCode)),
	}
}

// resolveAddress maps one stored address to its resolved form, or nil when
// the address is absent.
func resolveAddress(addr *entity.Address, lookup *entity.LookupResult) *entity.ResolvedAddress {
	if addr == nil {
		return nil
	}
	resolved := &entity.ResolvedAddress{
		Street:      addr.Street,
		HouseNumber: addr.HouseNumber,
		Zip:         addr.Zip,
		CountryName: lookup.CountryName(addr.CountryID),
	}
	if place := lookup.PlaceName(addr.MunicipalityPartID); place != nil {
		resolved.Municipality = &place.Municipality
		resolved.MunicipalityPart = &place.MunicipalityPart
		resolved.District = &place.District
	}

	return resolved
}

// wrapBranchErr normalizes an aggregation branch failure: taxonomy errors
// pass through, context cancellation surfaces as an interrupted fetch, and
// anything else is wrapped with the operation and the requested id.
func wrapBranchErr(operation string, id int64, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return errors.Wrap(domainerrors.ErrFetchInterrupted, operation)
	}

	return domainerrors.NewFetchError(operation, strconv.FormatInt(id, 10), err)
}

// str dereferences an optional string, returning "" for nil.
func str(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
