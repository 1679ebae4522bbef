// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/errors"
	"campus/internal/usecase"
)

// codelistService implements the CodelistUsecase interface.
type codelistService struct {
	codelistRepo repository.CodelistRepository
	logger       *slog.Logger
}

// NewCodelistService is the constructor for codelistService.
func NewCodelistService(
	codelistRepo repository.CodelistRepository,
	logger *slog.Logger,
) usecase.CodelistUsecase {
	return &codelistService{
		codelistRepo: codelistRepo,
		logger:       logger,
	}
}

// Lookup resolves every reference the request carries. The four independent
// sub-lookups run concurrently; the first failure cancels the rest and fails
// the whole lookup. Unknown keys are absent from the result, never an error.
func (srv *codelistService) Lookup(ctx context.Context, req entity.LookupRequest) (*entity.LookupResult, error) {
	srv.logger.Debug("codelist lookup",
		"keys", len(req.Keys),
		"countries", len(req.CountryIDs),
		"municipalityParts", len(req.MunicipalityPartIDs),
		"language", req.Language,
	)

	result := &entity.LookupResult{}
	group, groupCtx := errgroup.WithContext(ctx)

	if len(req.Keys) > 0 {
		group.Go(func() error {
			meanings, err := srv.codelistRepo.FindMeaningsByKeys(groupCtx, req.Keys, req.Language)
			if err != nil {
				return errors.Wrap(err, "failed to find meanings")
			}
			result.Meanings = meanings

			return nil
		})
	}

	if len(req.CountryIDs) > 0 {
		group.Go(func() error {
			names, err := srv.codelistRepo.FindCountryNamesByIDs(groupCtx, req.CountryIDs, req.Language)
			if err != nil {
				return errors.Wrap(err, "failed to find country names")
			}
			result.CountryNames = names

			return nil
		})
	}

	if len(req.MunicipalityPartIDs) > 0 {
		group.Go(func() error {
			places, err := srv.codelistRepo.FindPlaceNamesByPartIDs(groupCtx, req.MunicipalityPartIDs)
			if err != nil {
				return errors.Wrap(err, "failed to find place names")
			}
			result.PlaceNames = places

			return nil
		})
	}

	if req.HighSchoolID != nil {
		group.Go(func() error {
			school, err := srv.codelistRepo.FindHighSchool(groupCtx, *req.HighSchoolID)
			if err != nil {
				if errors.Is(err, repository.ErrRecordNotFound) {
					return nil
				}

				return errors.Wrap(err, "failed to find high school")
			}
			if school != nil && req.FieldOfStudyNumber != nil {
				name, err := srv.codelistRepo.FindFieldOfStudyName(groupCtx, *req.FieldOfStudyNumber)
				if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
					return errors.Wrap(err, "failed to find field of study")
				}
				school.FieldOfStudyName = name
			}
			result.HighSchool = school

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "codelist lookup failed")
	}

	return result, nil
}
