package rpc

import (
	"context"
	"log/slog"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/service"
)

const codelistTarget = "codelist-service"

// codelistClient implements service.CodelistGateway against the codelist
// service's batched lookup facade.
type codelistClient struct {
	caller  *Caller
	baseURL string
	logger  *slog.Logger
}

// NewCodelistClient is the constructor for codelistClient.
func NewCodelistClient(caller *Caller, cfg *config.Config, logger *slog.Logger) service.CodelistGateway {
	return &codelistClient{
		caller:  caller,
		baseURL: cfg.Services.CodelistURL,
		logger:  logger,
	}
}

// EnrichProfile batches the profile view's coded references into one lookup.
func (c *codelistClient) EnrichProfile(ctx context.Context, view *entity.PersonProfileView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	req.Keys = appendKey(req.Keys, entity.DomainTitlePrefix, view.TitlePrefixCode)
	req.Keys = appendKey(req.Keys, entity.DomainTitleSuffix, view.TitleSuffixCode)
	req.Keys = appendKey(req.Keys, entity.DomainGender, view.GenderCode)
	req.Keys = appendKey(req.Keys, entity.DomainMaritalStatus, view.MaritalStatusCode)
	req.Keys = appendKey(req.Keys, entity.DomainCitizenship, view.CitizenshipCode)
	req.CountryIDs = appendID(req.CountryIDs, view.BirthCountryID)

	return c.lookup(ctx, req)
}

// EnrichAddresses batches both addresses' place references into one lookup.
func (c *codelistClient) EnrichAddresses(ctx context.Context, view *entity.PersonAddressView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	for _, address := range []*entity.Address{view.Permanent, view.Temporary} {
		if address == nil {
			continue
		}
		req.CountryIDs = appendID(req.CountryIDs, address.CountryID)
		req.MunicipalityPartIDs = appendID(req.MunicipalityPartIDs, address.MunicipalityPartID)
	}

	return c.lookup(ctx, req)
}

// EnrichBanking batches the bank codes and euro-account country.
func (c *codelistClient) EnrichBanking(ctx context.Context, view *entity.PersonBankingView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	req.Keys = appendKey(req.Keys, entity.DomainBank, view.BankCode)
	req.Keys = appendKey(req.Keys, entity.DomainEuroBank, view.EuroBankCode)
	req.CountryIDs = appendID(req.CountryIDs, view.EuroCountryID)

	return c.lookup(ctx, req)
}

// EnrichEducation batches the high school, its field of study and the
// country of a foreign school.
func (c *codelistClient) EnrichEducation(ctx context.Context, view *entity.PersonEducationView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	req.HighSchoolID = view.HighSchoolID
	if view.HighSchoolID != nil {
		req.FieldOfStudyNumber = view.FieldOfStudyNumber
	}
	req.CountryIDs = appendID(req.CountryIDs, view.CountryID)

	return c.lookup(ctx, req)
}

// EnrichStudyProgram batches the program's coded fields.
func (c *codelistClient) EnrichStudyProgram(ctx context.Context, view *entity.StudyProgramView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	req.Keys = appendKey(req.Keys, entity.DomainStudyForm, view.FormCode)
	req.Keys = appendKey(req.Keys, entity.DomainStudyType, view.TypeCode)
	req.Keys = appendKey(req.Keys, entity.DomainStudyLanguage, view.LanguageCode)

	return c.lookup(ctx, req)
}

// EnrichStudentProfile batches the student row's coded fields.
func (c *codelistClient) EnrichStudentProfile(ctx context.Context, view *entity.StudentProfileView, language string) (*entity.LookupResult, error) {
	req := entity.LookupRequest{Language: language}
	req.Keys = appendKey(req.Keys, entity.DomainStudyForm, view.StudyFormCode)
	req.Keys = appendKey(req.Keys, entity.DomainStudyState, view.StudyStateCode)

	return c.lookup(ctx, req)
}

// lookup executes the batched call, or skips it entirely when the request
// resolves nothing.
func (c *codelistClient) lookup(ctx context.Context, req entity.LookupRequest) (*entity.LookupResult, error) {
	if req.IsEmpty() {
		c.logger.Debug("codelist lookup skipped, nothing to resolve")

		return nil, nil
	}

	var result entity.LookupResult
	if err := c.caller.Post(ctx, codelistTarget, c.baseURL+"/internal/v1/codelist/lookup", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// appendKey adds a codelist key when the code is present.
func appendKey(keys []entity.CodelistKey, domain string, code *string) []entity.CodelistKey {
	if code == nil || *code == "" {
		return keys
	}

	return append(keys, entity.CodelistKey{Domain: domain, Code: *code})
}

// appendID adds an id when present.
func appendID(ids []int64, id *int64) []int64 {
	if id == nil {
		return ids
	}

	return append(ids, *id)
}
