package rpc

import (
	"context"
	"fmt"
	"net/url"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/errors"
)

const studyPlanTarget = "study-plan-service"

// studyPlanClient implements service.StudyPlanGateway against the
// study-plan service's internal facade.
type studyPlanClient struct {
	caller  *Caller
	baseURL string
}

// NewStudyPlanClient is the constructor for studyPlanClient.
func NewStudyPlanClient(caller *Caller, cfg *config.Config) service.StudyPlanGateway {
	return &studyPlanClient{
		caller:  caller,
		baseURL: cfg.Services.StudyPlanURL,
	}
}

// ProgramAndField fetches the program-and-field projection.
func (c *studyPlanClient) ProgramAndField(ctx context.Context, programID, planID int64, language string) (*entity.ProgramAndField, error) {
	endpoint := fmt.Sprintf("%s/internal/v1/programs/%d/plans/%d?lang=%s",
		c.baseURL, programID, planID, url.QueryEscape(language))

	var projection entity.ProgramAndField
	if err := c.caller.Get(ctx, studyPlanTarget, endpoint, &projection); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStudyProgramNotFound, "study program not found")
		}

		return nil, err
	}

	return &projection, nil
}
