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

const userTarget = "user-service"

// personClient implements service.PersonGateway against the user service's
// internal facade.
type personClient struct {
	caller  *Caller
	baseURL string
}

// NewPersonClient is the constructor for personClient.
func NewPersonClient(caller *Caller, cfg *config.Config) service.PersonGateway {
	return &personClient{
		caller:  caller,
		baseURL: cfg.Services.UserURL,
	}
}

// SimpleProfile fetches the trimmed person projection.
func (c *personClient) SimpleProfile(ctx context.Context, personID int64, language string) (*entity.SimpleProfile, error) {
	endpoint := fmt.Sprintf("%s/internal/v1/persons/%d/simple-profile?lang=%s",
		c.baseURL, personID, url.QueryEscape(language))

	var profile entity.SimpleProfile
	if err := c.caller.Get(ctx, userTarget, endpoint, &profile); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPersonNotFound, "person not found")
		}

		return nil, err
	}

	return &profile, nil
}
