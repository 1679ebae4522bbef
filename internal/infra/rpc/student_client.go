package rpc

import (
	"context"
	"fmt"

	"campus/config"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/errors"
)

const studentTarget = "student-service"

// studentClient implements service.StudentGateway against the student
// service's internal facades.
type studentClient struct {
	caller  *Caller
	baseURL string
}

// NewStudentClient is the constructor for studentClient.
func NewStudentClient(caller *Caller, cfg *config.Config) service.StudentGateway {
	return &studentClient{
		caller:  caller,
		baseURL: cfg.Services.StudentURL,
	}
}

// StudentIDs lists the student record ids owned by a person. A person
// without student records yields an empty list, not an error.
func (c *studentClient) StudentIDs(ctx context.Context, personID int64) ([]int64, error) {
	endpoint := fmt.Sprintf("%s/internal/v1/persons/%d/student-ids", c.baseURL, personID)

	var payload struct {
		StudentIDs []int64 `json:"studentIds"`
	}
	if err := c.caller.Get(ctx, studentTarget, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.StudentIDs == nil {
		return []int64{}, nil
	}

	return payload.StudentIDs, nil
}

// PersonID resolves the owning person of a student record.
func (c *studentClient) PersonID(ctx context.Context, studentID int64) (int64, error) {
	endpoint := fmt.Sprintf("%s/internal/v1/students/%d/person-id", c.baseURL, studentID)

	var payload struct {
		PersonID int64 `json:"personId"`
	}
	if err := c.caller.Get(ctx, studentTarget, endpoint, &payload); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return 0, errors.Wrap(domainerrors.ErrStudentNotFound, "student not found")
		}

		return 0, err
	}

	return payload.PersonID, nil
}
