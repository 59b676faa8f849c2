package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"dreamforge-app/account-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StepError reports which stage of the cascade failed, carrying the
// underlying store error and its driver code for the caller's response.
type StepError struct {
	Step models.DeletionStep
	Code string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("deletion step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type DeletionService struct {
	repo     AccountRepository
	identity IdentityClient
	notify   func(ctx context.Context, userID string)
}

type AccountRepository interface {
	DeleteProfiles(ctx context.Context, userID string) error
	DeleteSettings(ctx context.Context, userID string) error
}

type IdentityClient interface {
	DeleteUser(ctx context.Context, userID string) error
}

func NewDeletionService(repo AccountRepository, identity IdentityClient, notify func(ctx context.Context, userID string)) *DeletionService {
	return &DeletionService{repo: repo, identity: identity, notify: notify}
}

// DeleteAccount runs the cascade in dependency order: profile rows, settings
// rows, then the identity record itself. The sequence aborts on the first
// failure and never rolls back; every step is delete-by-match, so calling
// again after a partial failure repeats the finished steps as no-ops and
// picks up where the previous attempt stopped.
func (s *DeletionService) DeleteAccount(ctx context.Context, userID string) *StepError {
	if err := s.repo.DeleteProfiles(ctx, userID); err != nil {
		return &StepError{Step: models.StepProfile, Code: mongoErrorCode(err), Err: err}
	}

	if err := s.repo.DeleteSettings(ctx, userID); err != nil {
		return &StepError{Step: models.StepSettings, Code: mongoErrorCode(err), Err: err}
	}

	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		return &StepError{Step: models.StepIdentity, Err: err}
	}

	log.Printf("Account %s deleted", userID)
	if s.notify != nil {
		s.notify(ctx, userID)
	}
	return nil
}

func mongoErrorCode(err error) string {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return strconv.Itoa(int(cmdErr.Code))
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) && len(writeErr.WriteErrors) > 0 {
		return strconv.Itoa(writeErr.WriteErrors[0].Code)
	}
	return ""
}
