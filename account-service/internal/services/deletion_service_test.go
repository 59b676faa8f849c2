package services

import (
	"context"
	"errors"
	"testing"

	"dreamforge-app/account-service/internal/models"
)

type fakeAccountRepo struct {
	profiles    int
	settings    int
	profileErr  error
	settingsErr error
	calls       []string
}

func (f *fakeAccountRepo) DeleteProfiles(ctx context.Context, userID string) error {
	f.calls = append(f.calls, "profiles")
	if f.profileErr != nil {
		return f.profileErr
	}
	f.profiles = 0
	return nil
}

func (f *fakeAccountRepo) DeleteSettings(ctx context.Context, userID string) error {
	f.calls = append(f.calls, "settings")
	if f.settingsErr != nil {
		return f.settingsErr
	}
	f.settings = 0
	return nil
}

type fakeIdentity struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, userID string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	// Deleting an absent identity is a no-op success.
	f.exists = false
	return nil
}

func TestDeleteAccount_CascadeOrder(t *testing.T) {
	repo := &fakeAccountRepo{profiles: 1, settings: 1}
	identity := &fakeIdentity{exists: true}
	notified := 0
	svc := NewDeletionService(repo, identity, func(ctx context.Context, userID string) { notified++ })

	if stepErr := svc.DeleteAccount(context.Background(), "u1"); stepErr != nil {
		t.Fatalf("DeleteAccount failed: %v", stepErr)
	}

	if repo.profiles != 0 || repo.settings != 0 || identity.exists {
		t.Error("cascade left records behind")
	}
	want := []string{"profiles", "settings"}
	if len(repo.calls) != 2 || repo.calls[0] != want[0] || repo.calls[1] != want[1] {
		t.Errorf("store deletes ran as %v, want %v", repo.calls, want)
	}
	if identity.calls != 1 {
		t.Errorf("identity delete ran %d times, want 1", identity.calls)
	}
	if notified != 1 {
		t.Errorf("deletion event published %d times, want 1", notified)
	}
}

func TestDeleteAccount_AbortsOnStepFailure(t *testing.T) {
	repo := &fakeAccountRepo{profiles: 1, settings: 1, settingsErr: errors.New("settings store down")}
	identity := &fakeIdentity{exists: true}
	svc := NewDeletionService(repo, identity, nil)

	stepErr := svc.DeleteAccount(context.Background(), "u1")
	if stepErr == nil {
		t.Fatal("expected step error")
	}
	if stepErr.Step != models.StepSettings {
		t.Errorf("failed step = %s, want %s", stepErr.Step, models.StepSettings)
	}
	if identity.calls != 0 {
		t.Error("identity delete must not run after an earlier failure")
	}
	// Partial application stands: profile rows are already gone.
	if repo.profiles != 0 {
		t.Error("profile delete should have completed before the failure")
	}
}

func TestDeleteAccount_RetryConverges(t *testing.T) {
	repo := &fakeAccountRepo{profiles: 1, settings: 1, settingsErr: errors.New("transient")}
	identity := &fakeIdentity{exists: true}
	svc := NewDeletionService(repo, identity, nil)

	if stepErr := svc.DeleteAccount(context.Background(), "u1"); stepErr == nil {
		t.Fatal("first attempt should fail at settings")
	}

	// Second attempt: the settings store recovered; the already-empty profile
	// delete repeats as a no-op.
	repo.settingsErr = nil
	if stepErr := svc.DeleteAccount(context.Background(), "u1"); stepErr != nil {
		t.Fatalf("retry failed: %v", stepErr)
	}
	if repo.profiles != 0 || repo.settings != 0 || identity.exists {
		t.Error("retry did not converge to the fully-deleted state")
	}
}

func TestDeleteAccount_IdentityFailure(t *testing.T) {
	repo := &fakeAccountRepo{profiles: 1, settings: 1}
	identity := &fakeIdentity{exists: true, err: errors.New("auth service unreachable")}
	notified := 0
	svc := NewDeletionService(repo, identity, func(ctx context.Context, userID string) { notified++ })

	stepErr := svc.DeleteAccount(context.Background(), "u1")
	if stepErr == nil || stepErr.Step != models.StepIdentity {
		t.Fatalf("expected identity step error, got %v", stepErr)
	}
	if notified != 0 {
		t.Error("no deletion event on failure")
	}
}
