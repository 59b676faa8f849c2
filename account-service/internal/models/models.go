package models

type DeleteAccountRequest struct {
	UserID string `json:"user_id"`
}

// DeletionStep names the stages of the cascade in the order they run.
type DeletionStep string

const (
	StepProfile  DeletionStep = "profile"
	StepSettings DeletionStep = "settings"
	StepIdentity DeletionStep = "identity"
)
