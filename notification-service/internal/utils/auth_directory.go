package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthDirectory resolves user ids to email addresses through the auth
// service's administrative lookup endpoint.
type AuthDirectory struct {
	baseURL      string
	serviceToken string
}

func NewAuthDirectory(baseURL, serviceToken string) *AuthDirectory {
	return &AuthDirectory{baseURL: baseURL, serviceToken: serviceToken}
}

func (d *AuthDirectory) LookupEmail(ctx context.Context, userID string) (string, error) {
	url := fmt.Sprintf("%s/admin/users/%s", d.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Service-Token", d.serviceToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Email == "" {
		return "", fmt.Errorf("no email on record for user %s", userID)
	}
	return body.Email, nil
}
