package utils

import (
	"context"
	"fmt"
	"net/http"
)

// AuthAdminClient calls the auth service's administrative delete-by-id
// endpoint. Deleting a user that is already gone answers 404 there, which the
// cascade treats as success so a retried deletion converges.
type AuthAdminClient struct {
	baseURL      string
	serviceToken string
}

func NewAuthAdminClient(baseURL, serviceToken string) *AuthAdminClient {
	return &AuthAdminClient{baseURL: baseURL, serviceToken: serviceToken}
}

func (c *AuthAdminClient) DeleteUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Service-Token", c.serviceToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNotFound {
		return nil
	}
	return fmt.Errorf("auth service returned status %d", resp.StatusCode)
}
