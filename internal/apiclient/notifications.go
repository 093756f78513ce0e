package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/studyhall-dev/studyhall-web/internal/api"
)

// GetNotifications fetches one page of the authenticated user's feed.
func (c *APIClient) GetNotifications(r *http.Request, page int) (api.NotificationsPage, error) {
	var feed api.NotificationsPage
	path := "/v1/notifications"
	if page > 1 {
		path = fmt.Sprintf("%s?page=%d", path, page)
	}
	resp, err := c.do("GET", path, nil, r.Cookies()...)
	if err != nil {
		return feed, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return feed, fmt.Errorf("failed to get notifications: %s", string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return feed, fmt.Errorf("cannot decode notifications response: %w", err)
	}

	// Initialize empty array if nil
	if feed.Data == nil {
		feed.Data = []api.NotificationRecord{}
	}
	return feed, nil
}

// MarkNotificationRead marks one notification as read.
func (c *APIClient) MarkNotificationRead(r *http.Request, id string) (*api.MutationResponse, error) {
	return c.mutate(r, "POST", fmt.Sprintf("/v1/notifications/%s/read", id))
}

// MarkAllNotificationsRead marks the whole feed as read in one call.
func (c *APIClient) MarkAllNotificationsRead(r *http.Request) (*api.MutationResponse, error) {
	return c.mutate(r, "POST", "/v1/notifications/read_all")
}

// DeleteNotification removes one notification.
func (c *APIClient) DeleteNotification(r *http.Request, id string) (*api.MutationResponse, error) {
	return c.mutate(r, "DELETE", fmt.Sprintf("/v1/notifications/%s", id))
}

// mutate fires a mutation and parses the optional {message} body. A missing
// or unreadable body on success is not an error.
func (c *APIClient) mutate(r *http.Request, method, path string) (*api.MutationResponse, error) {
	resp, err := c.do(method, path, nil, r.Cookies()...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("mutation %s %s failed (status %d): %s", method, path, resp.StatusCode, string(bodyBytes))
	}

	var result api.MutationResponse
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &result); err != nil {
			return nil, nil
		}
	}
	return &result, nil
}
