package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationdto "github.com/civicdesk/civicdesk/internal/application/notification/dto"
	"github.com/civicdesk/civicdesk/internal/application/notification/usecases"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/testutil"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

func TestNotificationHandler_List(t *testing.T) {
	var got usecases.ListNotificationsQuery
	handler := NewNotificationHandler(
		&mockListNotificationsUC{ExecuteFunc: func(ctx context.Context, query usecases.ListNotificationsQuery) (*notificationdto.ListResponse, error) {
			got = query
			return &notificationdto.ListResponse{
				Items:       []*notificationdto.NotificationDTO{{ID: 1, Message: "Complaint HA-2025-001 status updated to: resolved"}},
				Total:       1,
				UnreadCount: 1,
				Page:        query.Page,
				PageSize:    query.PageSize,
			}, nil
		}},
		nil,
		testutil.NewMockLogger(),
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2"})
	testutil.SetAuthContext(c, 4)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), got.UserID)
	assert.Equal(t, 2, got.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.EqualValues(t, 1, body["unread_count"])
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
	}{
		{"owned", "5", nil, http.StatusOK},
		{"someone else's", "6", errors.NewNotFoundError("Notification not found."), http.StatusNotFound},
		{"bad id", "zero", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewNotificationHandler(nil,
				&mockMarkNotificationAsReadUC{ExecuteFunc: func(ctx context.Context, cmd usecases.MarkNotificationAsReadCommand) (*notificationdto.NotificationDTO, error) {
					assert.Equal(t, uint(4), cmd.UserID)
					if tt.err != nil {
						return nil, tt.err
					}
					return &notificationdto.NotificationDTO{ID: cmd.ID, IsRead: true}, nil
				}},
				testutil.NewMockLogger(),
			)

			c, w := testutil.NewTestContext(http.MethodPost, "/api/notifications/"+tt.id+"/read", nil)
			testutil.SetURLParam(c, "id", tt.id)
			testutil.SetAuthContext(c, 4)

			handler.MarkRead(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
