package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushantkhatri01/bmk-backend/internal/lib/contentfilter"
	"github.com/sushantkhatri01/bmk-backend/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}
func (m *RepoMock) CreateMessage(ctx context.Context, msg models.ChatMessage) (int64, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) RemoveMessage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestChatService_Create(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		req        models.DummyChatMessage
		setupMocks func(r *RepoMock)
		wantID     int64
		wantErr    bool
		errIs      error
	}{
		{
			name:   "success",
			userID: 1,
			req:    models.DummyChatMessage{Content: "Anyone available for plumbing work?", Timestamp: "2025-06-15T10:00:00Z"},
			setupMocks: func(r *RepoMock) {
				r.On("CreateMessage", mock.Anything, mock.MatchedBy(func(msg models.ChatMessage) bool {
					return msg.UserID == int64(1) && msg.Content == "Anyone available for plumbing work?"
				})).Return(int64(5), nil).Once()
			},
			wantID: 5,
		},
		{
			name:       "prohibited word blocked",
			userID:     1,
			req:        models.DummyChatMessage{Content: "this is badword1 content", Timestamp: "2025-06-15T10:00:00Z"},
			setupMocks: func(_ *RepoMock) {},
			wantErr:    true,
			errIs:      ErrProhibitedContent,
		},
		{
			name:       "prohibited word inside longer text case-insensitive",
			userID:     1,
			req:        models.DummyChatMessage{Content: "look: OFFENSIVE1!!!", Timestamp: "2025-06-15T10:00:00Z"},
			setupMocks: func(_ *RepoMock) {},
			wantErr:    true,
			errIs:      ErrProhibitedContent,
		},
		{
			name:   "repo error",
			userID: 1,
			req:    models.DummyChatMessage{Content: "hello", Timestamp: "2025-06-15T10:00:00Z"},
			setupMocks: func(r *RepoMock) {
				r.On("CreateMessage", mock.Anything, mock.Anything).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo, contentfilter.New(contentfilter.DefaultBadWords), newNoopLogger())

			tt.setupMocks(repo)

			got, err := svc.Create(context.Background(), tt.userID, tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestChatService_List(t *testing.T) {
	messages := []*models.ChatMessage{
		{ID: 1, UserID: 1, Content: "hello", Timestamp: "2025-06-15T10:00:00Z"},
		{ID: 2, UserID: 2, Content: "hi there", Timestamp: "2025-06-15T10:01:00Z"},
	}

	repo := new(RepoMock)
	svc := New(repo, contentfilter.New(contentfilter.DefaultBadWords), newNoopLogger())

	repo.On("ListMessages", mock.Anything).Return(messages, nil).Once()

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, messages, got)

	repo.AssertExpectations(t)
}

func TestChatService_Remove(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, contentfilter.New(contentfilter.DefaultBadWords), newNoopLogger())

	repo.On("RemoveMessage", mock.Anything, int64(3)).Return(nil).Once()

	err := svc.Remove(context.Background(), 3)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}
