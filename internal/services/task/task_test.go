package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/services/quota"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateTask(ctx context.Context, task models.Task, guard func(openCount int) error) (int64, error) {
	args := m.Called(ctx, task, guard)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ReadTask(ctx context.Context, id int64) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) ListTasks(ctx context.Context) ([]*models.TaskInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TaskInfo), args.Error(1)
}
func (m *RepoMock) UpdateTask(ctx context.Context, task models.Task, id int64) error {
	return m.Called(ctx, task, id).Error(0)
}
func (m *RepoMock) RemoveTask(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type EntitlementMock struct{ mock.Mock }

func (m *EntitlementMock) IsPro(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTaskService_Create(t *testing.T) {
	req := models.DummyTask{
		Title:       "Fix leaking tap",
		Description: "Kitchen tap leaks, need a plumber",
	}

	tests := []struct {
		name       string
		userID     int64
		req        models.DummyTask
		setupMocks func(r *RepoMock, e *EntitlementMock)
		wantID     int64
		wantErr    bool
		errIs      error
	}{
		{
			name:   "success with default status",
			userID: 1,
			req:    req,
			setupMocks: func(r *RepoMock, e *EntitlementMock) {
				e.On("IsPro", mock.Anything, int64(1)).Return(false, nil).Once()
				r.On("CreateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
					return task.Title == req.Title && task.Status == "open" && task.UserID == int64(1)
				}), mock.Anything).Return(int64(10), nil).Once()
			},
			wantID: 10,
		},
		{
			name:   "explicit status preserved",
			userID: 1,
			req:    models.DummyTask{Title: "Paint fence", Description: "Two coats", Status: "in_progress"},
			setupMocks: func(r *RepoMock, e *EntitlementMock) {
				e.On("IsPro", mock.Anything, int64(1)).Return(false, nil).Once()
				r.On("CreateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
					return task.Status == "in_progress"
				}), mock.Anything).Return(int64(11), nil).Once()
			},
			wantID: 11,
		},
		{
			name:   "free user over limit gets quota error",
			userID: 2,
			req:    req,
			setupMocks: func(r *RepoMock, e *EntitlementMock) {
				e.On("IsPro", mock.Anything, int64(2)).Return(false, nil).Once()
				// хранилище вызывает guard с актуальным числом открытых задач
				r.On("CreateTask", mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), quota.ErrQuotaExceeded).Once()
			},
			wantErr: true,
			errIs:   quota.ErrQuotaExceeded,
		},
		{
			name:   "entitlement lookup error",
			userID: 3,
			req:    req,
			setupMocks: func(_ *RepoMock, e *EntitlementMock) {
				e.On("IsPro", mock.Anything, int64(3)).Return(false, errors.New("db error")).Once()
			},
			wantErr: true,
		},
		{
			name:   "repo error",
			userID: 1,
			req:    req,
			setupMocks: func(r *RepoMock, e *EntitlementMock) {
				e.On("IsPro", mock.Anything, int64(1)).Return(true, nil).Once()
				r.On("CreateTask", mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			ent := new(EntitlementMock)
			svc := New(repo, ent, quota.New(true, 3), newNoopLogger())

			tt.setupMocks(repo, ent)

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
			ent.AssertExpectations(t)
		})
	}
}

func TestTaskService_CreateGuardUsesEnforcer(t *testing.T) {
	// Guard, переданный хранилищу, должен отражать решение enforcer
	// для фактического числа открытых задач.
	repo := new(RepoMock)
	ent := new(EntitlementMock)
	svc := New(repo, ent, quota.New(true, 3), newNoopLogger())

	ent.On("IsPro", mock.Anything, int64(1)).Return(false, nil).Once()

	var captured func(int) error
	repo.On("CreateTask", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(func(int) error)
		}).
		Return(int64(1), nil).Once()

	_, err := svc.Create(context.Background(), 1, models.DummyTask{Title: "Task", Description: "Desc"})
	assert.NoError(t, err)

	assert.NoError(t, captured(2))
	assert.ErrorIs(t, captured(3), quota.ErrQuotaExceeded)
}

func TestTaskService_Update(t *testing.T) {
	repo := new(RepoMock)
	ent := new(EntitlementMock)
	svc := New(repo, ent, quota.New(true, 3), newNoopLogger())

	repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
		return task.Title == "New title" && task.Status == models.TaskStatusClosed
	}), int64(5)).Return(nil).Once()

	err := svc.Update(context.Background(), 5, models.DummyTask{
		Title:       "New title",
		Description: "New description",
		Status:      models.TaskStatusClosed,
	})
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestTaskService_List(t *testing.T) {
	tasks := []*models.TaskInfo{
		{Task: models.Task{ID: 1, Title: "Fix tap"}, PosterName: "Ram"},
		{Task: models.Task{ID: 2, Title: "Paint fence"}, PosterName: "Sita"},
	}

	repo := new(RepoMock)
	ent := new(EntitlementMock)
	svc := New(repo, ent, quota.New(true, 3), newNoopLogger())

	repo.On("ListTasks", mock.Anything).Return(tasks, nil).Once()

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, tasks, got)

	repo.AssertExpectations(t)
}
