package entitlement

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sushantkhatri01/bmk-backend/internal/models"
	"github.com/sushantkhatri01/bmk-backend/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *RepoMock) UpsertSubscription(ctx context.Context, userID int64, plan string, expiresAt *time.Time) error {
	return m.Called(ctx, userID, plan, expiresAt).Error(0)
}

func (m *RepoMock) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(repo *RepoMock, cache *CacheMock, now time.Time) *Service {
	svc := New(repo, cache, newNoopLogger(), 30)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEntitlementService_Get(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		userID  int64
		sub     *models.Subscription
		repoErr error
		want    *models.Entitlement
		wantErr bool
	}{
		{
			name:   "no subscription row means free plan",
			userID: 1,
			sub:    nil, repoErr: repository.ErrSubscriptionNotFound,
			want: &models.Entitlement{Plan: models.PlanFree},
		},
		{
			name:   "active pro with future expiry",
			userID: 2,
			sub:    &models.Subscription{UserID: 2, Plan: models.PlanPro, ExpiresAt: &future},
			want:   &models.Entitlement{Plan: models.PlanPro, ExpiresAt: &future, IsPro: true},
		},
		{
			name:   "pro without expiry is lifetime",
			userID: 3,
			sub:    &models.Subscription{UserID: 3, Plan: models.PlanPro},
			want:   &models.Entitlement{Plan: models.PlanPro, IsPro: true},
		},
		{
			name:   "expired pro is not pro but plan stays pro",
			userID: 4,
			sub:    &models.Subscription{UserID: 4, Plan: models.PlanPro, ExpiresAt: &past},
			want:   &models.Entitlement{Plan: models.PlanPro, ExpiresAt: &past, IsPro: false},
		},
		{
			name:   "free plan row",
			userID: 5,
			sub:    &models.Subscription{UserID: 5, Plan: models.PlanFree},
			want:   &models.Entitlement{Plan: models.PlanFree, IsPro: false},
		},
		{
			name:    "repo error",
			userID:  6,
			repoErr: errors.New("db error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := newService(repo, cache, now)

			key := fmt.Sprintf("subscription:%d", tt.userID)
			cache.On("Get", key, mock.Anything).Return(false, nil).Once()
			repo.On("GetSubscription", mock.Anything, tt.userID).Return(tt.sub, tt.repoErr).Once()
			if tt.sub != nil {
				cache.On("Set", key, tt.sub, cacheTTL).Return(nil).Once()
			}

			got, err := svc.Get(context.Background(), tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestEntitlementService_Get_CacheHit(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 5)
	cached := &models.Subscription{UserID: 9, Plan: models.PlanPro, ExpiresAt: &future}

	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, now)

	cache.On("Get", "subscription:9", mock.Anything).Return(true, nil).Run(func(args mock.Arguments) {
		ptr := args.Get(1).(**models.Subscription)
		*ptr = cached
	}).Once()

	got, err := svc.Get(context.Background(), 9)
	assert.NoError(t, err)
	assert.True(t, got.IsPro)
	assert.Equal(t, models.PlanPro, got.Plan)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestEntitlementService_Upgrade(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -5)
	user := &models.User{ID: 1, Email: "ram@example.com"}

	tests := []struct {
		name       string
		userID     int64
		days       int
		setupMocks func(r *RepoMock, c *CacheMock)
		wantExpiry time.Time
		wantErr    bool
		errIs      error
	}{
		{
			name:   "first upgrade extends from now",
			userID: 1,
			days:   30,
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
				r.On("GetSubscription", mock.Anything, int64(1)).Return(nil, repository.ErrSubscriptionNotFound).Once()
				r.On("UpsertSubscription", mock.Anything, int64(1), models.PlanPro, mock.MatchedBy(func(exp *time.Time) bool {
					return exp != nil && exp.Equal(now.AddDate(0, 0, 30))
				})).Return(nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantExpiry: now.AddDate(0, 0, 30),
		},
		{
			name:   "upgrade stacks on future expiry",
			userID: 1,
			days:   15,
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
				r.On("GetSubscription", mock.Anything, int64(1)).
					Return(&models.Subscription{UserID: 1, Plan: models.PlanPro, ExpiresAt: &future}, nil).Once()
				r.On("UpsertSubscription", mock.Anything, int64(1), models.PlanPro, mock.MatchedBy(func(exp *time.Time) bool {
					return exp != nil && exp.Equal(future.AddDate(0, 0, 15))
				})).Return(nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantExpiry: future.AddDate(0, 0, 15),
		},
		{
			name:   "expired subscription restarts from now",
			userID: 1,
			days:   30,
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
				r.On("GetSubscription", mock.Anything, int64(1)).
					Return(&models.Subscription{UserID: 1, Plan: models.PlanPro, ExpiresAt: &past}, nil).Once()
				r.On("UpsertSubscription", mock.Anything, int64(1), models.PlanPro, mock.MatchedBy(func(exp *time.Time) bool {
					return exp != nil && exp.Equal(now.AddDate(0, 0, 30))
				})).Return(nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantExpiry: now.AddDate(0, 0, 30),
		},
		{
			name:   "zero days uses default",
			userID: 1,
			days:   0,
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
				r.On("GetSubscription", mock.Anything, int64(1)).Return(nil, repository.ErrSubscriptionNotFound).Once()
				r.On("UpsertSubscription", mock.Anything, int64(1), models.PlanPro, mock.MatchedBy(func(exp *time.Time) bool {
					return exp != nil && exp.Equal(now.AddDate(0, 0, 30))
				})).Return(nil).Once()
				c.On("Invalidate", "subscription:1").Return(nil).Once()
			},
			wantExpiry: now.AddDate(0, 0, 30),
		},
		{
			name:   "unknown user",
			userID: 99,
			days:   30,
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: true,
			errIs:   repository.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := newService(repo, cache, now)

			tt.setupMocks(repo, cache)

			got, err := svc.Upgrade(context.Background(), tt.userID, tt.days)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, got.Equal(tt.wantExpiry), "want %v, got %v", tt.wantExpiry, got)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestEntitlementService_Downgrade(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	user := &models.User{ID: 1, Email: "ram@example.com"}

	t.Run("downgrade clears plan and expiry", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := newService(repo, cache, now)

		repo.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
		repo.On("UpsertSubscription", mock.Anything, int64(1), models.PlanFree, (*time.Time)(nil)).Return(nil).Once()
		cache.On("Invalidate", "subscription:1").Return(nil).Once()

		err := svc.Downgrade(context.Background(), 1)
		assert.NoError(t, err)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := newService(repo, cache, now)

		repo.On("GetUser", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound).Once()

		err := svc.Downgrade(context.Background(), 99)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "UpsertSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		svc := newService(repo, cache, now)

		repo.On("GetUser", mock.Anything, int64(1)).Return(user, nil).Once()
		repo.On("UpsertSubscription", mock.Anything, int64(1), models.PlanFree, (*time.Time)(nil)).
			Return(errors.New("db error")).Once()

		err := svc.Downgrade(context.Background(), 1)
		assert.Error(t, err)

		repo.AssertExpectations(t)
	})
}
