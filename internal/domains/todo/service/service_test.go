package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"taskbox/config"
	kafkaMocks "taskbox/infras/kafka/mocks"
	"taskbox/infras/otel/mocks"
	todoMocks "taskbox/internal/domains/todo/mocks"
	"taskbox/internal/domains/todo/model"
	"taskbox/internal/domains/todo/model/dto"
	"taskbox/internal/domains/todo/service"
	"taskbox/shared/cache"
	cacheMocks "taskbox/shared/cache/mocks"
	gDto "taskbox/shared/dto"
	"taskbox/shared/failure"
	gModel "taskbox/shared/model"
)

func newService(t *testing.T) (service.Todo, *todoMocks.MockTodo, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockOtel, mockCache, mockKafka), mockRepo, mockCache
}

// scopedToUser matches a filter group that restricts rows to the given owner.
func scopedToUser(userID int64) gomock.Matcher {
	return gomock.Cond(func(filter gDto.FilterGroup) bool {
		for _, raw := range filter.Filters {
			f, ok := raw.(gDto.Filter)
			if ok && f.Field == model.FieldUserID && f.Value == userID {
				return true
			}
		}

		return false
	})
}

func validTodo() model.Todo {
	return model.Todo{
		ID:     10,
		Title:  "buy milk",
		Done:   false,
		UserID: 1,
		Metadata: gModel.Metadata{
			CreatedAt:  time.Now().UTC(),
			ModifiedAt: time.Now().UTC(),
		},
	}
}

func TestTodoService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful create",
			req:  dto.CreateTodoRequest{Title: "buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Cond(func(todo model.Todo) bool {
						return todo.Title == "buy milk" && todo.UserID == int64(1)
					})).
					Return(int64(10), nil)
			},
			wantErr: false,
		},
		{
			name: "insert error",
			req:  dto.CreateTodoRequest{Title: "buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req, 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), result.ID)
				assert.Equal(t, tt.req.Title, result.Title)
			}
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls back to repository",
			id:   10,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(validTodo(), nil)
			},
			wantErr: false,
		},
		{
			name: "cache hit skips repository",
			id:   10,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res := value.(*dto.TodoResponse)
						res.ID = 10
						res.Title = "buy milk"
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   10,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(model.Todo{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id, 1)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), result.ID)
			}

			// wait for the async cache save to complete
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTodoService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful list",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), scopedToUser(1)).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), scopedToUser(1)).
					Return([]model.Todo{validTodo(), validTodo()}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "empty list",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), scopedToUser(1)).
					Return(0, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), scopedToUser(1)).
					Return([]model.Todo{}, nil)
			},
			wantErr:   false,
			wantTotal: 0,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), scopedToUser(1)).
					Return(0, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{}, 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
				assert.Len(t, result.Todos, tt.wantTotal)
			}
		})
	}
}

func TestTodoService_GetAll_ScopesToCaller(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	// The owner filter must be injected even when the handler passes no
	// filters of its own.
	mockRepo.EXPECT().
		Count(gomock.Any(), scopedToUser(7)).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), scopedToUser(7)).
		Return([]model.Todo{validTodo()}, nil)

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{}, 7)

	assert.NoError(t, err)
}

func TestTodoService_Update(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	title := "buy oat milk"
	done := true

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateTodoRequest{Title: &title, Done: &done},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(validTodo(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), scopedToUser(1)).
					Return(nil)

				updated := validTodo()
				updated.Title = title
				updated.Done = done

				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(updated, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateTodoRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "todo not found",
			req:  dto.UpdateTodoRequest{Title: &title},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  dto.UpdateTodoRequest{Title: &title},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), scopedToUser(1)).
					Return(validTodo(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), scopedToUser(1)).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Update(context.Background(), tt.req, 10, 1)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, title, result.Title)
				assert.True(t, result.Done)
			}

			// wait for the async cache invalidation to complete
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), scopedToUser(1)).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), scopedToUser(1)).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "todo not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), scopedToUser(1)).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), scopedToUser(1)).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), scopedToUser(1)).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 10, 1)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}

			// wait for the async cache invalidation to complete
			time.Sleep(10 * time.Millisecond)
		})
	}
}
