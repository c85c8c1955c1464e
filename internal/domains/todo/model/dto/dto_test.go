package dto_test

import (
	"testing"
	"time"

	"taskbox/internal/domains/todo/model"
	"taskbox/internal/domains/todo/model/dto"
	gModel "taskbox/shared/model"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	req := dto.CreateTodoRequest{
		Title: "buy milk",
		Done:  true,
	}

	todo := req.ToModel(7)

	if todo.Title != "buy milk" {
		t.Errorf("expected title 'buy milk', got %s", todo.Title)
	}

	if !todo.Done {
		t.Error("expected done to be true")
	}

	if todo.UserID != 7 {
		t.Errorf("expected user ID 7, got %d", todo.UserID)
	}

	if todo.ID != 0 {
		t.Errorf("expected zero ID before insert, got %d", todo.ID)
	}

	if todo.CreatedAt.IsZero() || todo.ModifiedAt.IsZero() {
		t.Error("expected metadata timestamps to be stamped")
	}
}

func TestTodoResponse_FromModel(t *testing.T) {
	now := time.Date(2023, 5, 1, 8, 30, 0, 0, time.UTC)

	todo := model.Todo{
		ID:     10,
		Title:  "buy milk",
		Done:   true,
		UserID: 7,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	res := dto.TodoResponse{}
	res.FromModel(todo)

	if res.ID != 10 || res.Title != "buy milk" || !res.Done {
		t.Errorf("unexpected response: %+v", res)
	}

	if res.CreatedAt != "2023-05-01T08:30:00Z" {
		t.Errorf("unexpected created_at: %s", res.CreatedAt)
	}
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	models := []model.Todo{
		{ID: 1, Title: "one"},
		{ID: 2, Title: "two"},
	}

	res := dto.GetTodosResponse{}
	res.FromModels(models, 12, 10)

	if res.TotalData != 12 {
		t.Errorf("expected total data 12, got %d", res.TotalData)
	}

	if res.TotalPage != 2 {
		t.Errorf("expected total page 2, got %d", res.TotalPage)
	}

	if len(res.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(res.Todos))
	}

	if res.Todos[0].ID != 1 || res.Todos[1].ID != 2 {
		t.Errorf("unexpected todo order: %+v", res.Todos)
	}
}
