package dto

import (
	"time"

	"taskbox/internal/domains/todo/model"
	"taskbox/shared"
	gDto "taskbox/shared/dto"
	gModel "taskbox/shared/model"
)

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Done  bool   `json:"done"`
}

func (c *CreateTodoRequest) ToModel(userID int64) model.Todo {
	now := time.Now().UTC()

	return model.Todo{
		Title:  c.Title,
		Done:   c.Done,
		UserID: userID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type UpdateTodoRequest struct {
	Title *string `db:"title" json:"title" validate:"omitempty,max=255"`
	Done  *bool   `db:"done"  json:"done"  validate:"omitempty"`
}

type TodoResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Done = model.Done
	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}

// TodoEvent is the payload published to the todo events topic on mutations.
type TodoEvent struct {
	Action string       `json:"action"`
	UserID int64        `json:"user_id"`
	Todo   TodoResponse `json:"todo"`
}
