package model

import "taskbox/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID     = "id"
	FieldTitle  = "title"
	FieldDone   = "done"
	FieldUserID = "user_id"
)

type Todo struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Done   bool   `db:"done"`
	UserID int64  `db:"user_id"`
	model.Metadata
}
