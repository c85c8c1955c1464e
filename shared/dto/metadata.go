package dto

import (
	"taskbox/shared/constant"
	"taskbox/shared/model"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.Format(constant.DateFormat)
}
