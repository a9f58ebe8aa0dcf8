package models

import "time"

// EventLog records booking lifecycle events (created, completed, deleted).
// Written asynchronously; never blocks or fails a request.
type EventLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"column:acao;size:50;not null" json:"acao"`
	Entity   string `gorm:"column:entidade;size:50" json:"entidade"`
	EntityID *uint  `gorm:"column:entidade_id" json:"entidade_id"`
	Metadata string `gorm:"column:metadata;type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

func (EventLog) TableName() string { return "eventos" }
