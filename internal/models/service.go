package models

// Service is a bookable service. Duration is in minutes and is expected to be
// a positive multiple of the slot size.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:nome;size:100;uniqueIndex;not null" json:"nome"`
	DurationMin int     `gorm:"column:duracao;not null" json:"duracao"`
	Price       float64 `gorm:"column:valor;not null" json:"valor"`
}

func (Service) TableName() string { return "servicos" }
