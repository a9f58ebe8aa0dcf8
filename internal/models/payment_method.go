package models

// PaymentMethod holds the fee percentage charged by a payment option.
// Net revenue of a completed booking is valor * (1 - taxa/100).
type PaymentMethod struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"column:nome;size:100;uniqueIndex;not null" json:"nome"`
	FeePercent float64 `gorm:"column:taxa;not null" json:"taxa"`
}

func (PaymentMethod) TableName() string { return "formas_pagamento" }
