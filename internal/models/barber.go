package models

type Barber struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nome;size:100;not null" json:"nome"`
}

func (Barber) TableName() string { return "barbeiros" }

// BarberService links a barber to a service they are qualified to perform.
// Referential cleanup is done by the caller: deleting a barber removes the
// link rows here first, there is no database-level cascade.
type BarberService struct {
	BarberID  uint `gorm:"column:barbeiro_id;primaryKey" json:"barbeiro_id"`
	ServiceID uint `gorm:"column:servico_id;primaryKey" json:"servico_id"`
}

func (BarberService) TableName() string { return "barbeiro_servicos" }
