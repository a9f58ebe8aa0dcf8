package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PaymentNone is the wire sentinel for a booking without a payment method.
// The column itself is NULL in that case; the sentinel only exists at the
// JSON boundary for compatibility with the original API.
const PaymentNone = "none"

// SlotList is the ordered sequence of HH:MM slot start times a booking
// occupies, persisted as a JSON array.
type SlotList []string

func (s SlotList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *SlotList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("slotlist: cannot scan %T", value)
	}
}

// Booking references barber, service and payment method by name, mirroring
// the persisted schema. Payment is NULL until the booking is completed.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"column:nome;size:100;not null" json:"nome"`
	Email      string `gorm:"column:email;size:100;not null" json:"email"`
	Phone      string `gorm:"column:telefone;size:20;not null" json:"telefone"`

	Barber string `gorm:"column:barbeiro;size:100;not null;index:idx_agendamentos_barbeiro_data" json:"barbeiro"`
	Date   string `gorm:"column:data;size:10;not null;index:idx_agendamentos_barbeiro_data" json:"data"`

	Slots   SlotList `gorm:"column:horario_ocupados;type:text;not null" json:"horario_ocupados"`
	Service string   `gorm:"column:servico;size:100;not null" json:"servico"`

	Completed bool    `gorm:"column:concluido;default:false" json:"concluido"`
	Payment   *string `gorm:"column:pagamento;size:100" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "agendamentos" }

// PaymentLabel resolves the nullable payment column to the wire sentinel.
func (b *Booking) PaymentLabel() string {
	if b.Payment == nil {
		return PaymentNone
	}
	return *b.Payment
}
