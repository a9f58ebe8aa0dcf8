package dto

import "github.com/barbeariadobeco/barbearia-api/internal/models"

// BookingListDTO is one row of the booking listing, with the nullable
// payment column resolved to the "none" wire sentinel.
type BookingListDTO struct {
	ID         uint            `json:"id"`
	ClientName string          `json:"nome"`
	Email      string          `json:"email"`
	Phone      string          `json:"telefone"`
	Barber     string          `json:"barbeiro"`
	Date       string          `json:"data"`
	Slots      models.SlotList `json:"horario_ocupados"`
	Service    string          `json:"servico"`
	Completed  bool            `json:"concluido"`
	Payment    string          `json:"pagamento"`
}

func NewBookingListDTO(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:         b.ID,
		ClientName: b.ClientName,
		Email:      b.Email,
		Phone:      b.Phone,
		Barber:     b.Barber,
		Date:       b.Date,
		Slots:      b.Slots,
		Service:    b.Service,
		Completed:  b.Completed,
		Payment:    b.PaymentLabel(),
	}
}

type DashboardDTO struct {
	TotalBookings int64   `json:"totalAgendamentos"`
	Revenue       float64 `json:"faturamento"`
}
