package booking

import (
	"context"
	"time"

	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/dto"
)

type TotalRevenue struct {
	repo schedule.Repository
}

func NewTotalRevenue(repo schedule.Repository) *TotalRevenue {
	return &TotalRevenue{repo: repo}
}

// Execute sums valor * (1 - taxa/100) over completed bookings. No completed
// bookings yields 0, not an error.
func (uc *TotalRevenue) Execute(ctx context.Context) (float64, error) {
	return uc.repo.SumCompletedNetRevenue(ctx)
}

type Dashboard struct {
	repo schedule.Repository
}

func NewDashboard(repo schedule.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

// Execute aggregates the month containing ref: booking count and gross
// service revenue, all bookings regardless of completion.
func (uc *Dashboard) Execute(
	ctx context.Context,
	ref time.Time,
) (dto.DashboardDTO, error) {

	count, gross, err := uc.repo.MonthStats(ctx, ref)
	if err != nil {
		return dto.DashboardDTO{}, err
	}

	return dto.DashboardDTO{
		TotalBookings: count,
		Revenue:       gross,
	}, nil
}
