package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/app"
	"rentdesk/internal/domain"
)

func TestOccupancyRate(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		e := newTestEnv(t, fixtures{})
		assert.Zero(t, e.store.OccupancyRate())
	})

	t.Run("maintenance counts as occupied", func(t *testing.T) {
		e := newTestEnv(t, fixtures{
			properties: []domain.Property{
				{ID: "p1", Status: domain.PropertyRented},
				{ID: "p2", Status: domain.PropertyMaintenance},
				{ID: "p3", Status: domain.PropertyAvailable},
				{ID: "p4", Status: domain.PropertyAvailable},
			},
		})
		assert.InDelta(t, 50.0, e.store.OccupancyRate(), 0.001)
	})
}

func TestMonthlyRevenueCountsActiveOnly(t *testing.T) {
	e := newTestEnv(t, fixtures{
		contracts: []domain.Contract{
			{ID: "c1", Status: domain.ContractActive, MonthlyRent: 1000},
			{ID: "c2", Status: domain.ContractEnded, MonthlyRent: 5000},
			{ID: "c3", Status: domain.ContractActive, MonthlyRent: 500},
			{ID: "c4", Status: domain.ContractPending, MonthlyRent: 900},
		},
	})
	assert.InDelta(t, 1500.0, e.store.MonthlyRevenue(), 0.001)
}

func TestPropertyStatusBreakdown(t *testing.T) {
	e := newTestEnv(t, fixtures{
		properties: []domain.Property{
			{ID: "p1", Status: domain.PropertyRented},
			{ID: "p2", Status: domain.PropertyMaintenance},
			{ID: "p3", Status: domain.PropertyAvailable},
			{ID: "p4", Status: domain.PropertyAvailable},
		},
	})
	b := e.store.PropertyStatusBreakdown()
	assert.Equal(t, app.StatusBreakdown{Available: 2, Rented: 1, Maintenance: 1}, b)
	assert.Equal(t, 2, e.store.AvailableProperties())
}

func TestRecentPropertiesNewestFirst(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC) }
	e := newTestEnv(t, fixtures{
		properties: []domain.Property{
			{ID: "p1", Title: "Oldest", CreatedAt: day(1)},
			{ID: "p2", Title: "Newest", CreatedAt: day(9)},
			{ID: "p3", Title: "Middle", CreatedAt: day(5)},
			{ID: "p4", Title: "Older", CreatedAt: day(2)},
		},
	})

	recent := e.store.RecentProperties(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "Newest", recent[0].Title)
	assert.Equal(t, "Middle", recent[1].Title)
	assert.Equal(t, "Older", recent[2].Title)
}

func TestUpcomingRenewals(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	e := newTestEnv(t, fixtures{
		properties: []domain.Property{
			{ID: "p1", Title: "Loft Centro"},
			{ID: "p2", Title: "Casa Jardim"},
		},
		tenants: []domain.Tenant{
			{ID: "t1", Name: "Ana Souza"},
		},
		contracts: []domain.Contract{
			{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractActive,
				EndDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "c2", PropertyID: "p2", TenantID: "ghost", Status: domain.ContractActive,
				EndDate: time.Date(2024, 1, 21, 23, 59, 0, 0, time.UTC)},
			{ID: "c3", PropertyID: "p1", TenantID: "t1", Status: domain.ContractEnded,
				EndDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
			{ID: "c4", PropertyID: "p2", TenantID: "t1", Status: domain.ContractActive,
				EndDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	e.store.SetClock(func() time.Time { return now })

	renewals := e.store.UpcomingRenewals(30)
	require.Len(t, renewals, 2)

	assert.Equal(t, "c1", renewals[0].Contract.ID)
	assert.Equal(t, 9, renewals[0].DaysRemaining)
	assert.Equal(t, "Loft Centro", renewals[0].PropertyTitle)
	assert.Equal(t, "Ana Souza", renewals[0].TenantName)

	assert.Equal(t, "c2", renewals[1].Contract.ID)
	assert.Equal(t, 20, renewals[1].DaysRemaining)
	assert.Equal(t, app.UnknownTenant, renewals[1].TenantName)
}

func TestUpcomingRenewalsIncludesOverdue(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	e := newTestEnv(t, fixtures{
		contracts: []domain.Contract{
			{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractActive,
				EndDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
	})
	e.store.SetClock(func() time.Time { return now })

	renewals := e.store.UpcomingRenewals(30)
	require.Len(t, renewals, 1)
	assert.Equal(t, -5, renewals[0].DaysRemaining)
	assert.Equal(t, app.UnknownProperty, renewals[0].PropertyTitle)
}
