package store

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/heliotrack/solar-installations/internal/auth"
	"github.com/heliotrack/solar-installations/internal/installation"
)

type seedInstallation struct {
	id      int
	date    string
	address string
	state   string
	status  installation.Status
	savings float64
}

var seedInstallations = []seedInstallation{
	{1, "2025-05-15", "San Francisco", "CA", installation.StatusScheduled, 12500},
	{2, "2025-05-20", "Los Angeles", "CA", installation.StatusCompleted, 15000},
	{3, "2025-05-25", "San Diego", "CA", installation.StatusCancelled, 10000},
	{4, "2025-05-26", "San Diego", "CA", installation.StatusScheduled, 12000},
	{5, "2025-05-26", "Chicago", "IL", installation.StatusCompleted, 11000},
	{6, "2025-06-01", "New York", "NY", installation.StatusScheduled, 13000},
	{7, "2025-06-02", "Chicago", "IL", installation.StatusCancelled, 9000},
	{8, "2025-06-03", "Houston", "TX", installation.StatusCompleted, 20000},
	{9, "2025-06-04", "Phoenix", "AZ", installation.StatusScheduled, 15000},
	{10, "2025-06-05", "Philadelphia", "PA", installation.StatusCompleted, 11000},
	{11, "2025-06-06", "San Antonio", "TX", installation.StatusScheduled, 17000},
	{12, "2025-06-07", "Dallas", "TX", installation.StatusCancelled, 8000},
	{13, "2025-06-08", "San Jose", "CA", installation.StatusScheduled, 14000},
	{14, "2025-06-09", "Austin", "TX", installation.StatusScheduled, 12500},
	{15, "2025-06-10", "Jacksonville", "FL", installation.StatusCompleted, 16000},
	{16, "2025-06-11", "Fort Worth", "TX", installation.StatusCancelled, 10000},
	{17, "2025-06-12", "Columbus", "OH", installation.StatusScheduled, 13500},
	{18, "2025-06-13", "Charlotte", "NC", installation.StatusCompleted, 14500},
	{19, "2025-06-14", "Indianapolis", "IN", installation.StatusScheduled, 15500},
	{20, "2025-06-15", "Seattle", "WA", installation.StatusCancelled, 18000},
	{21, "2025-06-16", "Denver", "CO", installation.StatusCompleted, 19000},
}

// SeedInstallations builds the demo installation records. Each record gets a
// fresh UUID and a randomized backdated CreatedAt (at least two days old, up
// to roughly a year) so listings have a meaningful sort order.
func SeedInstallations() []installation.Installation {
	now := time.Now().UTC()
	out := make([]installation.Installation, 0, len(seedInstallations))
	for _, s := range seedInstallations {
		backdate := 48*time.Hour + time.Duration(rand.Int63n(int64(365*24*time.Hour)))
		out = append(out, installation.Installation{
			ID:                   s.id,
			UUID:                 uuid.NewString(),
			Date:                 s.date,
			Address:              s.address,
			State:                s.state,
			Status:               s.status,
			EstimatedCostSavings: s.savings,
			CreatedAt:            now.Add(-backdate),
		})
	}
	return out
}

// SeedUsers builds the demo user accounts. Passwords are plaintext; this is
// demo seed data, not a credential store.
func SeedUsers() []User {
	return []User{
		{ID: 1, UUID: uuid.NewString(), Username: "admin", Password: "admin123", Role: auth.RoleAdmin},
		{ID: 2, UUID: uuid.NewString(), Username: "tech", Password: "tech123", Role: auth.RoleTechnician},
	}
}
