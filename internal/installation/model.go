package installation

import (
	"time"

	"github.com/heliotrack/solar-installations/internal/weather"
)

// Status is the lifecycle state of an installation appointment. There is no
// transition logic yet; records are created as scheduled and a status-update
// endpoint is a future capability.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses lists every defined status, in declaration order.
var ValidStatuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Installation is a solar-panel deployment appointment tied to a location.
// ID is internal; the UUID is the externally stable identifier.
type Installation struct {
	ID                   int       `json:"id"`
	UUID                 string    `json:"uuid"`
	Date                 string    `json:"date"`
	Address              string    `json:"address"`
	State                string    `json:"state"`
	Status               Status    `json:"status"`
	EstimatedCostSavings float64   `json:"estimatedCostSavings"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Item is the listing DTO: an installation decorated with its current
// weather category. The internal numeric ID is not part of the contract.
type Item struct {
	UUID                 string           `json:"uuid"`
	Date                 string           `json:"date"`
	Address              string           `json:"address"`
	State                string           `json:"state"`
	Status               Status           `json:"status"`
	EstimatedCostSavings float64          `json:"estimatedCostSavings"`
	CreatedAt            time.Time        `json:"createdAt"`
	WeatherForecast      weather.Category `json:"weatherForecast"`
}

// ListResult is one page of decorated installations. TotalItems counts the
// records matching the status filter before pagination.
type ListResult struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalItems int    `json:"totalItems"`
}

// CreateInput carries the caller-supplied fields for a new installation.
// Boundary validation guarantees the values are present and in range before
// the service runs.
type CreateInput struct {
	Date            string
	Address         string
	State           string
	PanelCapacityKW float64
	Efficiency      float64
	ElectricityRate float64
}
