package installation

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heliotrack/solar-installations/internal/httperr"
	"github.com/heliotrack/solar-installations/internal/weather"
)

// Gateway is the weather capability the service depends on. The production
// implementation is weather.Client; tests substitute a fake.
type Gateway interface {
	LookupByAddress(ctx context.Context, address string) (*weather.Report, error)
}

// Repository owns the installation records. Insert must allocate the new
// record's ID atomically with the append.
type Repository interface {
	All() []Installation
	Insert(inst Installation) Installation
}

// Service orchestrates listing and creation of installations, enriching
// records with weather data from the gateway.
type Service struct {
	repo    Repository
	gateway Gateway
}

func NewService(repo Repository, gateway Gateway) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// List returns one page of installations, optionally filtered by status,
// sorted by creation time descending and decorated with a weather category
// per record. Weather is looked up exactly once per distinct address, with
// the lookups issued concurrently. The join is all-or-nothing: if any lookup
// fails, the whole listing fails. A partial response marking unavailable
// forecasts as unknown would be a valid alternative; the all-or-nothing
// behavior is a deliberate policy choice.
func (s *Service) List(ctx context.Context, statusFilter *Status, page, limit int) (*ListResult, error) {
	all := s.repo.All()

	selected := all
	if statusFilter != nil {
		selected = selected[:0:0]
		for _, inst := range all {
			if inst.Status == *statusFilter {
				selected = append(selected, inst)
			}
		}
	}

	// Distinct addresses in order of first appearance.
	seen := make(map[string]struct{}, len(selected))
	var addresses []string
	for _, inst := range selected {
		if _, ok := seen[inst.Address]; ok {
			continue
		}
		seen[inst.Address] = struct{}{}
		addresses = append(addresses, inst.Address)
	}

	reports := make([]*weather.Report, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			rep, err := s.gateway.LookupByAddress(gctx, addr)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reportByAddress := make(map[string]*weather.Report, len(addresses))
	for i, addr := range addresses {
		reportByAddress[addr] = reports[i]
	}

	items := make([]Item, 0, len(selected))
	for _, inst := range selected {
		items = append(items, Item{
			UUID:                 inst.UUID,
			Date:                 inst.Date,
			Address:              inst.Address,
			State:                inst.State,
			Status:               inst.Status,
			EstimatedCostSavings: inst.EstimatedCostSavings,
			CreatedAt:            inst.CreatedAt,
			WeatherForecast:      forecastFor(reportByAddress[inst.Address]),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	totalItems := len(items)

	start := (page - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}

	return &ListResult{
		Items:      items[start:end],
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
	}, nil
}

// forecastFor classifies the first weather condition entry of a report.
// A missing report or empty conditions list classifies as unknown.
func forecastFor(rep *weather.Report) weather.Category {
	if rep == nil || len(rep.Weather) == 0 {
		return weather.CategoryUnknown
	}
	return weather.ClassifyCode(rep.Weather[0].ID)
}

// Create looks up weather for the new installation's address, derives the
// estimated annual cost savings from daylight hours and the panel specs, and
// appends the record to the repository. The repository is not touched when
// the weather lookup fails or returns no data.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Installation, error) {
	rep, err := s.gateway.LookupByAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, httperr.New(http.StatusNotFound, "Weather not found")
	}

	sunHours := AverageSunHours(rep.Sys.Sunset, rep.Sys.Sunrise)

	inst := Installation{
		UUID:                 uuid.NewString(),
		Date:                 in.Date,
		Address:              in.Address,
		State:                in.State,
		Status:               StatusScheduled,
		EstimatedCostSavings: EstimateAnnualSavings(in.PanelCapacityKW, in.Efficiency, in.ElectricityRate, sunHours),
		CreatedAt:            time.Now().UTC(),
	}

	created := s.repo.Insert(inst)
	return &created, nil
}

// AverageSunHours converts a sunset/sunrise pair of epoch seconds into
// daylight hours, used as a proxy for daily solar yield.
func AverageSunHours(sunset, sunrise int64) float64 {
	return float64(sunset-sunrise) / 3600
}

// EstimateAnnualSavings computes the estimated yearly cost savings for a
// panel of the given capacity (kW), system efficiency (0..1) and electricity
// rate (currency per kWh), rounded to two decimal places.
func EstimateAnnualSavings(capacityKW, efficiency, rate, sunHoursPerDay float64) float64 {
	const daysInYear = 365
	annualKWh := capacityKW * sunHoursPerDay * daysInYear * efficiency
	savings := decimal.NewFromFloat(annualKWh * rate).Round(2).InexactFloat64()
	return math.Max(savings, 0)
}
