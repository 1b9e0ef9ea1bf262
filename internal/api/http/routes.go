package httpapi

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/heliotrack/solar-installations/internal/auth"
	"github.com/heliotrack/solar-installations/internal/installation"
	"github.com/heliotrack/solar-installations/internal/store"
)

var validate = newValidator()

// newValidator builds the request validator, reporting fields by their JSON
// names so 400 responses match the wire contract.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc *installation.Service, users *store.UserStore, tokens *auth.TokenIssuer) {
	app.Post("/login", loginHandler(users, tokens))

	app.Get("/installations",
		RequireAuth(tokens),
		RequirePermission(auth.PermViewInstallations),
		listHandler(svc))

	app.Post("/installations",
		RequireAuth(tokens),
		RequirePermission(auth.PermCreateInstallation),
		createHandler(svc))
}

// loginRequest uses pointers so "field absent" is distinguishable from an
// empty string.
type loginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

func loginHandler(users *store.UserStore, tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if errs := checkStruct(req); len(errs) > 0 {
			return validationFailed(c, errs)
		}

		user, ok := users.FindByCredentials(strings.TrimSpace(*req.Username), *req.Password)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		}

		token, err := tokens.Issue(user.UUID, user.Username, user.Role)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"uuid":     user.UUID,
				"username": user.Username,
				"role":     user.Role,
			},
		})
	}
}

func listHandler(svc *installation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs []fieldError

		page := 1
		if raw := c.Query("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				errs = append(errs, fieldError{Field: "page", Message: "page must be an integer >= 1"})
			} else {
				page = n
			}
		}

		limit := 10
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 100 {
				errs = append(errs, fieldError{Field: "limit", Message: "limit must be an integer between 1 and 100"})
			} else {
				limit = n
			}
		}

		var statusFilter *installation.Status
		if raw := strings.TrimSpace(c.Query("status")); raw != "" {
			st := installation.Status(raw)
			if !st.Valid() {
				errs = append(errs, fieldError{Field: "status", Message: "status must be one of: " + statusList()})
			} else {
				statusFilter = &st
			}
		}

		if len(errs) > 0 {
			return validationFailed(c, errs)
		}

		result, err := svc.List(c.Context(), statusFilter, page, limit)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}

func statusList() string {
	parts := make([]string, 0, len(installation.ValidStatuses))
	for _, s := range installation.ValidStatuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

type createInstallationRequest struct {
	Date            *string  `json:"date" validate:"required"`
	Address         *string  `json:"address" validate:"required"`
	State           *string  `json:"state" validate:"required"`
	PanelCapacityKW *float64 `json:"panelCapacity_kW" validate:"required,min=0.1"`
	Efficiency      *float64 `json:"efficiency" validate:"required,min=0,max=1"`
	ElectricityRate *float64 `json:"electricityRate" validate:"required,min=0"`
}

func createHandler(svc *installation.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createInstallationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		errs := checkStruct(req)

		if req.Date != nil && !isISODate(*req.Date) {
			errs = append(errs, fieldError{Field: "date", Message: "date must be a valid ISO 8601 date"})
		}
		if req.Address != nil && strings.TrimSpace(*req.Address) == "" {
			errs = append(errs, fieldError{Field: "address", Message: "address cannot be empty"})
		}
		if req.State != nil && strings.TrimSpace(*req.State) == "" {
			errs = append(errs, fieldError{Field: "state", Message: "state cannot be empty"})
		}

		if len(errs) > 0 {
			return validationFailed(c, errs)
		}

		_, err := svc.Create(c.Context(), installation.CreateInput{
			Date:            strings.TrimSpace(*req.Date),
			Address:         strings.TrimSpace(*req.Address),
			State:           strings.TrimSpace(*req.State),
			PanelCapacityKW: *req.PanelCapacityKW,
			Efficiency:      *req.Efficiency,
			ElectricityRate: *req.ElectricityRate,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Installation created successfully",
		})
	}
}

// isISODate accepts a plain calendar date or a full RFC 3339 timestamp.
func isISODate(s string) bool {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
