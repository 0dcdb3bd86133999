package api

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/polyroute/polyroute/pkg/planner"
	"github.com/polyroute/polyroute/pkg/render"
)

const apiVersion = "1.0"

// NewServer builds the fiber app serving route planning over HTTP. The
// planner is shared by every request; it holds only immutable data.
func NewServer(plan *planner.Planner) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	handlers := &routeHandlers{planner: plan}

	webApp.Get("/version", getVersion)
	webApp.Get("/locations", handlers.getLocations)
	webApp.Get("/route/:origin/:destination", handlers.getRoute)
	webApp.Get("/route/:origin/:destination/map", handlers.getRouteMap)

	return webApp
}

func SetupServer(listen string, plan *planner.Planner) error {
	return NewServer(plan).Listen(listen)
}

type routeHandlers struct {
	planner *planner.Planner
}

func getVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": apiVersion,
	})
}

func (h *routeHandlers) getLocations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"locations": h.planner.Registry().Names(),
	})
}

func (h *routeHandlers) getRoute(c *fiber.Ctx) error {
	route, err := h.planner.Plan(c.Context(), c.Params("origin"), c.Params("destination"))
	if err != nil {
		c.SendStatus(statusForError(err))
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(route)
}

func (h *routeHandlers) getRouteMap(c *fiber.Ctx) error {
	route, err := h.planner.Plan(c.Context(), c.Params("origin"), c.Params("destination"))
	if err != nil {
		c.SendStatus(statusForError(err))
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var page bytes.Buffer
	if err := render.WriteMap(&page, route); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Type("html")

	return c.Send(page.Bytes())
}

func statusForError(err error) int {
	var unknownLocation *planner.UnknownLocationError
	var invalidEndpoints *planner.InvalidEndpointsError
	var disconnected *planner.DisconnectedGraphError
	var timeout *planner.SolverTimeoutError

	switch {
	case errors.As(err, &unknownLocation):
		return fiber.StatusNotFound
	case errors.As(err, &invalidEndpoints):
		return fiber.StatusBadRequest
	case errors.As(err, &disconnected):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &timeout):
		return fiber.StatusGatewayTimeout
	default:
		// Incoherent routes and anything unforeseen are internal faults.
		return fiber.StatusInternalServerError
	}
}
