package prefabs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"prefab-manager/core/logger"
	"prefab-manager/feature/history"
)

// Handler handles HTTP requests for prefab synchronization.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the prefab routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/prefabs")
	group.Post("/:handle/sync", h.HandleSync)
	group.Get("/reports", h.HandleReports)
	group.Get("/catalog", h.HandleCatalog)
}

// HandleSync runs one synchronization pass for a master prefab.
// @Summary Synchronize prefab instances
// @Description Propagate the master prefab definition to all of its instances, preserving local overrides.
// @Tags prefabs
// @Accept json
// @Produce json
// @Param handle path string true "Master prefab handle (UUID)"
// @Success 200 {object} prefab.SyncReport "Synchronization report"
// @Failure 400 {object} map[string]string "Invalid handle"
// @Router /prefabs/{handle}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	master, err := uuid.Parse(c.Params("handle"))
	if err != nil {
		l.Warn("sync rejected, invalid master handle", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid master prefab handle",
		})
	}

	report := h.service.Sync(c.Context(), master)
	return c.JSON(report)
}

// HandleReports returns the most recent persisted synchronization passes.
// @Summary List synchronization history
// @Description Most recent synchronization passes, newest first.
// @Tags prefabs
// @Produce json
// @Param limit query int false "Maximum records to return" default(20)
// @Success 200 {array} history.Record "Synchronization records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prefabs/reports [get]
func (h *Handler) HandleReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.service.Reports(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		l.Error("history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if records == nil {
		records = []history.Record{}
	}
	return c.JSON(records)
}

// HandleCatalog returns the registered component catalog.
// @Summary List registered component types
// @Description Component types and their properties in enumeration order.
// @Tags prefabs
// @Produce json
// @Success 200 {array} prefabs.CatalogEntry "Component catalog"
// @Router /prefabs/catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.Catalog())
}
