package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"versync/core/archive"
	"versync/core/logger"
	"versync/core/manifest"
	"versync/core/registry"
	"versync/core/version"
)

// Handler handles HTTP requests for the product feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/product")
	group.Get("/status", h.HandleStatus)
	group.Get("/records", h.HandleRecords)
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/health", h.HandleHealth)
}

// statusFromError maps reconcile failures onto HTTP status codes. Aborts
// caused by missing inputs read as 404, duplicate record matches as 409
// and unparseable versions as 422.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound),
		errors.Is(err, manifest.ErrNotFound),
		errors.Is(err, archive.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, registry.ErrAmbiguous):
		return fiber.StatusConflict
	case errors.Is(err, version.ErrInvalid):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleStatus reports drift between the archive and the record store.
// @Summary Product Status
// @Description Discovers the product version from the release archive and reports which record fields drift from it. Does not write.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} product.Status "Status Report"
// @Failure 404 {object} map[string]string "Archive, Manifest Field or Record Missing"
// @Failure 409 {object} map[string]string "Ambiguous Record Match"
// @Failure 422 {object} map[string]string "Unparseable Version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.Status(c.Context())
	if err != nil {
		l.Error("Status check failed", zap.Error(err))
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(status)
}

// HandleRecords returns the stored record groups.
// @Summary Product Records
// @Description Returns the current contents of the catalog and uninstall record groups as the store holds them.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {array} product.RecordView "Record Groups"
// @Failure 404 {object} map[string]string "Record Missing"
// @Failure 409 {object} map[string]string "Ambiguous Record Match"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product/records [get]
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	views, err := h.service.Records(c.Context())
	if err != nil {
		l.Error("Record listing failed", zap.Error(err))
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(views)
}

// HandleReconcile runs a reconcile pass.
// @Summary Reconcile Product Records
// @Description Discovers the product version, plans against the record store and applies the drifted fields. Rejected writes are reported, not retried.
// @Tags product
// @Accept json
// @Produce json
// @Param dry query boolean false "Plan only, write nothing"
// @Success 200 {object} product.RunResult "Reconcile Result"
// @Failure 404 {object} map[string]string "Archive, Manifest Field or Record Missing"
// @Failure 409 {object} map[string]string "Ambiguous Record Match"
// @Failure 422 {object} map[string]string "Unparseable Version"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /product/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dry := c.Query("dry") == "true"

	l.Info("Starting reconcile", zap.Bool("dry_run", dry))
	result, err := h.service.Reconcile(c.Context(), dry)
	if err != nil {
		l.Error("Reconcile failed", zap.Error(err))
		return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if result.State == StatePartial {
		l.Warn("Reconcile left fields unwritten",
			zap.Int("written", len(result.Report.Written)),
			zap.Int("failed", len(result.Report.Failed)))
	}

	return c.JSON(result)
}

// HandleHealth checks the service's backings.
// @Summary Product Health
// @Description Pings the database and the release bucket concurrently and reports per-backing state.
// @Tags product
// @Accept json
// @Produce json
// @Success 200 {object} product.Health "Health Report"
// @Failure 503 {object} product.Health "Degraded"
// @Router /product/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	health := h.service.CheckHealth(c.Context())
	if health.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(health)
	}
	return c.JSON(health)
}
