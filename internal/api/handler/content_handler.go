package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unilink/campus-api/internal/api/metrics"
	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
)

// ContentHandler serves one feed. The router mounts one instance per kind.
type ContentHandler struct {
	service ports.ContentService
	kind    domain.ContentKind
}

func NewContentHandler(service ports.ContentService, kind domain.ContentKind) *ContentHandler {
	return &ContentHandler{service: service, kind: kind}
}

// Create handles POST /api/admin/{posts,news,internships}.
//
// @Summary      Create a feed item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string          true  "posts, news or internships"
// @Param        body  body      contentRequest  true  "Item fields"
// @Success      201   {object}  contentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/{kind} [post]
func (h *ContentHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := toContentInput(req)
	if err != nil {
		return err
	}
	if h.kind == domain.KindPost && input.Author == "" {
		input.Author = claims.Name
	}

	item, err := h.service.Create(c.Request().Context(), h.kind, input)
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(h.kind), "create").Inc()
	return c.JSON(http.StatusCreated, toContentResponse(item))
}

// List handles GET /api/admin/{kind} and the public GET /api/users/posts.
//
// @Summary      List feed items, newest first
// @Tags         content
// @Produce      json
// @Param        kind  path      string  true  "posts, news or internships"
// @Success      200   {array}   contentResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/{kind} [get]
func (h *ContentHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), h.kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContentList(items))
}

// Get handles GET /api/admin/internships/:id.
//
// @Summary      Get a feed item
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  contentResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/internships/{id} [get]
func (h *ContentHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), h.kind, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContentResponse(item))
}

// Update handles PUT /api/admin/internships/:id.
//
// @Summary      Replace a feed item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Item id"
// @Param        body  body      contentRequest  true  "Item fields"
// @Success      200   {object}  contentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/internships/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := toContentInput(req)
	if err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), h.kind, c.Param("id"), input)
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(h.kind), "update").Inc()
	return c.JSON(http.StatusOK, toContentResponse(item))
}

// Delete handles DELETE /api/admin/{kind}/:id.
//
// @Summary      Delete a feed item
// @Tags         content
// @Security     BearerAuth
// @Param        kind  path  string  true  "posts, news or internships"
// @Param        id    path  string  true  "Item id"
// @Success      204
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/{kind}/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), h.kind, c.Param("id")); err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues(string(h.kind), "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service ports.ContentService
}

func NewStatsHandler(service ports.ContentService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /api/admin/stats.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}
