package unidade

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gerenciador-leitos/api/internal/platform/db"
	"github.com/gerenciador-leitos/api/internal/platform/httpjson"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/unidades", h.Create)
	e.GET("/unidades", h.List)
	e.GET("/unidades/:id", h.Get)
	e.GET("/leitos_disponiveis", h.ListWithAvailableBeds)
	e.PUT("/unidades", h.Update)
	e.DELETE("/unidades/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := httpjson.DecodeStrict(c, &req); err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "malformed payload")
	}
	id, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return httpjson.Error(c, http.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("create unidade")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	unidades, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list unidades")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, unidades)
}

func (h *Handler) ListWithAvailableBeds(c echo.Context) error {
	unidades, err := h.svc.ListWithAvailableBeds(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list unidades with available beds")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, unidades)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "invalid identifier")
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return httpjson.Error(c, http.StatusNotFound, "unidade not found")
		}
		h.log.Error().Err(err).Msg("get unidade")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Update(c echo.Context) error {
	var u Unidade
	if err := httpjson.DecodeStrict(c, &u); err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "malformed payload")
	}
	if err := h.svc.Update(c.Request().Context(), &u); err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return httpjson.Error(c, http.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("update unidade")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "invalid identifier")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Msg("delete unidade")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}
