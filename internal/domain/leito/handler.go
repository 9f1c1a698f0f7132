package leito

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
	e.POST("/leitos", h.Create)
	e.GET("/leitos", h.List)
	e.GET("/leitos/:id", h.Get)
	e.PUT("/leitos", h.Update)
	e.DELETE("/leitos/:id", h.Delete)
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
		h.log.Error().Err(err).Msg("create leito")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	leitos, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list leitos")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, leitos)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "invalid identifier")
	}
	l, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return httpjson.Error(c, http.StatusNotFound, "leito not found")
		}
		h.log.Error().Err(err).Msg("get leito")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) Update(c echo.Context) error {
	var l Leito
	if err := httpjson.DecodeStrict(c, &l); err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "malformed payload")
	}
	if err := h.svc.Update(c.Request().Context(), &l); err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return httpjson.Error(c, http.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("update leito")
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
		h.log.Error().Err(err).Msg("delete leito")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}
