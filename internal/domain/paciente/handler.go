package paciente

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
	e.POST("/pacientes", h.Create)
	e.GET("/pacientes", h.List)
	e.GET("/pacientes/:id", h.Get)
	e.GET("/pacientes/covid/:unidade_id", h.ListCovidByUnidade)
	e.PUT("/pacientes", h.Update)
	e.DELETE("/pacientes/:id", h.Delete)
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
		h.log.Error().Err(err).Msg("create paciente")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id})
}

func (h *Handler) List(c echo.Context) error {
	pacientes, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list pacientes")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, pacientes)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "invalid identifier")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return httpjson.Error(c, http.StatusNotFound, "paciente not found")
		}
		h.log.Error().Err(err).Msg("get paciente")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListCovidByUnidade(c echo.Context) error {
	unidadeID, err := uuid.Parse(c.Param("unidade_id"))
	if err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "invalid identifier")
	}
	pacientes, err := h.svc.ListCovidByUnidade(c.Request().Context(), unidadeID)
	if err != nil {
		h.log.Error().Err(err).Msg("list covid pacientes by unidade")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, pacientes)
}

func (h *Handler) Update(c echo.Context) error {
	var p Paciente
	if err := httpjson.DecodeStrict(c, &p); err != nil {
		return httpjson.Error(c, http.StatusBadRequest, "malformed payload")
	}
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return httpjson.Error(c, http.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("update paciente")
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
		h.log.Error().Err(err).Msg("delete paciente")
		return httpjson.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}
