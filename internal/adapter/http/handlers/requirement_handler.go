package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	request "buildconnect/internal/adapter/http/dto/request"
	response "buildconnect/internal/adapter/http/dto/response"
	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase"
	"buildconnect/internal/usecase/interfaces"
	"buildconnect/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequirementPayload = pkg.NewDomainErrorSimple("INVALID_REQUIREMENT_INPUT", "Invalid requirement payload", http.StatusBadRequest)
)

// RequirementHandler handles HTTP requests for homeowner requirements: CRUD,
// the lifecycle state machine and quote selection.

type RequirementHandler struct {
	usecase usecase.IRequirementUseCase
}

func NewRequirementHandler(uc usecase.IRequirementUseCase) *RequirementHandler {
	return &RequirementHandler{usecase: uc}
}

func (h *RequirementHandler) CreateRequirement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.CreateRequirementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequirementPayload.HTTPStatus, errInvalidRequirementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateRequirementInput{
		ServiceType:           entities.ServiceType(payload.ServiceType),
		Title:                 payload.Title,
		Description:           payload.Description,
		Budget:                payload.Budget,
		Timeline:              payload.TimelineEntity(),
		Location:              payload.Location,
		BuildingType:          entities.BuildingType(payload.BuildingType),
		Size:                  payload.Size,
		Bedrooms:              payload.Bedrooms,
		Bathrooms:             payload.Bathrooms,
		Features:              payload.Features,
		Priority:              entities.Priority(payload.Priority),
		RequestMultipleQuotes: payload.RequestMultipleQuotes,
		ContactPreference:     payload.ContactPreference,
	})
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequirement(created))
}

func (h *RequirementHandler) ListMyRequirements(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	requirements, err := h.usecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequirements(requirements, len(requirements), 1, len(requirements)))
}

func (h *RequirementHandler) ListOpenRequirements(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)
	filter := interfaces.RequirementFilter{
		BuildingType: entities.BuildingType(c.Query("building_type")),
		Location:     c.Query("location"),
		BudgetRange:  entities.BudgetRange(c.Query("budget_range")),
	}

	requirements, total, err := h.usecase.ListOpen(c.Request.Context(), actor, filter, page, limit)
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequirements(requirements, total, page, limit))
}

func (h *RequirementHandler) GetRequirement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var (
		r   entities.Requirement
		err error
	)
	if actor.CanBid() {
		r, err = h.usecase.GetPublic(c.Request.Context(), actor, c.Param("id"))
	} else {
		r, err = h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	}
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequirement(r))
}

func (h *RequirementHandler) ListRequirementQuotes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	quotes, err := h.usecase.ListQuotes(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, response.FromQuotes(quotes, now, len(quotes), 1, len(quotes)))
}

func (h *RequirementHandler) SelectQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.SelectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequirementPayload.HTTPStatus, errInvalidRequirementPayload.ToHTTPError())
		return
	}

	r, winner, err := h.usecase.SelectQuote(c.Request.Context(), actor, c.Param("id"), payload.QuoteID)
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SelectionResponse{
		Requirement: response.FromRequirement(r),
		Quote:       response.FromQuote(winner, time.Now().UTC()),
	})
}

func (h *RequirementHandler) UpdateRequirementStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.UpdateRequirementStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequirementPayload.HTTPStatus, errInvalidRequirementPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("id"), entities.RequirementStatus(payload.Status))
	if err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequirement(updated))
}

func (h *RequirementHandler) CancelRequirement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapRequirementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Requirement cancelled"})
}

func mapRequirementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequirementInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUIREMENT_INPUT", "Invalid requirement payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequirementForbidden):
		return pkg.NewDomainErrorSimple("REQUIREMENT_FORBIDDEN", "Access to requirement denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequirementNotFound), errors.Is(err, usecase.ErrRequirementUnavailable):
		return pkg.NewDomainErrorSimple("REQUIREMENT_NOT_FOUND", "Requirement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadySelected):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SELECTED", "A quote was already selected for this requirement", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotSelectable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SELECTABLE", "Quote is not in a selectable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid requirement status transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
