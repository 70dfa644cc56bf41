package handlers

import (
	"errors"
	"net/http"
	"time"

	request "buildconnect/internal/adapter/http/dto/request"
	response "buildconnect/internal/adapter/http/dto/response"
	"buildconnect/internal/usecase"
	"buildconnect/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles the bidder-side quote operations.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), actor, usecase.SubmitQuoteInput{
		RequirementID:   payload.RequirementID,
		DesignProposal:  payload.DesignProposal,
		EstimatedBudget: payload.EstimatedBudget,
		BudgetBreakdown: payload.BudgetBreakdown.Entity(),
		Timeline:        payload.Timeline.Entity(),
		AdditionalNotes: payload.AdditionalNotes,
		Terms:           payload.Terms.Entity(),
		ValidUntil:      payload.ValidUntil,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created, time.Now().UTC()))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now().UTC()))
}

func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	quotes, total, err := h.usecase.ListMine(c.Request.Context(), actor, c.Query("status"), page, limit)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes, time.Now().UTC(), total, page, limit))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in := usecase.QuoteUpdateInput{
		DesignProposal:  payload.DesignProposal,
		EstimatedBudget: payload.EstimatedBudget,
		AdditionalNotes: payload.AdditionalNotes,
	}
	if payload.BudgetBreakdown != nil {
		breakdown := payload.BudgetBreakdown.Entity()
		in.BudgetBreakdown = &breakdown
	}
	if payload.Timeline != nil {
		timeline := payload.Timeline.Entity()
		in.Timeline = &timeline
	}
	if payload.Terms != nil {
		terms := payload.Terms.Entity()
		in.Terms = &terms
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated, time.Now().UTC()))
}

func (h *QuoteHandler) WithdrawQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Withdraw(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote withdrawn"})
}

func (h *QuoteHandler) QuoteAnalytics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	analytics, err := h.usecase.Analytics(c.Request.Context(), actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidderForbidden):
		return pkg.NewDomainErrorSimple("BIDDER_FORBIDDEN", "Only company admins and professionals can submit quotes", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Bidder profile not found or not verified", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteAccessDenied):
		return pkg.NewDomainErrorSimple("QUOTE_ACCESS_DENIED", "Access to quote denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequirementUnavailable):
		return pkg.NewDomainErrorSimple("REQUIREMENT_NOT_FOUND", "Requirement not found or no longer accepting quotes", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_QUOTE", "Quote already submitted for this requirement", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote cannot be updated in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotWithdrawable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_WITHDRAWABLE", "Cannot withdraw an accepted quote", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
