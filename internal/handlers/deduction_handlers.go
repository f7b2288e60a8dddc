package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/types/params"
	"github.com/taxdesk/tax-service/internal/types/requests"
	"github.com/taxdesk/tax-service/internal/types/responses"
)

// DeductionHandler handles reference deductions and deductions claimed on returns
type DeductionHandler struct {
	deductions interfaces.DeductionService
	reference  interfaces.ReferenceService
}

func NewDeductionHandler(deductions interfaces.DeductionService, reference interfaces.ReferenceService) *DeductionHandler {
	return &DeductionHandler{deductions: deductions, reference: reference}
}

// ListDeductions lists the deductions a return may claim
func (h *DeductionHandler) ListDeductions(c *gin.Context) {
	deductions, err := h.reference.ListDeductions(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list deductions")
		return
	}

	response := make([]responses.DeductionResponse, len(deductions))
	for i, d := range deductions {
		response[i] = helpers.ToDeductionResponse(d)
	}
	sendList(c, response)
}

func (h *DeductionHandler) ClaimDeduction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	var req requests.ClaimDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}

	claimed, err := h.deductions.ClaimDeduction(c.Request.Context(), params.ClaimDeductionParams{
		UserID:      userID,
		TaxReturnID: taxReturnID,
		DeductionID: req.DeductionID,
		AmountSpent: req.AmountSpent,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to claim deduction")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToClaimedDeductionResponse(*claimed))
}

func (h *DeductionHandler) ListClaimedDeductions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	claimed, err := h.deductions.ListClaimedDeductions(c.Request.Context(), userID, taxReturnID)
	if err != nil {
		handleServiceError(c, err, "Failed to list claimed deductions")
		return
	}

	response := make([]responses.ClaimedDeductionResponse, len(claimed))
	for i, d := range claimed {
		response[i] = helpers.ToClaimedDeductionResponse(d)
	}
	sendList(c, response)
}

func (h *DeductionHandler) UpdateClaimedDeduction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "deduction_id", constants.InvalidDeductionID)
	if !ok {
		return
	}

	var req requests.UpdateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}

	claimed, err := h.deductions.UpdateClaimedDeduction(c.Request.Context(), params.UpdateClaimedDeductionParams{
		UserID:      userID,
		ID:          id,
		AmountSpent: req.AmountSpent,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update claimed deduction")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToClaimedDeductionResponse(*claimed))
}

func (h *DeductionHandler) DeleteClaimedDeduction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "deduction_id", constants.InvalidDeductionID)
	if !ok {
		return
	}

	if err := h.deductions.DeleteClaimedDeduction(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Failed to delete claimed deduction")
		return
	}
	c.Status(http.StatusNoContent)
}
