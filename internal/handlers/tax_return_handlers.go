package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"github.com/taxdesk/tax-service/internal/types/requests"
	"github.com/taxdesk/tax-service/internal/types/responses"
)

// TaxReturnHandler handles tax return endpoints
type TaxReturnHandler struct {
	taxReturns interfaces.TaxReturnService
}

func NewTaxReturnHandler(taxReturns interfaces.TaxReturnService) *TaxReturnHandler {
	return &TaxReturnHandler{taxReturns: taxReturns}
}

func toPersonalInfo(req requests.PersonalInfoRequest) taxcalc.PersonalInfo {
	return taxcalc.PersonalInfo{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		DateOfBirth: req.DateOfBirth,
		SSN:         req.SSN,
	}
}

// CreateTaxReturn creates a return for the caller and answers with its computed totals
func (h *TaxReturnHandler) CreateTaxReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req requests.CreateTaxReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}
	status, err := taxcalc.ParseFilingStatus(req.FilingStatus)
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidFilingStatus, err)
		return
	}

	agg, err := h.taxReturns.CreateTaxReturn(c.Request.Context(), params.CreateTaxReturnParams{
		UserID:       userID,
		Year:         req.Year,
		FilingStatus: status,
		PersonalInfo: toPersonalInfo(req.PersonalInfoRequest),
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create tax return")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToTaxReturnDetailResponse(*agg))
}

// ListTaxReturns lists the caller's returns, optionally for one year
func (h *TaxReturnHandler) ListTaxReturns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	year, ok := queryYear(c)
	if !ok {
		return
	}

	returns, err := h.taxReturns.ListTaxReturns(c.Request.Context(), params.ListTaxReturnsParams{UserID: userID, Year: year})
	if err != nil {
		handleServiceError(c, err, "Failed to list tax returns")
		return
	}

	response := make([]responses.TaxReturnResponse, len(returns))
	for i, r := range returns {
		response[i] = helpers.ToTaxReturnResponse(r)
	}
	sendList(c, response)
}

func (h *TaxReturnHandler) GetTaxReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	agg, err := h.taxReturns.GetTaxReturn(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Failed to get tax return")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToTaxReturnDetailResponse(*agg))
}

// UpdateTaxReturn replaces the header of a return. W-2s, deductions, credits
// and other income are kept.
func (h *TaxReturnHandler) UpdateTaxReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	var req requests.UpdateTaxReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}
	status, err := taxcalc.ParseFilingStatus(req.FilingStatus)
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidFilingStatus, err)
		return
	}

	agg, err := h.taxReturns.UpdateTaxReturn(c.Request.Context(), params.UpdateTaxReturnParams{
		ID:           id,
		UserID:       userID,
		Year:         req.Year,
		FilingStatus: status,
		PersonalInfo: toPersonalInfo(req.PersonalInfoRequest),
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update tax return")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToTaxReturnDetailResponse(*agg))
}

func (h *TaxReturnHandler) DeleteTaxReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	if err := h.taxReturns.DeleteTaxReturn(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Failed to delete tax return")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRefund answers with the federal and state refunds. Negative amounts are owed.
func (h *TaxReturnHandler) GetRefund(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	totals, err := h.taxReturns.GetRefund(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Failed to get refund")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToRefundResponse(id, *totals))
}

// Recalculate recomputes and stores the totals of a return
func (h *TaxReturnHandler) Recalculate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	agg, err := h.taxReturns.Recalculate(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, constants.CalculationFailed)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToTaxReturnDetailResponse(*agg))
}

func (h *TaxReturnHandler) ListFilingStatuses(c *gin.Context) {
	sendList(c, helpers.ToFilingStatusResponses(h.taxReturns.FilingStatuses()))
}
