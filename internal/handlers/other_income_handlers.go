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
)

// OtherIncomeHandler handles the non-wage income of a return
type OtherIncomeHandler struct {
	otherIncome interfaces.OtherIncomeService
}

func NewOtherIncomeHandler(otherIncome interfaces.OtherIncomeService) *OtherIncomeHandler {
	return &OtherIncomeHandler{otherIncome: otherIncome}
}

func (h *OtherIncomeHandler) bindOtherIncome(c *gin.Context) (params.OtherIncomeParams, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return params.OtherIncomeParams{}, false
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return params.OtherIncomeParams{}, false
	}

	var req requests.OtherIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return params.OtherIncomeParams{}, false
	}
	return params.OtherIncomeParams{
		UserID:      userID,
		TaxReturnID: taxReturnID,
		Income: taxcalc.OtherIncome{
			TaxReturnID:           taxReturnID,
			LongTermCapitalGains:  req.LongTermCapitalGains,
			ShortTermCapitalGains: req.ShortTermCapitalGains,
			OtherInvestmentIncome: req.OtherInvestmentIncome,
			NetBusinessIncome:     req.NetBusinessIncome,
			AdditionalIncome:      req.AdditionalIncome,
		},
	}, true
}

func (h *OtherIncomeHandler) GetOtherIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	income, err := h.otherIncome.GetOtherIncome(c.Request.Context(), userID, taxReturnID)
	if err != nil {
		handleServiceError(c, err, "Failed to get other income")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToOtherIncomeResponse(*income))
}

func (h *OtherIncomeHandler) CreateOtherIncome(c *gin.Context) {
	in, ok := h.bindOtherIncome(c)
	if !ok {
		return
	}
	income, err := h.otherIncome.CreateOtherIncome(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "Failed to create other income")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToOtherIncomeResponse(*income))
}

func (h *OtherIncomeHandler) UpdateOtherIncome(c *gin.Context) {
	in, ok := h.bindOtherIncome(c)
	if !ok {
		return
	}
	income, err := h.otherIncome.UpdateOtherIncome(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "Failed to update other income")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToOtherIncomeResponse(*income))
}

func (h *OtherIncomeHandler) DeleteOtherIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	if err := h.otherIncome.DeleteOtherIncome(c.Request.Context(), userID, taxReturnID); err != nil {
		handleServiceError(c, err, "Failed to delete other income")
		return
	}
	c.Status(http.StatusNoContent)
}
