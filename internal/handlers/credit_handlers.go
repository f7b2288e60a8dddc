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

// CreditHandler handles the credit inputs of a return
type CreditHandler struct {
	credits interfaces.CreditService
}

func NewCreditHandler(credits interfaces.CreditService) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// bindCredit reads the caller, the return and the body shared by create and update.
func (h *CreditHandler) bindCredit(c *gin.Context) (params.CreditParams, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return params.CreditParams{}, false
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return params.CreditParams{}, false
	}

	var req requests.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return params.CreditParams{}, false
	}
	return params.CreditParams{
		UserID:      userID,
		TaxReturnID: taxReturnID,
		Record: taxcalc.CreditRecord{
			TaxReturnID:          taxReturnID,
			NumDependents:        req.NumDependents,
			NumDependentsAOTC:    req.NumDependentsAOTC,
			NumChildren:          req.NumChildren,
			ChildCareExpenses:    req.ChildCareExpenses,
			EducationExpenses:    req.EducationExpenses,
			LLCEducationExpenses: req.LLCEducationExpenses,
			IRAContributions:     req.IRAContributions,
			ClaimedAsDependent:   req.ClaimedAsDependent,
			ClaimLLCCredit:       req.ClaimLLCCredit,
		},
	}, true
}

func (h *CreditHandler) GetCredit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	credit, err := h.credits.GetCredit(c.Request.Context(), userID, taxReturnID)
	if err != nil {
		handleServiceError(c, err, "Failed to get credits")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToCreditResponse(*credit))
}

func (h *CreditHandler) CreateCredit(c *gin.Context) {
	in, ok := h.bindCredit(c)
	if !ok {
		return
	}
	credit, err := h.credits.CreateCredit(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "Failed to create credits")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToCreditResponse(*credit))
}

func (h *CreditHandler) UpdateCredit(c *gin.Context) {
	in, ok := h.bindCredit(c)
	if !ok {
		return
	}
	credit, err := h.credits.UpdateCredit(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "Failed to update credits")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToCreditResponse(*credit))
}

func (h *CreditHandler) DeleteCredit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	if err := h.credits.DeleteCredit(c.Request.Context(), userID, taxReturnID); err != nil {
		handleServiceError(c, err, "Failed to delete credits")
		return
	}
	c.Status(http.StatusNoContent)
}
