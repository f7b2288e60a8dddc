package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"github.com/taxdesk/tax-service/internal/types/requests"
	"github.com/taxdesk/tax-service/internal/types/responses"
)

// imageFormField is the multipart field carrying a W-2 scan.
const imageFormField = "image"

// W2Handler handles W-2 endpoints
type W2Handler struct {
	w2s interfaces.W2Service
}

func NewW2Handler(w2s interfaces.W2Service) *W2Handler {
	return &W2Handler{w2s: w2s}
}

func toW2Params(userID, taxReturnID int64, req requests.W2Request) params.W2Params {
	return params.W2Params{
		ID:                     req.ID,
		UserID:                 userID,
		TaxReturnID:            taxReturnID,
		EmployerName:           req.EmployerName,
		EmployerStreetAddress:  req.EmployerStreetAddress,
		EmployerCity:           req.EmployerCity,
		EmployerState:          req.EmployerState,
		EmployerZip:            req.EmployerZip,
		Ein:                    req.Ein,
		WagesAndTips:           req.WagesAndTips,
		FederalTaxWithheld:     req.FederalTaxWithheld,
		StateTaxWithheld:       req.StateTaxWithheld,
		SocialSecurityWithheld: req.SocialSecurityWithheld,
		MedicareWithheld:       req.MedicareWithheld,
	}
}

func sendW2List(c *gin.Context, w2s []taxcalc.W2) {
	response := make([]responses.W2Response, len(w2s))
	for i, w2 := range w2s {
		response[i] = helpers.ToW2Response(w2)
	}
	sendList(c, response)
}

// CreateW2 adds a W-2 to the return named by the taxReturnId query parameter
func (h *W2Handler) CreateW2(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, err := strconv.ParseInt(c.Query("taxReturnId"), 10, 64)
	if err != nil || taxReturnID <= 0 {
		sendError(c, http.StatusBadRequest, constants.InvalidTaxReturnID, err)
		return
	}

	var req requests.W2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}
	req.ID = 0

	w2, err := h.w2s.CreateW2(c.Request.Context(), toW2Params(userID, taxReturnID, req))
	if err != nil {
		handleServiceError(c, err, "Failed to create W2")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToW2Response(*w2))
}

// ListW2s lists the caller's W-2s, optionally for one year
func (h *W2Handler) ListW2s(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	year, ok := queryYear(c)
	if !ok {
		return
	}

	w2s, err := h.w2s.ListW2s(c.Request.Context(), params.ListW2sParams{UserID: userID, Year: year})
	if err != nil {
		handleServiceError(c, err, "Failed to list W2s")
		return
	}
	sendW2List(c, w2s)
}

func (h *W2Handler) ListW2sByTaxReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "tax_return_id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	w2s, err := h.w2s.ListW2sByTaxReturn(c.Request.Context(), userID, taxReturnID)
	if err != nil {
		handleServiceError(c, err, "Failed to list W2s")
		return
	}
	sendW2List(c, w2s)
}

// ReplaceW2s makes the request body the complete list of W-2s on a return.
// An empty list removes every W-2.
func (h *W2Handler) ReplaceW2s(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taxReturnID, ok := pathID(c, "tax_return_id", constants.InvalidTaxReturnID)
	if !ok {
		return
	}

	var req requests.ReplaceW2sRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}

	in := params.ReplaceW2sParams{
		UserID:      userID,
		TaxReturnID: taxReturnID,
		W2s:         make([]params.W2Params, len(req.W2s)),
	}
	for i, w2 := range req.W2s {
		in.W2s[i] = toW2Params(userID, taxReturnID, w2)
	}

	w2s, err := h.w2s.ReplaceW2s(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "Failed to replace W2s")
		return
	}
	sendW2List(c, w2s)
}

func (h *W2Handler) GetW2(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidW2ID)
	if !ok {
		return
	}

	w2, err := h.w2s.GetW2(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Failed to get W2")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToW2Response(*w2))
}

func (h *W2Handler) UpdateW2(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidW2ID)
	if !ok {
		return
	}

	var req requests.W2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err)
		return
	}
	req.ID = id

	w2, err := h.w2s.UpdateW2(c.Request.Context(), toW2Params(userID, 0, req))
	if err != nil {
		handleServiceError(c, err, "Failed to update W2")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToW2Response(*w2))
}

func (h *W2Handler) DeleteW2(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidW2ID)
	if !ok {
		return
	}

	if err := h.w2s.DeleteW2(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err, "Failed to delete W2")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage stores a scan of the W-2 sent as the "image" multipart field
func (h *W2Handler) UploadImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidW2ID)
	if !ok {
		return
	}

	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxImageSize+1<<20)
	header, err := c.FormFile(imageFormField)
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidImage, err)
		return
	}
	if header.Size > constants.MaxImageSize {
		sendError(c, http.StatusRequestEntityTooLarge, constants.ImageTooLarge, nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidImage, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, constants.MaxImageSize+1))
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidImage, err)
		return
	}

	w2, err := h.w2s.UploadImage(c.Request.Context(), params.UploadW2ImageParams{
		UserID:      userID,
		W2ID:        id,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to upload W2 image")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToW2Response(*w2))
}

// GetImage streams the stored scan of a W-2
func (h *W2Handler) GetImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", constants.InvalidW2ID)
	if !ok {
		return
	}

	image, err := h.w2s.GetImage(c.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(c, err, "Failed to get W2 image")
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Header("ETag", `"`+image.Key+`"`)
	c.Data(http.StatusOK, image.ContentType, image.Data)
}
