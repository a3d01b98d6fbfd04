package api

import (
	"net/http"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/domain/user"
	reqdto "talent-mailer/internal/handler/dto/request"
	resdto "talent-mailer/internal/handler/dto/response"
	"talent-mailer/internal/handler/httperr"
	"talent-mailer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminEmailSendHandler struct {
	q queries.EmailSendQueries
}

func NewAdminEmailSendHandler(q queries.EmailSendQueries) *AdminEmailSendHandler {
	return &AdminEmailSendHandler{q: q}
}

// @Summary Current email send window
// @Description Shows the idempotency key a send would claim right now and the entry holding it, if any
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param purpose query string true "verify_email or password_reset"
// @Param email query string true "Recipient email"
// @Success 200 {object} resdto.CurrentWindowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/email-sends/current [get]
func (h *AdminEmailSendHandler) GetCurrentWindow(c *gin.Context) {
	var query reqdto.CurrentWindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	purpose, err := emailsend.ParsePurpose(query.Purpose)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid purpose", nil)
		return
	}
	email, err := user.NewEmail(query.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		return
	}

	view, err := h.q.LookupCurrentWindow(c.Request.Context(), purpose, email.Value())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load email send window", nil)
		return
	}
	res, err := resdto.FromCurrentWindowView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render email send window", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Recent email sends
// @Description Lists the latest ledger entries for a recipient
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email query string true "Recipient email"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.EmailSendListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/email-sends [get]
func (h *AdminEmailSendHandler) ListRecent(c *gin.Context) {
	var query reqdto.ListEmailSendsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	email, err := user.NewEmail(query.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		return
	}

	views, err := h.q.ListRecent(c.Request.Context(), email.Value(), query.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list email sends", nil)
		return
	}
	res, err := resdto.FromEmailSendList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render email sends", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
