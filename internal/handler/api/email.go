package api

import (
	"net/http"

	reqdto "talent-mailer/internal/handler/dto/request"
	resdto "talent-mailer/internal/handler/dto/response"
	"talent-mailer/internal/handler/httperr"
	"talent-mailer/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// EmailHandler answers every well-formed request with the same 202 body.
type EmailHandler struct {
	cmds commands.EmailCommands
}

func NewEmailHandler(cmds commands.EmailCommands) *EmailHandler {
	return &EmailHandler{cmds: cmds}
}

// @Summary Request verification email
// @Description Sends an email verification link if the account exists and is not verified yet
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Recipient"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/verification-email [post]
func (h *EmailHandler) RequestVerificationEmail(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	h.cmds.RequestVerificationEmail(c.Request.Context(), req)
	accepted(c)
}

// @Summary Request password reset email
// @Description Sends a password reset link if the account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Recipient"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/password-reset [post]
func (h *EmailHandler) RequestPasswordReset(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	h.cmds.RequestPasswordReset(c.Request.Context(), req)
	accepted(c)
}

func (h *EmailHandler) bind(c *gin.Context) (commands.EmailRequest, bool) {
	var body reqdto.EmailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return commands.EmailRequest{}, false
	}

	return commands.EmailRequest{
		Email:    body.Email,
		ClientIP: c.ClientIP(),
		Route:    c.FullPath(),
	}, true
}

func accepted(c *gin.Context) {
	c.JSON(http.StatusAccepted, resdto.AcceptedResponse{Message: commands.GenericInboxMessage})
}
