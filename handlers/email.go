package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"transcript-summary-api/mailer"
	"transcript-summary-api/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const mailNotConfiguredDetail = "Email service is not configured on the server."

type EmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
	Content    *string  `json:"content" binding:"required"`
}

// HandleShareEmail mails the edited summary to every recipient.
func HandleShareEmail(logger *zap.Logger, sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		sugar := logger.Sugar()
		var req EmailRequest
		if !bindJSON(c, &req) {
			return
		}

		if !sender.Configured() {
			utils.EmailDispatchTotal.WithLabelValues(utils.OutcomeUnconfigured).Inc()
			sugar.Error("Email requested but SMTP is not configured")
			abortWithDetail(c, http.StatusInternalServerError, mailNotConfiguredDetail)
			return
		}

		err := sender.Send(c.Request.Context(), mailer.Compose(req.Recipients, *req.Content))
		if err != nil {
			if errors.Is(err, mailer.ErrNotConfigured) {
				utils.EmailDispatchTotal.WithLabelValues(utils.OutcomeUnconfigured).Inc()
				abortWithDetail(c, http.StatusInternalServerError, mailNotConfiguredDetail)
				return
			}
			utils.EmailDispatchTotal.WithLabelValues(utils.OutcomeError).Inc()
			sugar.Errorw("Email dispatch failed",
				"recipients", len(req.Recipients),
				"error", err)
			abortWithDetail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to send email: %v", err))
			return
		}

		utils.EmailDispatchTotal.WithLabelValues(utils.OutcomeSuccess).Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully!"})
	}
}
