package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school-payments-api/internal/helpers"
	"school-payments-api/internal/service"
)

type WebhookHandler struct {
	reconciler *service.ReconcileService
	log        *logrus.Logger
}

func NewWebhookHandler(reconciler *service.ReconcileService, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, log: log}
}

// Receive handles gateway notifications. A 4xx tells the gateway the
// payload is malformed and not worth retrying; a 5xx tells it to retry.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Unable to read webhook body.")
		return
	}

	status, err := h.reconciler.Process(body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid webhook payload.")
			return
		}
		h.log.WithError(err).Error("webhook processing failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.WithFields(logrus.Fields{
		"collect_id": status.CollectID,
		"status":     status.Status,
	}).Info("webhook processed")

	c.JSON(http.StatusOK, gin.H{"message": "Webhook processed successfully."})
}
