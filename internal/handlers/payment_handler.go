package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school-payments-api/internal/helpers"
	"school-payments-api/internal/models"
	"school-payments-api/internal/service"
)

type PaymentRequest struct {
	SchoolID    string             `json:"school_id" binding:"required"`
	TrusteeID   string             `json:"trustee_id"`
	StudentInfo models.StudentInfo `json:"student_info"`
	OrderAmount float64            `json:"order_amount" binding:"required"`
	GatewayName string             `json:"gateway_name"`
}

type PaymentHandler struct {
	payments *service.PaymentService
	log      *logrus.Logger
}

func NewPaymentHandler(payments *service.PaymentService, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: log}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var paymentReq PaymentRequest
	if err := c.ShouldBindJSON(&paymentReq); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	result, err := h.payments.CreatePayment(service.CreatePaymentInput{
		SchoolID:    paymentReq.SchoolID,
		TrusteeID:   paymentReq.TrusteeID,
		StudentInfo: paymentReq.StudentInfo,
		OrderAmount: paymentReq.OrderAmount,
		GatewayName: paymentReq.GatewayName,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.WithError(err).Error("payment creation failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Payment created",
		"paymentLink": result.PaymentLink,
		"orderId":     result.OrderID,
	})
}
