package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"school-payments-api/internal/helpers"
	"school-payments-api/internal/service"
)

type TransactionHandler struct {
	transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) List(c *gin.Context) {
	page, err := helpers.StringToInt(c.DefaultQuery("page", "1"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}
	limit, err := helpers.StringToInt(c.DefaultQuery("limit", "10"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}
	sortField := c.DefaultQuery("sort", "payment_time")
	sortOrder := c.DefaultQuery("order", "desc")

	result, err := h.transactions.List(page, limit, sortField, sortOrder)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Data,
		"pagination": result.Pagination,
		"sort":       result.Sort,
	})
}

func (h *TransactionHandler) ListBySchool(c *gin.Context) {
	schoolID := c.Param("schoolId")

	transactions, err := h.transactions.ListBySchool(schoolID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(transactions),
		"data":    transactions,
	})
}

func (h *TransactionHandler) Status(c *gin.Context) {
	customOrderID := c.Param("custom_order_id")

	summary, err := h.transactions.StatusByOrderID(customOrderID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Transaction not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}
