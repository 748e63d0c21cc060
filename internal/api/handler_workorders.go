package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"maintenance-planner-backend/internal/model"
	"maintenance-planner-backend/internal/normalize"
)

// PlanWorkOrder handles POST /api/work-orders/plan. The request body is a
// diagnosed fault; the response is the stored work order.
func (h *Handler) PlanWorkOrder(c *gin.Context) {
	var fault model.DiagnosedFault
	if err := c.ShouldBindJSON(&fault); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fault.MachineID == "" || fault.FaultType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "machineId and faultType are required"})
		return
	}

	wo, err := h.planner.PlanRepair(c.Request.Context(), fault)
	if err != nil {
		var parseErr *normalize.ResponseParseError
		if errors.As(err, &parseErr) || errors.Is(err, normalize.ErrEmptyResponse) {
			// The model produced unusable output; the caller may retry.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.notifier != nil {
		h.notifier.Dispatch(wo.ID)
	}
	c.JSON(http.StatusCreated, wo)
}

// ListWorkOrders handles GET /api/work-orders.
func (h *Handler) ListWorkOrders(c *gin.Context) {
	orders, err := h.store.ListWorkOrders(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve work orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetWorkOrder handles GET /api/work-orders/:id.
func (h *Handler) GetWorkOrder(c *gin.Context) {
	order, err := h.store.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "work order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve work order"})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
