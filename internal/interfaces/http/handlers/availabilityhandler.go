package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	availabilityusecases "slotly/internal/application/availability/usecases"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

type AvailabilityHandler struct {
	computeSlotsUseCase *availabilityusecases.ComputeSlotsUseCase
	logger              logger.Interface
}

func NewAvailabilityHandler(
	computeSlotsUC *availabilityusecases.ComputeSlotsUseCase,
	logger logger.Interface,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		computeSlotsUseCase: computeSlotsUC,
		logger:              logger,
	}
}

type AvailabilityRequest struct {
	ServiceID  uint   `form:"service_id" binding:"required"`
	EmployeeID uint   `form:"employee_id" binding:"required"`
	LocationID uint   `form:"location_id" binding:"required"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
}

// GetSlots handles GET /availability?service_id=&employee_id=&location_id=&date=
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	result, err := h.computeSlotsUseCase.Execute(c.Request.Context(), availabilityusecases.ComputeSlotsCommand{
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		LocationID: req.LocationID,
		Date:       req.Date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toSlotResponses(result.Slots))
}
