package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	bookingusecases "slotly/internal/application/booking/usecases"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

type BookingHandler struct {
	bookUseCase       *bookingusecases.BookAppointmentUseCase
	cancelUseCase     *bookingusecases.CancelAppointmentUseCase
	rescheduleUseCase *bookingusecases.RescheduleAppointmentUseCase
	fulfillUseCase    *bookingusecases.FulfillAppointmentUseCase
	deleteUseCase     *bookingusecases.DeleteAppointmentUseCase
	getUseCase        *bookingusecases.GetAppointmentUseCase
	listUseCase       *bookingusecases.ListAppointmentsUseCase
	logger            logger.Interface
}

func NewBookingHandler(
	bookUC *bookingusecases.BookAppointmentUseCase,
	cancelUC *bookingusecases.CancelAppointmentUseCase,
	rescheduleUC *bookingusecases.RescheduleAppointmentUseCase,
	fulfillUC *bookingusecases.FulfillAppointmentUseCase,
	deleteUC *bookingusecases.DeleteAppointmentUseCase,
	getUC *bookingusecases.GetAppointmentUseCase,
	listUC *bookingusecases.ListAppointmentsUseCase,
	logger logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		bookUseCase:       bookUC,
		cancelUseCase:     cancelUC,
		rescheduleUseCase: rescheduleUC,
		fulfillUseCase:    fulfillUC,
		deleteUseCase:     deleteUC,
		getUseCase:        getUC,
		listUseCase:       listUC,
		logger:            logger,
	}
}

type BookAppointmentRequest struct {
	ServiceID  uint      `json:"service_id" binding:"required"`
	EmployeeID uint      `json:"employee_id" binding:"required"`
	LocationID uint      `json:"location_id" binding:"required"`
	StartTime  time.Time `json:"start_time" binding:"required"`
}

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.bookUseCase.Execute(c.Request.Context(), bookingusecases.BookAppointmentCommand{
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		LocationID: req.LocationID,
		StartTime:  req.StartTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAppointmentResponse(result.Appointment), "appointment booked")
}

func (h *BookingHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), bookingusecases.GetAppointmentCommand{
		PublicID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAppointmentResponse(result.Appointment))
}

func (h *BookingHandler) List(c *gin.Context) {
	cmd := bookingusecases.ListAppointmentsCommand{
		Limit:  parseIntQuery(c, "limit", 0),
		Offset: parseIntQuery(c, "offset", 0),
	}

	if v := c.Query("employee_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			employeeID := uint(id)
			cmd.EmployeeID = &employeeID
		}
	}
	if v := c.Query("location_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			locationID := uint(id)
			cmd.LocationID = &locationID
		}
	}
	if v := c.Query("user_id"); v != "" {
		cmd.UserID = &v
	}
	if v := c.Query("status"); v != "" {
		cmd.Status = &v
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid from time, expected RFC3339")
			return
		}
		cmd.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid to time, expected RFC3339")
			return
		}
		cmd.To = &to
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toAppointmentResponses(result.Appointments), result.Total)
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.cancelUseCase.Execute(c.Request.Context(), bookingusecases.CancelAppointmentCommand{
		PublicID: c.Param("id"),
		Reason:   req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "appointment cancelled", toAppointmentResponse(result.Appointment))
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.rescheduleUseCase.Execute(c.Request.Context(), bookingusecases.RescheduleAppointmentCommand{
		PublicID:     c.Param("id"),
		NewStartTime: req.StartTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "appointment rescheduled", toAppointmentResponse(result.Appointment))
}

func (h *BookingHandler) Fulfill(c *gin.Context) {
	result, err := h.fulfillUseCase.Execute(c.Request.Context(), bookingusecases.FulfillAppointmentCommand{
		PublicID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "appointment fulfilled", toAppointmentResponse(result.Appointment))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.deleteUseCase.Execute(c.Request.Context(), bookingusecases.DeleteAppointmentCommand{
		PublicID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
