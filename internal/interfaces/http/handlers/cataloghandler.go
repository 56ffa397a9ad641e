package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogusecases "slotly/internal/application/catalog/usecases"
	"slotly/internal/shared/logger"
	"slotly/internal/shared/utils"
)

type CatalogHandler struct {
	listLocationsUseCase *catalogusecases.ListLocationsUseCase
	listEmployeesUseCase *catalogusecases.ListEmployeesUseCase
	listServicesUseCase  *catalogusecases.ListServicesUseCase
	getScheduleUseCase   *catalogusecases.GetScheduleUseCase
	logger               logger.Interface
}

func NewCatalogHandler(
	listLocationsUC *catalogusecases.ListLocationsUseCase,
	listEmployeesUC *catalogusecases.ListEmployeesUseCase,
	listServicesUC *catalogusecases.ListServicesUseCase,
	getScheduleUC *catalogusecases.GetScheduleUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listLocationsUseCase: listLocationsUC,
		listEmployeesUseCase: listEmployeesUC,
		listServicesUseCase:  listServicesUC,
		getScheduleUseCase:   getScheduleUC,
		logger:               logger,
	}
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.listLocationsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toLocationResponses(locations))
}

func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	cmd := catalogusecases.ListEmployeesCommand{}
	if v := c.Query("location_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid location_id")
			return
		}
		locationID := uint(id)
		cmd.LocationID = &locationID
	}

	employees, err := h.listEmployeesUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toEmployeeResponses(employees))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.listServicesUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toServiceResponses(services))
}

// GetSchedule handles GET /employees/:id/schedule?location_id=
func (h *CatalogHandler) GetSchedule(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || employeeID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	locationID, ok := requiredUintQuery(c, "location_id")
	if !ok {
		return
	}

	blocks, err := h.getScheduleUseCase.Execute(c.Request.Context(), catalogusecases.GetScheduleCommand{
		EmployeeID: uint(employeeID),
		LocationID: locationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toScheduleBlockResponses(blocks))
}
