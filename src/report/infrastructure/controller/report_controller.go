package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Maximuscb/APOS-sub001/src/report/application/usecase"
	sharedController "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/controller"
)

// ReportController maneja las peticiones HTTP de reportes del terminal
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
}

// DailyReport genera el reporte diario a partir del journal local
func (c *ReportController) DailyReport(ctx *gin.Context) {
	_, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}

	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), storeID, date)
	if err != nil {
		log.Printf("Error generating daily report: %v", err)

		if strings.Contains(err.Error(), "invalid date format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error generating daily report",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
