package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/dto"
	"github.com/SscSPs/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
)

// reportHandler handles HTTP requests related to report jobs.
type reportHandler struct {
	reportingService portssvc.ReportingService
	apiPrefix        string
	validate         *validator.Validate
}

func newReportHandler(rs portssvc.ReportingService, apiPrefix string) *reportHandler {
	return &reportHandler{
		reportingService: rs,
		apiPrefix:        apiPrefix,
		validate:         validator.New(),
	}
}

// registerReportRoutes registers routes related to report jobs. Starting a job is rate
// limited when lim is non-nil.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, apiPrefix string, lim *limiter.Limiter) {
	h := newReportHandler(reportingService, apiPrefix)

	reports := rg.Group("/reports")
	{
		if lim != nil {
			reports.POST("", middleware.RateLimit(lim), h.generateReports)
		} else {
			reports.POST("", h.generateReports)
		}
		reports.GET("/:jobId", h.getJobStatus)
	}
}

// generateReports godoc
// @Summary Start report generation
// @Description Starts generating the accounts, yearly and financial statement reports in the background and returns the job id to poll.
// @Tags reports
// @Produce  json
// @Success 202 {object} dto.GenerateReportResponse
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to start report generation"
// @Router /reports [post]
func (h *reportHandler) generateReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	jobID, err := h.reportingService.GenerateReports(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to start report generation")
		return
	}

	logger.Info("Report generation accepted", slog.String("job_id", jobID))
	c.JSON(http.StatusAccepted, dto.NewGenerateReportResponse(jobID, h.apiPrefix))
}

// getJobStatus godoc
// @Summary Get report job status
// @Description Returns the status of every task of a report job. endTime and totalDuration are null until all tasks have finished or failed.
// @Tags reports
// @Produce  json
// @Param   jobId path string true "Job ID"
// @Success 200 {object} dto.JobStatusResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /reports/{jobId} [get]
func (h *reportHandler) getJobStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobId")

	// Job ids are UUIDs; anything else cannot name a job.
	if err := h.validate.Var(jobID, "required,uuid"); err != nil {
		logger.Warn("Malformed job id", slog.String("job_id", jobID))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: fmt.Sprintf("Job %s not found", jobID)})
		return
	}

	job, err := h.reportingService.GetJobStatus(c.Request.Context(), jobID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("job_id", jobID)), err, "Failed to retrieve job status")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobStatusResponse(job))
}
