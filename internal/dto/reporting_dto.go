package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ops_backend/internal/core/domain"
)

// GenerateReportResponse is returned when a report job has been accepted.
type GenerateReportResponse struct {
	Message   string `json:"message"`
	JobID     string `json:"jobId"`
	StatusURL string `json:"statusUrl"`
}

// NewGenerateReportResponse builds the accepted response; statusURL is prefixed with apiPrefix.
func NewGenerateReportResponse(jobID, apiPrefix string) GenerateReportResponse {
	return GenerateReportResponse{
		Message:   "Report generation started",
		JobID:     jobID,
		StatusURL: fmt.Sprintf("%s/reports/%s", apiPrefix, jobID),
	}
}

// JobStatusResponse describes the progress of a report job.
type JobStatusResponse struct {
	JobID     string                    `json:"jobId"`
	Status    domain.ReportTaskStatuses `json:"status"`
	StartTime time.Time                 `json:"startTime"`
	EndTime   *time.Time                `json:"endTime"`
	// TotalDuration is formatted as "<seconds>s" with two decimals, or null while running.
	TotalDuration *string `json:"totalDuration"`
}

// ToJobStatusResponse converts a domain.ReportJob to JobStatusResponse DTO
func ToJobStatusResponse(job *domain.ReportJob) JobStatusResponse {
	resp := JobStatusResponse{
		JobID:     job.JobID,
		Status:    job.Status,
		StartTime: job.StartTime,
		EndTime:   job.EndTime,
	}
	if job.TotalDuration != nil {
		formatted := fmt.Sprintf("%.2fs", job.TotalDuration.Seconds())
		resp.TotalDuration = &formatted
	}
	return resp
}
