package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReportTask names one of the three computations a report job fans out into.
type ReportTask string

const (
	ReportTaskAccounts ReportTask = "accounts"
	ReportTaskYearly   ReportTask = "yearly"
	ReportTaskFS       ReportTask = "fs"
)

// ReportTasks lists the tasks of every job in dispatch order.
var ReportTasks = []ReportTask{ReportTaskAccounts, ReportTaskYearly, ReportTaskFS}

const (
	TaskStatusQueued     = "queued"
	TaskStatusProcessing = "processing"

	taskFinishedPrefix = "finished"
	taskErrorPrefix    = "error"
)

// FinishedStatus formats the terminal success status of a task.
func FinishedStatus(d time.Duration) string {
	return fmt.Sprintf("%s in %.2fs", taskFinishedPrefix, d.Seconds())
}

// ErrorStatus formats the terminal failure status of a task.
func ErrorStatus(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("%s: %s", taskErrorPrefix, msg)
}

// IsTerminalStatus reports whether a task status is finished or errored.
func IsTerminalStatus(status string) bool {
	return strings.HasPrefix(status, taskFinishedPrefix) || strings.HasPrefix(status, taskErrorPrefix)
}

// ReportTaskStatuses holds the status string of every task in a job.
type ReportTaskStatuses struct {
	Accounts string `json:"accounts"`
	Yearly   string `json:"yearly"`
	FS       string `json:"fs"`
}

// Get returns the status of task.
func (s ReportTaskStatuses) Get(task ReportTask) (string, bool) {
	switch task {
	case ReportTaskAccounts:
		return s.Accounts, true
	case ReportTaskYearly:
		return s.Yearly, true
	case ReportTaskFS:
		return s.FS, true
	}
	return "", false
}

// Set updates the status of task. It returns false for an unknown task.
func (s *ReportTaskStatuses) Set(task ReportTask, status string) bool {
	switch task {
	case ReportTaskAccounts:
		s.Accounts = status
	case ReportTaskYearly:
		s.Yearly = status
	case ReportTaskFS:
		s.FS = status
	default:
		return false
	}
	return true
}

// AllTerminal reports whether every task has reached a terminal status.
func (s ReportTaskStatuses) AllTerminal() bool {
	return IsTerminalStatus(s.Accounts) && IsTerminalStatus(s.Yearly) && IsTerminalStatus(s.FS)
}

// ReportJob is the status record of one report generation request.
type ReportJob struct {
	JobID     string             `json:"jobId"`
	Status    ReportTaskStatuses `json:"status"`
	StartTime time.Time          `json:"startTime"`
	EndTime   *time.Time         `json:"endTime,omitempty"`
	// TotalDuration is EndTime-StartTime, frozen when the job completes.
	TotalDuration *time.Duration `json:"totalDuration,omitempty"`
}

// IsComplete reports whether the job has been stamped as complete.
func (j ReportJob) IsComplete() bool {
	return j.EndTime != nil
}
