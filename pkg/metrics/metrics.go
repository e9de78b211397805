package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "readmeq"

	metricLabelStatus    = "status"
	metricLabelSource    = "source"
	metricLabelOperation = "operation"

	StatusOK    = "ok"
	StatusError = "error"

	SourceLatest = "latest"
	SourcePath   = "path"
)

var (
	// SectionEditCounter counts section edits by outcome
	SectionEditCounter = newCounterVec(
		"section_edit_count",
		"Number of section edits",
		metricLabelStatus,
	)
	// BackupCounter counts backups by outcome
	BackupCounter = newCounterVec(
		"backup_count",
		"Number of backups written",
		metricLabelStatus,
	)
	// RestoreCounter counts restores by outcome and where the restored bytes came from
	RestoreCounter = newCounterVec(
		"restore_count",
		"Number of restores",
		metricLabelStatus, metricLabelSource,
	)
	// OperationDuration observes the duration of each core operation
	OperationDuration = newSummaryVec(
		"operation_duration_seconds",
		"Seconds spent in each edit, backup and restore operation",
		metricLabelOperation, metricLabelStatus,
	)
)

// Status maps an error to the status label value.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// Observe records the duration of operation since start.
func Observe(operation string, start time.Time, err error) {
	OperationDuration.WithLabelValues(operation, Status(err)).Observe(time.Since(start).Seconds())
}

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
