package metrics

import (
	"github.com/MKhiriev/go-hivemind/models"
)

const coordinatorSubsystem = "coordinator"

var (
	submissions = NewCounter("submissions_total", coordinatorSubsystem,
		"Submissions received, by content kind", []string{"kind"})
	actions = NewCounter("actions_total", coordinatorSubsystem,
		"Actions returned to clients, by kind", []string{"action"})
	comparisons = NewCounter("comparisons_total", coordinatorSubsystem,
		"Digest comparisons against the latest digest, by outcome", []string{"outcome"})
	rejected = NewCounter("rejected_total", coordinatorSubsystem,
		"Submissions rejected by validation", []string{"reason"})
	orphanPayloads = NewCounter("orphan_payloads_total", coordinatorSubsystem,
		"Payloads received without a pending fetch request", nil)
	resets = NewCounter("resets_total", coordinatorSubsystem,
		"Session resets, by mode", []string{"mode"})
	trackedClients = NewGauge("tracked_clients", coordinatorSubsystem,
		"Clients with recorded history", nil)
)

// ReportSubmission counts an inbound submission.
func ReportSubmission(kind models.ContentKind) {
	submissions.WithLabelValues(kind.String()).Inc()
}

// ReportAction counts an outbound action.
func ReportAction(kind models.ActionKind) {
	actions.WithLabelValues(kind.String()).Inc()
}

// ReportComparison counts a comparison against the latest digest.
func ReportComparison(outcome models.Outcome) {
	comparisons.WithLabelValues(outcome.String()).Inc()
}

// ReportRejected counts a submission that failed validation.
func ReportRejected(reason string) {
	rejected.WithLabelValues(reason).Inc()
}

// ReportOrphanPayload counts a payload nobody asked for.
func ReportOrphanPayload() {
	orphanPayloads.WithLabelValues().Inc()
}

// ReportReset counts a session reset.
func ReportReset(mode models.ClearMode) {
	resets.WithLabelValues(mode.String()).Inc()
}

// SetTrackedClients records the number of clients with history.
func SetTrackedClients(n int) {
	trackedClients.WithLabelValues().Set(float64(n))
}
