// Package metrics defines and registers the custom Prometheus metrics of the
// transportista service. It is the single source of truth for metric names,
// labels and help strings.
//
// All metrics are registered with the default registry on package load via
// promauto; HTTP request metrics are added separately by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/a4co/transportista-service/internal/core/domain"
)

const namespace = "transportista"

// OtherStatus is the label recorded for status labels outside the known set.
const OtherStatus = "other"

// StatusLabel maps a caller supplied status onto a bounded label value.
func StatusLabel(status string) string {
	if domain.KnownStatus(status) {
		return status
	}
	return OtherStatus
}

// ── Carrier metrics ───────────────────────────────────────────────────────────

// CarriersRegisteredTotal counts successfully registered carriers.
// Label:
//   - vehicle_type: camion, furgon, motocicleta or bicicleta
var CarriersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carriers_registered_total",
		Help:      "Total number of carriers registered, by vehicle type.",
	},
	[]string{"vehicle_type"},
)

// CarrierRejectionsTotal counts registrations refused for a duplicate identifier.
// Label:
//   - field: "rut" or "email"
var CarrierRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_rejections_total",
		Help:      "Total number of carrier registrations rejected, by duplicated field.",
	},
	[]string{"field"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments.
var ShipmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created.",
	},
)

// ShipmentRejectionsTotal counts shipments that could not be created.
// Label:
//   - reason: "carrier_not_found" or "capacity_exceeded"
var ShipmentRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_rejections_total",
		Help:      "Total number of shipment creations rejected, by reason.",
	},
	[]string{"reason"},
)

// StatusUpdatesTotal counts applied status updates.
// Label:
//   - status: a known shipment status, or "other" (see StatusLabel)
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of shipment status updates applied.",
	},
	[]string{"status"},
)

// TrackingCacheTotal counts tracking cache lookups.
// Label:
//   - result: "hit" or "miss"
var TrackingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_cache_total",
		Help:      "Total number of tracking projection cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsProcessedTotal counts ingested events applied to a shipment.
// Label:
//   - status: a known shipment status, or "other" (see StatusLabel)
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of tracking events successfully processed.",
	},
	[]string{"status"},
)

// EventsErrorsTotal counts events that failed processing.
// Label:
//   - reason: "tracking_not_found" or "update_failed"
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of tracking events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the number of events waiting in each worker channel.
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures dequeue-to-persistence time of one event.
// Label:
//   - outcome: "ok" or "error"
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
