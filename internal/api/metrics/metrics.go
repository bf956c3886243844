// Package metrics defines and registers the custom Prometheus metrics for
// the backend-resources API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware and are not defined here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backend_resources"

// ProviderRequestsTotal counts administrative calls to the identity provider.
// Labels:
//   - operation: "create_user", "get_user", "get_user_roles", "get_user_groups"
//   - outcome:   "success" or "error"
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total number of identity provider admin API calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ProviderRequestDuration measures the round-trip time of each provider call.
// Label:
//   - operation: same values as ProviderRequestsTotal
var ProviderRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Duration of identity provider admin API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// UsersCreatedTotal counts users successfully created through this API.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created in the identity provider.",
	},
)

// AuditWriteFailuresTotal counts audit records that could not be persisted.
// Audit writes are best-effort, so this counter is the only place those
// failures are visible besides the logs.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of failed user-creation audit writes.",
	},
)
