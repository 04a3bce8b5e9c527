package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TemplatesSeededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoptalk_templates_seeded_total",
		Help: "Template seeding outcomes by action (inserted, updated, error).",
	}, []string{"action"})

	ClientsProvisionedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shoptalk_clients_provisioned_total",
		Help: "Provisioning bundles built and persisted.",
	})

	TemplateValidationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shoptalk_template_validation_failures_total",
		Help: "Templates that failed the structural pre-flight check.",
	})
)
