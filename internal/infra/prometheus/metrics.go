package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinksCreated counts successful registrations by platform.
	LinksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deeplinkr_links_created_total",
		Help: "Number of short links registered, by platform.",
	}, []string{"platform"})

	// Redirects counts successful short-link resolutions by device class.
	Redirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deeplinkr_redirects_total",
		Help: "Number of short-link redirects served, by device.",
	}, []string{"device"})
)
