// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package monitor implements counters of property evaluations exported to Prometheus
package monitor

import (
	"github.com/cpmech/gosl/chk"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds counters of one fluid model
//  Note: all methods accept a nil receiver, in which case nothing is recorded
type Metrics struct {
	inversions     *prometheus.CounterVec   // number of inversions by solver and status
	iterations     *prometheus.HistogramVec // number of Newton iterations by solver
	extrapolations *prometheus.CounterVec   // number of extrapolated manifold evaluations by group
}

// New allocates metrics and registers them
//  namespace -- e.g. "dfluid"
//  fluid     -- name of fluid model; added as constant label
func New(reg prometheus.Registerer, namespace, fluid string) (o *Metrics, err error) {
	labels := prometheus.Labels{"fluid": fluid}
	o = &Metrics{
		inversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "inversion",
				Name:        "total",
				Help:        "Total number of state inversions",
				ConstLabels: labels,
			},
			[]string{"solver", "status"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "inversion",
				Name:        "iterations",
				Help:        "Number of Newton iterations per inversion",
				ConstLabels: labels,
				Buckets:     []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1000},
			},
			[]string{"solver"},
		),
		extrapolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "manifold",
				Name:        "extrapolations_total",
				Help:        "Total number of manifold evaluations outside the data domain",
				ConstLabels: labels,
			},
			[]string{"group"},
		),
	}
	for _, c := range []prometheus.Collector{o.inversions, o.iterations, o.extrapolations} {
		if err = reg.Register(c); err != nil {
			return nil, chk.Err("monitor: cannot register metrics of fluid %q:\n%v", fluid, err)
		}
	}
	return
}

// Inversion records the outcome of one inversion
func (o *Metrics) Inversion(solver string, converged bool, it int) {
	if o == nil {
		return
	}
	status := "converged"
	if !converged {
		status = "capped"
	}
	o.inversions.WithLabelValues(solver, status).Inc()
	o.iterations.WithLabelValues(solver).Observe(float64(it))
}

// Extrapolated records one manifold evaluation outside the data domain
func (o *Metrics) Extrapolated(group string) {
	if o == nil {
		return
	}
	o.extrapolations.WithLabelValues(group).Inc()
}
