// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/dfluid/mdl/monitor"
	"github.com/cpmech/gosl/chk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// serveCmd exposes a data-driven fluid over HTTP
func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve FLUID",
		Short: "Serve properties over HTTP",
		Long: `Serves a data-driven fluid over HTTP:
  POST /eval    {"rho": 1.2, "e": 2e5}
  POST /invert  {"pair": "PT", "a": 101325, "b": 300}
  GET  /metrics Prometheus metrics
  GET  /healthz`,
		Example: "  dfluid serve air.json --addr :8080",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dat, err := readFluid(args[0], inp.DataDriven)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			mon, err := monitor.New(reg, "dfluid", dat.Name)
			if err != nil {
				return err
			}
			mdl, err := a.newFluid(dat, mon)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           newMux(&service{mdl: mdl, log: a.log}, reg),
				ReadHeaderTimeout: 5 * time.Second,
			}
			errs := make(chan error, 1)
			go func() {
				a.log.Info().Str("addr", addr).Str("fluid", dat.Name).Msg("serving")
				errs <- srv.ListenAndServe()
			}()
			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			select {
			case err = <-errs:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return chk.Err("server failed:\n%v", err)
			case sig := <-shutdown:
				a.log.Info().Str("signal", sig.String()).Msg("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	return cmd
}

// service serializes the access to one model
type service struct {
	mu  sync.Mutex
	mdl *fluid.Model
	log zerolog.Logger
}

// evalRequest holds the input of /eval
type evalRequest struct {
	Rho float64 `json:"rho"`
	E   float64 `json:"e"`
}

// invertRequest holds the input of /invert
type invertRequest struct {
	Pair string  `json:"pair"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
}

// stateResponse holds a state; non-finite values are reported as null
type stateResponse struct {
	Rho    *float64 `json:"rho"`
	E      *float64 `json:"e"`
	S      *float64 `json:"s"`
	H      *float64 `json:"h"`
	T      *float64 `json:"T"`
	P      *float64 `json:"P"`
	C2     *float64 `json:"c2"`
	Cp     *float64 `json:"cp"`
	Cv     *float64 `json:"cv"`
	Gamma  *float64 `json:"gamma"`
	R      *float64 `json:"R"`
	Extrap bool     `json:"extrap"`
}

// invertResponse holds the output of /invert
type invertResponse struct {
	Converged bool          `json:"converged"`
	It        int           `json:"it"`
	State     stateResponse `json:"state"`
}

// finite returns a pointer to v or nil if v is not finite
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func newState(s *fluid.State) stateResponse {
	return stateResponse{
		Rho:    finite(s.Rho),
		E:      finite(s.E),
		S:      finite(s.S),
		H:      finite(s.H()),
		T:      finite(s.T),
		P:      finite(s.P),
		C2:     finite(s.C2),
		Cp:     finite(s.Cp),
		Cv:     finite(s.Cv),
		Gamma:  finite(s.Gamma),
		R:      finite(s.R),
		Extrap: s.Extrap,
	}
}

func (o *service) eval(req evalRequest) stateResponse {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mdl.SetRhoE(req.Rho, req.E)
	return newState(&o.mdl.State)
}

func (o *service) invert(req invertRequest) (res invertResponse, err error) {
	p, err := fluid.ParsePair(req.Pair)
	if err != nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	r, err := o.mdl.Invert(p, req.A, req.B)
	res = invertResponse{Converged: r.Converged, It: r.It, State: newState(&o.mdl.State)}
	return
}

// newMux returns the router of the property service
func newMux(svc *service, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/eval", func(w http.ResponseWriter, r *http.Request) {
		var req evalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, svc.eval(req))
	})

	r.Post("/invert", func(w http.ResponseWriter, r *http.Request) {
		var req invertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		res, err := svc.invert(req)
		if err != nil {
			var cerr *fluid.ConvergenceError
			if errors.As(err, &cerr) {
				svc.log.Warn().Str("request_id", middleware.GetReqID(r.Context())).Err(err).Msg("inversion failed")
				writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP)
	return r
}

// writeJSON writes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes an error message
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg, "code": status})
}
