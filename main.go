// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/flamelet"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/dfluid/mdl/monitor"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// run command
	if err := buildRootCmd().Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// app holds settings shared by all commands
type app struct {
	logLevel string         // zerolog level
	strict   bool           // inversions return errors when they do not converge
	showR    bool           // show residuals of inversions
	log      zerolog.Logger // logger
}

// buildRootCmd constructs the command tree
func buildRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "dfluid",
		Short:         "Data-driven fluid properties",
		Long:          "dfluid evaluates and inverts fluid models whose properties are given by manifolds (MLP or look-up tables).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug|info|warn|error|disabled")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "Fail when an inversion does not converge")
	root.PersistentFlags().BoolVar(&a.showR, "show-residuals", false, "Print residuals of Newton iterations")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
		if err != nil {
			return chk.Err("log level %q is invalid", a.logLevel)
		}
		a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).Level(lvl).With().Timestamp().Logger()
		return nil
	}
	root.AddCommand(
		a.evalCmd(),
		a.invertCmd(),
		a.flameletCmd(),
		a.sweepCmd(),
		a.checkCmd(),
		a.gentableCmd(),
		a.serveCmd(),
	)
	return root
}

// readFluid reads a fluid description and checks its type
func readFluid(fn, kind string) (dat *inp.FluidData, err error) {
	dat, err = inp.ReadFluid(fn)
	if err != nil {
		return
	}
	if kind != "" && dat.Type != kind {
		return nil, chk.Err("fluid %q in %q has type %q; %q is required", dat.Name, fn, dat.Type, kind)
	}
	return
}

// newFluid allocates a data-driven model with the settings of the command line
//  mon -- may be nil
func (a *app) newFluid(dat *inp.FluidData, mon *monitor.Metrics) (mdl *fluid.Model, err error) {
	mdl, err = fluid.New(dat)
	if err != nil {
		return
	}
	mdl.Strict = mdl.Strict || a.strict
	mdl.ShowR = mdl.ShowR || a.showR
	mdl.Log = a.log.With().Str("fluid", dat.Name).Logger()
	mdl.Mon = mon
	return
}

// newFlamelet allocates a flamelet model with the settings of the command line
func (a *app) newFlamelet(dat *inp.FluidData) (mdl *flamelet.Model, err error) {
	mdl, err = flamelet.New(dat)
	if err != nil {
		return
	}
	mdl.Log = a.log.With().Str("fluid", dat.Name).Logger()
	return
}

// printState writes the state of a data-driven model
func printState(buf *bytes.Buffer, s *fluid.State) {
	io.Ff(buf, "%-8s = %23.15e\n", "rho", s.Rho)
	io.Ff(buf, "%-8s = %23.15e\n", "e", s.E)
	io.Ff(buf, "%-8s = %23.15e\n", "s", s.S)
	io.Ff(buf, "%-8s = %23.15e\n", "h", s.H())
	io.Ff(buf, "%-8s = %23.15e\n", "T", s.T)
	io.Ff(buf, "%-8s = %23.15e\n", "P", s.P)
	io.Ff(buf, "%-8s = %23.15e\n", "c2", s.C2)
	io.Ff(buf, "%-8s = %23.15e\n", "Cp", s.Cp)
	io.Ff(buf, "%-8s = %23.15e\n", "Cv", s.Cv)
	io.Ff(buf, "%-8s = %23.15e\n", "gamma", s.Gamma)
	io.Ff(buf, "%-8s = %23.15e\n", "R", s.R)
	io.Ff(buf, "%-8s = %23.15e\n", "dTde", s.DTDe)
	io.Ff(buf, "%-8s = %23.15e\n", "dPde", s.DPDe)
	io.Ff(buf, "%-8s = %23.15e\n", "dPdrho", s.DPDrho)
	io.Ff(buf, "%-8s = %v\n", "extrap", s.Extrap)
}
