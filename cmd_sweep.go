// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/dfluid/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"
)

// grid holds the flags of a two-dimensional grid
type grid struct {
	xmin, xmax float64
	ymin, ymax float64
	nx, ny     int
}

// check checks the grid
func (o grid) check() error {
	if o.nx < 1 || o.ny < 1 {
		return chk.Err("number of points must be positive. nx=%d ny=%d", o.nx, o.ny)
	}
	if o.xmax < o.xmin || o.ymax < o.ymin {
		return chk.Err("ranges [%g,%g] and [%g,%g] are invalid", o.xmin, o.xmax, o.ymin, o.ymax)
	}
	return nil
}

// sweepCmd tabulates a fluid model on a grid
func (a *app) sweepCmd() *cobra.Command {
	var g grid
	var z float64
	var fnout string
	cmd := &cobra.Command{
		Use:   "sweep FLUID",
		Short: "Tabulate properties on a grid",
		Long: `Tabulates properties on a grid of control variables: (rho, e) for data-driven fluids
and (pv, h) for flamelet fluids.`,
		Example: "  dfluid sweep air.json --xmin 0.5 --xmax 2 --ymin 1.5e5 --ymax 3e5 -o /tmp/dfluid/air.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := g.check(); err != nil {
				return err
			}
			dat, err := readFluid(args[0], "")
			if err != nil {
				return err
			}
			X := utl.LinSpace(g.xmin, g.xmax, g.nx)
			Y := utl.LinSpace(g.ymin, g.ymax, g.ny)
			var buf *bytes.Buffer
			switch dat.Type {
			case inp.DataDriven:
				mdl, err := a.newFluid(dat, nil)
				if err != nil {
					return err
				}
				buf = out.Sweep(mdl, X, Y)
			case inp.Flamelet:
				mdl, err := a.newFlamelet(dat)
				if err != nil {
					return err
				}
				buf, err = out.FlameletSweep(mdl, X, Y, z)
				if err != nil {
					return err
				}
			}
			if fnout != "" {
				io.WriteFileD(filepath.Dir(fnout), filepath.Base(fnout), buf)
				a.log.Info().Str("file", fnout).Int("points", g.nx*g.ny).Msg("table written")
				return nil
			}
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().Float64Var(&g.xmin, "xmin", 0.5, "Minimum of first control variable")
	cmd.Flags().Float64Var(&g.xmax, "xmax", 2.0, "Maximum of first control variable")
	cmd.Flags().Float64Var(&g.ymin, "ymin", 1.5e5, "Minimum of second control variable")
	cmd.Flags().Float64Var(&g.ymax, "ymax", 3.0e5, "Maximum of second control variable")
	cmd.Flags().IntVar(&g.nx, "nx", 4, "Number of points along first control variable")
	cmd.Flags().IntVar(&g.ny, "ny", 4, "Number of points along second control variable")
	cmd.Flags().Float64Var(&z, "z", 0, "Mixture fraction (flamelet with three control variables)")
	cmd.Flags().StringVarP(&fnout, "output", "o", "", "Output file; default is standard output")
	return cmd
}

// checkCmd runs round trips at random states
func (a *app) checkCmd() *cobra.Command {
	var g grid
	var seed, npts int
	var tol float64
	cmd := &cobra.Command{
		Use:     "check FLUID",
		Short:   "Check inversions with round trips at random states",
		Example: "  dfluid check air.json --n 20 --seed 1234",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if npts < 1 {
				return chk.Err("number of points must be positive. n=%d", npts)
			}
			if err := g.check(); err != nil {
				return err
			}
			dat, err := readFluid(args[0], inp.DataDriven)
			if err != nil {
				return err
			}
			mdl, err := a.newFluid(dat, nil)
			if err != nil {
				return err
			}
			rnd.Init(seed)
			rho := make([]float64, npts)
			e := make([]float64, npts)
			for i := 0; i < npts; i++ {
				rho[i] = rnd.Float64(g.xmin, g.xmax)
				e[i] = rnd.Float64(g.ymin, g.ymax)
			}
			var drv fluid.Driver
			if err = drv.Init(mdl); err != nil {
				return err
			}
			drv.Tol = tol
			if err = drv.Run(rho, e); err != nil {
				return err
			}
			failed := drv.Failed()
			buf := new(bytes.Buffer)
			io.Ff(buf, "%6s%15s%15s%12s%12s%6s%10s\n", "pair", "rho", "e", "err_rho", "err_e", "it", "converged")
			for _, r := range failed {
				io.Ff(buf, "%6s%15.6e%15.6e%12.3e%12.3e%6d%10v\n", r.Pair, r.Rho, r.E, r.RhoErr, r.EErr, r.Res.It, r.Res.Converged)
			}
			io.Ff(buf, "%d of %d round trips passed\n", len(drv.Res)-len(failed), len(drv.Res))
			if _, err = buf.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			if len(failed) > 0 {
				return chk.Err("%d round trips failed", len(failed))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&g.xmin, "rho-min", 0.8, "Minimum density")
	cmd.Flags().Float64Var(&g.xmax, "rho-max", 1.6, "Maximum density")
	cmd.Flags().Float64Var(&g.ymin, "e-min", 1.7e5, "Minimum energy")
	cmd.Flags().Float64Var(&g.ymax, "e-max", 2.4e5, "Maximum energy")
	cmd.Flags().IntVar(&npts, "n", 10, "Number of random states")
	cmd.Flags().IntVar(&seed, "seed", 1234, "Seed of random numbers generator")
	cmd.Flags().Float64Var(&tol, "tol", 1e-2, "Tolerance on relative errors")
	g.nx, g.ny = 1, 1
	return cmd
}
