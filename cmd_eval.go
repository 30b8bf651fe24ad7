// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/fluid"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// evalCmd computes the state at given density and energy
func (a *app) evalCmd() *cobra.Command {
	var rho, e float64
	cmd := &cobra.Command{
		Use:     "eval FLUID",
		Short:   "Compute the state from density and energy",
		Example: "  dfluid eval air.json --rho 1.2 --e 2e5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dat, err := readFluid(args[0], inp.DataDriven)
			if err != nil {
				return err
			}
			mdl, err := a.newFluid(dat, nil)
			if err != nil {
				return err
			}
			mdl.SetRhoE(rho, e)
			buf := new(bytes.Buffer)
			printState(buf, &mdl.State)
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().Float64Var(&rho, "rho", 1.2, "Density")
	cmd.Flags().Float64Var(&e, "e", 2e5, "Static energy")
	return cmd
}

// invertCmd computes the state from a pair of thermodynamic variables
func (a *app) invertCmd() *cobra.Command {
	var pair string
	var va, vb float64
	cmd := &cobra.Command{
		Use:   "invert FLUID",
		Short: "Compute the state from a pair of thermodynamic variables",
		Long: `Computes the state from a pair of targets with Newton's method.
Pairs (--a, --b): PT (P, T), Prho (P, rho), rhoT (rho, T), hs (h, s) and Ps (P, s).`,
		Example: "  dfluid invert air.json --pair PT --a 101325 --b 300",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := fluid.ParsePair(pair)
			if err != nil {
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
			res, err := mdl.Invert(p, va, vb)
			if err != nil {
				return err
			}
			buf := new(bytes.Buffer)
			io.Ff(buf, "%-8s = %v\n", "pair", p)
			io.Ff(buf, "%-8s = %v\n", "conv", res.Converged)
			io.Ff(buf, "%-8s = %d\n", "it", res.It)
			io.Ff(buf, "%-8s = %g, %g\n", "res", res.Res[0], res.Res[1])
			printState(buf, &mdl.State)
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&pair, "pair", "PT", "Pair of targets: PT|Prho|rhoT|hs|Ps")
	cmd.Flags().Float64Var(&va, "a", 101325, "First target")
	cmd.Flags().Float64Var(&vb, "b", 300, "Second target")
	return cmd
}
