// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/dfluid/mdl/flamelet"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// flameletCmd looks up the thermodynamic state and source terms of a flamelet fluid
func (a *app) flameletCmd() *cobra.Command {
	var pv, h, z float64
	var user []float64
	cmd := &cobra.Command{
		Use:     "flamelet FLUID",
		Short:   "Look up temperature, transport coefficients and source terms",
		Example: "  dfluid flamelet h2.yaml --pv 0.4 --h -1e5 --y 0.01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dat, err := readFluid(args[0], inp.Flamelet)
			if err != nil {
				return err
			}
			mdl, err := a.newFlamelet(dat)
			if err != nil {
				return err
			}
			if len(user) != len(mdl.ScalarNames) {
				return chk.Err("%d user scalars %v are required; %d were given", len(mdl.ScalarNames), mdl.ScalarNames, len(user))
			}
			scalars := make([]float64, mdl.NumScalars())
			scalars[flamelet.IProgVar], scalars[flamelet.IEnth] = pv, h
			if mdl.NctrlVars == 3 {
				scalars[flamelet.IMixFrac] = z
			}
			copy(scalars[mdl.NctrlVars:], user)
			if err = mdl.SetTDStateT(0, scalars); err != nil {
				return err
			}
			if err = mdl.SetSources(scalars); err != nil {
				return err
			}
			if err = mdl.SetLookups(scalars); err != nil {
				return err
			}
			buf := new(bytes.Buffer)
			io.Ff(buf, "%-22s = %23.15e\n", "T", mdl.T)
			io.Ff(buf, "%-22s = %23.15e\n", "rho", mdl.Rho)
			io.Ff(buf, "%-22s = %23.15e\n", "Cp", mdl.Cp)
			io.Ff(buf, "%-22s = %23.15e\n", "Cv", mdl.Cv)
			io.Ff(buf, "%-22s = %23.15e\n", "mu", mdl.Mu)
			io.Ff(buf, "%-22s = %23.15e\n", "kt", mdl.Kt)
			io.Ff(buf, "%-22s = %23.15e\n", "D", mdl.Diff)
			io.Ff(buf, "%-22s = %23.15e\n", "Mw", mdl.Mw)
			io.Ff(buf, "%-22s = %23.15e\n", "source/pv", mdl.SourcePV())
			for i, name := range mdl.ScalarNames {
				io.Ff(buf, "%-22s = %23.15e\n", "source/"+name, mdl.UserSource(i, user[i]))
			}
			for i, name := range mdl.LookupNames {
				io.Ff(buf, "%-22s = %23.15e\n", name, mdl.Look[i])
			}
			io.Ff(buf, "%-22s = %v\n", "extrap", mdl.Extrap)
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().Float64Var(&pv, "pv", 0, "Progress variable")
	cmd.Flags().Float64Var(&h, "h", 0, "Total enthalpy")
	cmd.Flags().Float64Var(&z, "z", 0, "Mixture fraction (three control variables only)")
	cmd.Flags().Float64SliceVar(&user, "y", nil, "Values of user scalars")
	return cmd
}
