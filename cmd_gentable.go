// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/dfluid/ana"
	"github.com/cpmech/dfluid/inp"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"
)

// gentableCmd writes the look-up table of an ideal gas
func (a *app) gentableCmd() *cobra.Command {
	var g grid
	var gas ana.IdealGas
	gas.Init()
	cmd := &cobra.Command{
		Use:   "gentable FILE",
		Short: "Write the look-up table of a calorically perfect gas",
		Long: `Writes the entropy s(rho, e) of a calorically perfect gas and its derivatives on a grid.
The format is chosen by the extension of FILE: .json, .yaml, .yml or .toml.`,
		Example: "  dfluid gentable /tmp/dfluid/air.json --nx 41 --ny 61",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := g.check(); err != nil {
				return err
			}
			rho := utl.LinSpace(g.xmin, g.xmax, g.nx)
			e := utl.LinSpace(g.ymin, g.ymax, g.ny)
			if err := inp.WriteData(args[0], gas.Table(rho, e)); err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("nrho", g.nx).Int("ne", g.ny).Msg("table written")
			return nil
		},
	}
	cmd.Flags().Float64Var(&g.xmin, "rho-min", gas.Rmin, "Minimum density")
	cmd.Flags().Float64Var(&g.xmax, "rho-max", gas.Rmax, "Maximum density")
	cmd.Flags().Float64Var(&g.ymin, "e-min", gas.Emin, "Minimum energy")
	cmd.Flags().Float64Var(&g.ymax, "e-max", gas.Emax, "Maximum energy")
	cmd.Flags().IntVar(&g.nx, "nx", 41, "Number of densities")
	cmd.Flags().IntVar(&g.ny, "ny", 61, "Number of energies")
	cmd.Flags().Float64Var(&gas.R, "gas-constant", gas.R, "Specific gas constant")
	cmd.Flags().Float64Var(&gas.Cv, "cv", gas.Cv, "Specific heat at constant volume")
	return cmd
}
