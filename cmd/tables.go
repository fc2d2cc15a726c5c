/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/notargets/goquad/quadrature"
	"github.com/spf13/cobra"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the quadrature rule for a geometry and order",
	Long: `
Prints the canonicalized points, weights and volume of the tabulated rule
for a reference element geometry code and polynomial order,

goquad tables -g 3_4 -o 3`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			qp   *quadrature.QuadraturePoints
			used int
			err  error
		)
		geom, _ := cmd.Flags().GetString("geometry")
		order, _ := cmd.Flags().GetInt("order")
		atLeast, _ := cmd.Flags().GetBool("atLeast")
		if atLeast {
			qp, used, err = quadrature.RuleAtLeast(quadrature.Geometry(geom), order)
		} else {
			qp, err = quadrature.Rule(quadrature.Geometry(geom), order)
			used = order
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		printRule(quadrature.Geometry(geom), used, qp)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringP("geometry", "g", string(quadrature.Line1_2), "reference element geometry code, e.g. 2_3")
	tablesCmd.Flags().IntP("order", "o", 1, "polynomial order")
	tablesCmd.Flags().Bool("atLeast", false, "use the nearest tabulated order >= the requested order")
}

func printRule(geom quadrature.Geometry, order int, qp *quadrature.QuadraturePoints) {
	fmt.Printf("[%s]\t\t\t= Geometry\n", geom)
	fmt.Printf("[%d]\t\t\t= Order\n", order)
	fmt.Printf("[%d]\t\t\t= NPoint\n", qp.NPoint)
	fmt.Printf("[%d]\t\t\t= Dim\n", qp.Dim)
	fmt.Printf("%8.6f\t\t= Volume\n", qp.Volume)
	for i := 0; i < qp.NPoint; i++ {
		for j := 0; j < qp.Dim; j++ {
			fmt.Printf("%20.15f ", qp.Coors.At(i, j))
		}
		fmt.Printf("| %20.15f\n", qp.Weights.AtVec(i))
	}
}
