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
	"io/ioutil"
	"math"
	"os"

	"github.com/notargets/goquad/InputParameters"
	"github.com/notargets/goquad/quadrature"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the registered quadrature rules",
	Long: `
Verifies that every registered rule sums its weights to the reference
element volume and keeps its points inside the canonical frame. With an
input file, additionally resolves each requested integral against the
registry,

goquad check -F integrals.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, geom := range quadrature.Geometries() {
			for _, order := range quadrature.Orders(geom) {
				qp, err := quadrature.Rule(geom, order)
				if err == nil {
					err = auditRule(qp)
				}
				if err != nil {
					failed = true
					fmt.Printf("FAIL %s order %d: %v\n", geom, order, err)
					continue
				}
				fmt.Printf("ok   %s order %d: %d points, volume %8.6f\n", geom, order, qp.NPoint, qp.Volume)
			}
		}
		if inputFile, _ := cmd.Flags().GetString("inputFile"); len(inputFile) != 0 {
			if err := checkInputFile(inputFile); err != nil {
				failed = true
				fmt.Println(err)
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("inputFile", "F", "", "YAML file of named integrals to resolve against the registry")
}

// auditRule checks the two invariants every canonicalized rule carries:
// the weights sum to the element volume and the points lie inside the
// [0,1] reference frame.
func auditRule(qp *quadrature.QuadraturePoints) error {
	if math.Abs(qp.WeightSum()-qp.Volume) > 1.e-12*math.Abs(qp.Volume) {
		return fmt.Errorf("weight sum %v does not match volume %v", qp.WeightSum(), qp.Volume)
	}
	if qp.Coors.Min() < -1.e-14 || qp.Coors.Max() > 1+1.e-14 {
		return fmt.Errorf("coordinates [%v, %v] leave the canonical frame", qp.Coors.Min(), qp.Coors.Max())
	}
	return nil
}

func checkInputFile(inputFile string) error {
	data, err := ioutil.ReadFile(inputFile)
	if err != nil {
		return err
	}
	ip := &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		return err
	}
	ip.Print()
	for name, spec := range ip.Integrals {
		if _, _, _, err = InputParameters.ParseIntegralName(name); err != nil {
			return err
		}
		qp, used, err := quadrature.RuleAtLeast(quadrature.Geometry(spec.Geometry), spec.Order)
		if err != nil {
			return fmt.Errorf("integral %s: %v", name, err)
		}
		fmt.Printf("integral %s resolves to %s order %d, %d points\n", name, spec.Geometry, used, qp.NPoint)
	}
	return nil
}
