package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title     string                  `yaml:"Title"`
	Integrals map[string]IntegralSpec `yaml:"Integrals"` // Key is the integral name, e.g. gauss_o2_d2
}

// IntegralSpec selects a quadrature table entry for a named integral
type IntegralSpec struct {
	Geometry string `yaml:"Geometry"`
	Order    int    `yaml:"Order"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	keys := make([]string, len(ip.Integrals))
	i := 0
	for k := range ip.Integrals {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		spec := ip.Integrals[key]
		fmt.Printf("Integrals[%s] = geometry %s, order %d\n", key, spec.Geometry, spec.Order)
	}
}

// ParseIntegralName splits an integral name of the form
// <family>_o<order>_d<dimension>, e.g. gauss_o2_d2. The family is an
// arbitrary user-chosen label.
func ParseIntegralName(name string) (family string, order, dim int, err error) {
	tokens := strings.Split(name, "_")
	if len(tokens) < 3 {
		err = fmt.Errorf("malformed integral name %q, expected <family>_o<order>_d<dim>", name)
		return
	}
	oTok := tokens[len(tokens)-2]
	dTok := tokens[len(tokens)-1]
	if _, err = fmt.Sscanf(oTok, "o%d", &order); err != nil {
		err = fmt.Errorf("malformed order token %q in integral name %q", oTok, name)
		return
	}
	if _, err = fmt.Sscanf(dTok, "d%d", &dim); err != nil {
		err = fmt.Errorf("malformed dimension token %q in integral name %q", dTok, name)
		return
	}
	family = strings.Join(tokens[:len(tokens)-2], "_")
	if len(family) == 0 {
		err = fmt.Errorf("empty family in integral name %q", name)
		return
	}
	return
}
