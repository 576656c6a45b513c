package main

import (
	"fmt"
	"strconv"

	"github.com/helioscope-dev/axionfield"
)

// newField assembles a conversion field from the global flags. A gas
// is attached only when --gas is set.
func newField() (*axionfield.Field, error) {
	f := axionfield.New()
	f.SetMagneticField(magnetField)
	f.SetCoherenceLength(magnetBore)
	f.SetAxionEnergy(axionEnergy)

	if gasName != "" {
		gas := axionfield.NewBufferGas()
		if err := gas.SetDensity(gasName, gasDensity); err != nil {
			return nil, fmt.Errorf("failed to set up buffer gas: %v", err)
		}
		f.AssignBufferGas(gas)
	}

	return f, nil
}

func parseFloatArg(args []string, name string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument: %s", name)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", name, err)
	}
	return v, nil
}
