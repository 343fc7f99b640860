package entities

import "github.com/shopspring/decimal"

// CargoWeight is the weight a cargo-capable vehicle takes on.
type CargoWeight decimal.Decimal

func CargoWeightFromInt(n int64) CargoWeight {
	return CargoWeight(decimal.NewFromInt(n))
}

func (w CargoWeight) String() string {
	return decimal.Decimal(w).String()
}

// Drivable is the capability every vehicle variant shares.
type Drivable interface {
	Drive() string
}

// CargoCarrier marks the variants able to take on cargo.
type CargoCarrier interface {
	Drivable
	LoadCargo(weight CargoWeight) string
}

type Car struct{}

func (Car) Drive() string { return "Driving a car..." }

type Truck struct{}

func (Truck) Drive() string { return "Driving a truck..." }

func (Truck) LoadCargo(weight CargoWeight) string {
	return "Loading cargo: " + weight.String()
}

var (
	_ Drivable     = Car{}
	_ CargoCarrier = Truck{}
)
