package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/whiteelite/narrow/internal/domain/entities"
	"github.com/whiteelite/narrow/internal/domain/repositories"
	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// DefaultCargoWeight is the fixed demo weight trucks load.
var DefaultCargoWeight = entities.CargoWeightFromInt(420)

// DescribePerson reports the name line, then one line per optional
// capability the record actually carries. Narrowing is by type
// assertion, so a record with both capabilities reports both lines.
func DescribePerson(record entities.Named) []string {
	lines := []string{"Name: " + string(record.GetName())}
	if tenured, ok := record.(entities.Tenured); ok {
		lines = append(lines, "Start Date: "+tenured.GetStartDate().Format(time.DateOnly))
	}
	if privileged, ok := record.(entities.Privileged); ok {
		for _, privilege := range privileged.GetPrivileges() {
			lines = append(lines, "Privilege: "+string(privilege))
		}
	}
	return lines
}

// OperateVehicle always drives. Cargo is loaded only for the concrete
// cargo-capable variant, by identity rather than capability probing.
func OperateVehicle(vehicle entities.Drivable) []string {
	lines := []string{vehicle.Drive()}
	if truck, ok := vehicle.(entities.Truck); ok {
		lines = append(lines, truck.LoadCargo(DefaultCargoWeight))
	}
	return lines
}

// MoveFauna selects the speed attribute by variant. The switch is
// exhaustive over the closed Fauna set.
func MoveFauna(record entities.Fauna) []string {
	var speed entities.Speed
	switch fauna := record.(type) {
	case entities.Animal:
		speed = fauna.RunningSpeed
	case entities.Bird:
		speed = fauna.FlyingSpeed
	}
	return []string{"Moving at speed: " + speed.String()}
}

// Combine reports the merge of two union values.
func Combine(request entities.Combination) []string {
	return []string{"Combined: " + entities.Combine(request.A, request.B).String()}
}

// Service implements repositories.Dispatcher over the domain shapes.
type Service struct{}

func NewService() Service { return Service{} }

func (Service) Dispatch(_ context.Context, request shared.Entity) ([]string, error) {
	switch req := request.(type) {
	case entities.Fauna:
		return MoveFauna(req), nil
	case entities.Combination:
		return Combine(req), nil
	case entities.Drivable:
		return OperateVehicle(req), nil
	case entities.Named:
		return DescribePerson(req), nil
	default:
		return nil, fmt.Errorf("unsupported request type %T", request)
	}
}

var _ repositories.Dispatcher = Service{}
