package mapper

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/whiteelite/narrow/internal/domain/entities"
	"github.com/whiteelite/narrow/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// KindOf derives the envelope discriminant from the entity's concrete
// type.
func KindOf(entity shared.Entity) (models.Kind, error) {
	switch entity.(type) {
	case models.PersonRequest, *models.PersonRequest:
		return models.KindPerson, nil
	case models.VehicleRequest, *models.VehicleRequest:
		return models.KindVehicle, nil
	case models.FaunaRequest, *models.FaunaRequest:
		return models.KindFauna, nil
	case models.CombineRequest, *models.CombineRequest:
		return models.KindCombine, nil
	case entities.Report, *entities.Report:
		return models.KindReport, nil
	default:
		return "", fmt.Errorf("no envelope kind for %T", entity)
	}
}

func ToEnvelope(entity shared.Entity) (*models.Envelope, error) {
	kind, err := KindOf(entity)
	if err != nil {
		return nil, err
	}

	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	return &models.Envelope{
		ID:      uuid.New(),
		Kind:    kind,
		Content: string(serialized),
		Hash:    base58.Encode(serialized),
	}, nil
}

// FromEnvelope narrows the envelope to a concrete domain entity using
// the kind discriminant. Unknown kinds fail with ErrInvalidTag.
func FromEnvelope(envelope *models.Envelope) (shared.Entity, error) {
	if base58.Encode([]byte(envelope.Content)) != envelope.Hash {
		return nil, fmt.Errorf("envelope %s: content hash mismatch", envelope.ID)
	}

	switch envelope.Kind {
	case models.KindPerson:
		request, err := decodeAs[models.PersonRequest](envelope)
		if err != nil {
			return nil, err
		}
		return ToPerson(request), nil
	case models.KindVehicle:
		request, err := decodeAs[models.VehicleRequest](envelope)
		if err != nil {
			return nil, err
		}
		return ToVehicle(request)
	case models.KindFauna:
		return entities.ParseFauna([]byte(envelope.Content))
	case models.KindCombine:
		request, err := decodeAs[models.CombineRequest](envelope)
		if err != nil {
			return nil, err
		}
		return ToCombination(request)
	case models.KindReport:
		return decodeAs[entities.Report](envelope)
	default:
		return nil, fmt.Errorf("%w: envelope kind %q", entities.ErrInvalidTag, envelope.Kind)
	}
}

func decodeAs[T shared.Entity](envelope *models.Envelope) (T, error) {
	entity := new(T)
	if err := json.Unmarshal([]byte(envelope.Content), entity); err != nil {
		var zero T
		return zero, err
	}
	return *entity, nil
}

// ToPerson narrows the wire record to the variant matching the
// attributes actually present.
func ToPerson(request models.PersonRequest) entities.Named {
	person := entities.Person{Name: entities.Name(request.Name)}

	privileges := make([]entities.Privilege, 0, len(request.Privileges))
	for _, privilege := range request.Privileges {
		privileges = append(privileges, entities.Privilege(privilege))
	}

	switch {
	case request.StartDate != nil && len(privileges) > 0:
		return entities.ElevatedEmployee{
			Admin:     entities.Admin{Person: person, Privileges: privileges},
			StartDate: *request.StartDate,
		}
	case len(privileges) > 0:
		return entities.Admin{Person: person, Privileges: privileges}
	case request.StartDate != nil:
		return entities.Employee{Person: person, StartDate: *request.StartDate}
	default:
		return person
	}
}

func ToVehicle(request models.VehicleRequest) (entities.Drivable, error) {
	switch request.Variant {
	case "car":
		return entities.Car{}, nil
	case "truck":
		return entities.Truck{}, nil
	default:
		return nil, fmt.Errorf("%w: vehicle variant %q", entities.ErrInvalidTag, request.Variant)
	}
}

func ToCombination(request models.CombineRequest) (entities.Combination, error) {
	a, err := toValue(request.A)
	if err != nil {
		return entities.Combination{}, err
	}
	b, err := toValue(request.B)
	if err != nil {
		return entities.Combination{}, err
	}
	return entities.Combination{A: a, B: b}, nil
}

func toValue(operand models.CombineOperand) (entities.Value, error) {
	switch entities.ValueKind(operand.Kind) {
	case entities.ValueKindText:
		return entities.Text(operand.Text), nil
	case entities.ValueKindNumber:
		if operand.Number == nil {
			return entities.Value{}, entities.FieldErrors{"number": "required for kind \"number\""}
		}
		return entities.Number(*operand.Number), nil
	default:
		return entities.Value{}, fmt.Errorf("%w: operand kind %q", entities.ErrInvalidTag, operand.Kind)
	}
}

// ToFaunaRequest builds the wire record for a domain fauna value.
func ToFaunaRequest(fauna entities.Fauna) models.FaunaRequest {
	request := models.FaunaRequest{Type: string(fauna.Tag())}
	switch f := fauna.(type) {
	case entities.Animal:
		speed := f.RunningSpeed.Decimal()
		request.RunningSpeed = &speed
	case entities.Bird:
		speed := f.FlyingSpeed.Decimal()
		request.FlyingSpeed = &speed
	}
	return request
}
