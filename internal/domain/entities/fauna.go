package entities

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Tag discriminates the fauna variants on the wire.
type Tag string

const (
	TagAnimal Tag = "animal"
	TagBird   Tag = "bird"
)

// ErrInvalidTag reports a discriminant value outside the known set.
var ErrInvalidTag = errors.New("invalid tag")

// Speed is a fauna movement speed.
type Speed decimal.Decimal

func SpeedFromInt(n int64) Speed {
	return Speed(decimal.NewFromInt(n))
}

func (s Speed) String() string {
	return decimal.Decimal(s).String()
}

func (s Speed) Decimal() decimal.Decimal {
	return decimal.Decimal(s)
}

func (s Speed) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(s).MarshalJSON()
}

func (s *Speed) UnmarshalJSON(data []byte) error {
	return (*decimal.Decimal)(s).UnmarshalJSON(data)
}

// Fauna is a closed variant set: only Animal and Bird implement it.
// In-process dispatch is an exhaustive type switch; unknown tags can
// only appear at the decode boundary, where they fail with
// ErrInvalidTag.
type Fauna interface {
	Tag() Tag
	fauna()
}

type Animal struct {
	RunningSpeed Speed
}

func (Animal) Tag() Tag { return TagAnimal }
func (Animal) fauna()   {}

type Bird struct {
	FlyingSpeed Speed
}

func (Bird) Tag() Tag { return TagBird }
func (Bird) fauna()   {}

var (
	_ Fauna = Animal{}
	_ Fauna = Bird{}
)

// ParseFauna decodes a tagged fauna record. An unknown tag fails with
// ErrInvalidTag; a missing speed attribute for the tagged variant fails
// with FieldErrors. There is no silent default.
func ParseFauna(data []byte) (Fauna, error) {
	var raw struct {
		Type         Tag    `json:"type"`
		RunningSpeed *Speed `json:"runningSpeed"`
		FlyingSpeed  *Speed `json:"flyingSpeed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch raw.Type {
	case TagAnimal:
		if raw.RunningSpeed == nil {
			return nil, FieldErrors{"runningSpeed": "required for tag \"animal\""}
		}
		return Animal{RunningSpeed: *raw.RunningSpeed}, nil
	case TagBird:
		if raw.FlyingSpeed == nil {
			return nil, FieldErrors{"flyingSpeed": "required for tag \"bird\""}
		}
		return Bird{FlyingSpeed: *raw.FlyingSpeed}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, raw.Type)
	}
}
