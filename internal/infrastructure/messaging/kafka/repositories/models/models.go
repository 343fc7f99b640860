package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates which request shape an envelope carries.
type Kind string

const (
	KindPerson  Kind = "person"
	KindVehicle Kind = "vehicle"
	KindFauna   Kind = "fauna"
	KindCombine Kind = "combine"
	KindReport  Kind = "report"
)

// Envelope is the wire form of every message: the kind discriminant,
// the serialized payload and a base58 integrity hash of it.
type Envelope struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Content string    `json:"content"`
	Hash    string    `json:"hash"`
}

// Requests travel as the wire structs below; reports travel as the
// domain Report entity.

type PersonRequest struct {
	Name       string     `json:"name"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	Privileges []string   `json:"privileges,omitempty"`
}

type VehicleRequest struct {
	Variant string `json:"variant"`
}

type FaunaRequest struct {
	Type         string           `json:"type"`
	RunningSpeed *decimal.Decimal `json:"runningSpeed,omitempty"`
	FlyingSpeed  *decimal.Decimal `json:"flyingSpeed,omitempty"`
}

type CombineOperand struct {
	Kind   string           `json:"kind"`
	Text   string           `json:"text,omitempty"`
	Number *decimal.Decimal `json:"number,omitempty"`
}

type CombineRequest struct {
	A CombineOperand `json:"a"`
	B CombineOperand `json:"b"`
}
