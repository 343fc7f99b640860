package entities

import (
	"time"

	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

type (
	Name      string
	Privilege string
)

// Named is the one capability every person-like record carries.
type Named interface {
	GetName() Name
}

// Privileged and Tenured are the optional person capabilities.
// Presence is checked with a type assertion at the dispatch site.
type Privileged interface {
	GetPrivileges() []Privilege
}

type Tenured interface {
	GetStartDate() time.Time
}

type Person struct {
	shared.Entity

	Name Name
}

func (p Person) GetName() Name { return p.Name }

// Admin carries the privilege capability on top of Person.
type Admin struct {
	Person

	Privileges []Privilege
}

func (a Admin) GetPrivileges() []Privilege { return a.Privileges }

// Employee carries the tenure capability on top of Person.
type Employee struct {
	Person

	StartDate time.Time
}

func (e Employee) GetStartDate() time.Time { return e.StartDate }

// ElevatedEmployee carries both optional capabilities.
type ElevatedEmployee struct {
	Admin

	StartDate time.Time
}

func (e ElevatedEmployee) GetStartDate() time.Time { return e.StartDate }

var (
	_ Named      = Person{}
	_ Privileged = Admin{}
	_ Tenured    = Employee{}
	_ Privileged = ElevatedEmployee{}
	_ Tenured    = ElevatedEmployee{}
)
