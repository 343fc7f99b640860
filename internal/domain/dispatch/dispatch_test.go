package dispatch_test

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/whiteelite/narrow/internal/domain/dispatch"
	"github.com/whiteelite/narrow/internal/domain/entities"
)

func hasLineWith(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestDescribePerson_PrivilegesOnly(t *testing.T) {
	t.Parallel()

	lines := dispatch.DescribePerson(entities.Admin{
		Person:     entities.Person{Name: "A"},
		Privileges: []entities.Privilege{"p"},
	})

	if lines[0] != "Name: A" {
		t.Errorf("first line: got %q", lines[0])
	}
	if !hasLineWith(lines, "Privilege: p") {
		t.Errorf("privileges missing: %v", lines)
	}
	if hasLineWith(lines, "Start Date") {
		t.Errorf("start date must be omitted: %v", lines)
	}
}

func TestDescribePerson_StartDateOnly(t *testing.T) {
	t.Parallel()

	lines := dispatch.DescribePerson(entities.Employee{
		Person:    entities.Person{Name: "A"},
		StartDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
	})

	if !hasLineWith(lines, "Start Date: 2021-03-01") {
		t.Errorf("start date missing: %v", lines)
	}
	if hasLineWith(lines, "Privilege") {
		t.Errorf("privileges must be omitted: %v", lines)
	}
}

func TestDescribePerson_BothCapabilities(t *testing.T) {
	t.Parallel()

	lines := dispatch.DescribePerson(entities.ElevatedEmployee{
		Admin: entities.Admin{
			Person:     entities.Person{Name: "A"},
			Privileges: []entities.Privilege{"p"},
		},
		StartDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
	})

	if !hasLineWith(lines, "Start Date: 2021-03-01") || !hasLineWith(lines, "Privilege: p") {
		t.Errorf("both capability lines expected: %v", lines)
	}
}

func TestDescribePerson_BaseRecord(t *testing.T) {
	t.Parallel()

	lines := dispatch.DescribePerson(entities.Person{Name: "A"})
	if len(lines) != 1 || lines[0] != "Name: A" {
		t.Fatalf("got %v", lines)
	}
}

func TestOperateVehicle(t *testing.T) {
	t.Parallel()

	lines := dispatch.OperateVehicle(entities.Truck{})
	want := []string{"Driving a truck...", "Loading cargo: 420"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("truck: got %v, want %v", lines, want)
	}

	lines = dispatch.OperateVehicle(entities.Car{})
	if len(lines) != 1 || lines[0] != "Driving a car..." {
		t.Errorf("car: got %v", lines)
	}
	if hasLineWith(lines, "cargo") {
		t.Errorf("car must not load cargo: %v", lines)
	}
}

func TestMoveFauna(t *testing.T) {
	t.Parallel()

	lines := dispatch.MoveFauna(entities.Animal{RunningSpeed: entities.SpeedFromInt(20)})
	if len(lines) != 1 || lines[0] != "Moving at speed: 20" {
		t.Errorf("animal: got %v", lines)
	}

	lines = dispatch.MoveFauna(entities.Bird{FlyingSpeed: entities.SpeedFromInt(10)})
	if len(lines) != 1 || lines[0] != "Moving at speed: 10" {
		t.Errorf("bird: got %v", lines)
	}
}

func TestService_Dispatch(t *testing.T) {
	t.Parallel()

	service := dispatch.NewService()
	ctx := context.Background()

	cases := []struct {
		name    string
		request any
		want    string
	}{
		{"fauna", entities.Animal{RunningSpeed: entities.SpeedFromInt(20)}, "Moving at speed: 20"},
		{"combination", entities.Combination{A: entities.Lift(1), B: entities.Text("2")}, "Combined: 12"},
		{"vehicle", entities.Truck{}, "Driving a truck..."},
		{"person", entities.Person{Name: "A"}, "Name: A"},
	}

	for _, tc := range cases {
		lines, err := service.Dispatch(ctx, tc.request)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if lines[0] != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, lines[0], tc.want)
		}
	}
}

func TestService_Dispatch_Unsupported(t *testing.T) {
	t.Parallel()

	service := dispatch.NewService()
	if _, err := service.Dispatch(context.Background(), "not a shape"); err == nil {
		t.Fatal("expected error for unsupported request type")
	}
}

func TestService_Dispatch_Idempotent(t *testing.T) {
	t.Parallel()

	service := dispatch.NewService()
	request := entities.Bird{FlyingSpeed: entities.SpeedFromInt(10)}

	first, err := service.Dispatch(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}
	second, err := service.Dispatch(context.Background(), request)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different output: %v vs %v", first, second)
	}
}
