package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/whiteelite/narrow/internal/domain/dispatch"
	"github.com/whiteelite/narrow/internal/domain/entities"
	"github.com/whiteelite/narrow/internal/infrastructure/console"
)

// demoCmd runs every dispatch operation against built-in sample records
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every shape-dispatch demo against built-in sample records",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	reporter := console.NewReporter(cmd.OutOrStdout())

	reporter.Section("Combine (text or number)")
	reporter.Lines(dispatch.Combine(entities.Combination{A: entities.Text("1"), B: entities.Text("2")}))
	reporter.Lines(dispatch.Combine(entities.Combination{A: entities.Lift(1), B: entities.Text("2")}))
	reporter.Lines(dispatch.Combine(entities.Combination{A: entities.Lift(1), B: entities.Lift(2)}))
	reporter.Lines([]string{"Merged: " + entities.MergeStrings("Ashutosh", " Bhadoria")})

	reporter.Section("Describe person (optional capabilities)")
	reporter.Lines(dispatch.DescribePerson(entities.Person{Name: "Max"}))
	reporter.Lines(dispatch.DescribePerson(entities.Admin{
		Person:     entities.Person{Name: "Anna"},
		Privileges: []entities.Privilege{"create-server"},
	}))
	reporter.Lines(dispatch.DescribePerson(entities.Employee{
		Person:    entities.Person{Name: "Manu"},
		StartDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
	}))
	reporter.Lines(dispatch.DescribePerson(entities.ElevatedEmployee{
		Admin: entities.Admin{
			Person:     entities.Person{Name: "Lena"},
			Privileges: []entities.Privilege{"create-server", "rotate-keys"},
		},
		StartDate: time.Date(2019, time.July, 15, 0, 0, 0, 0, time.UTC),
	}))

	reporter.Section("Operate vehicle (variant identity)")
	reporter.Lines(dispatch.OperateVehicle(entities.Car{}))
	reporter.Lines(dispatch.OperateVehicle(entities.Truck{}))

	reporter.Section("Move fauna (closed tagged variants)")
	reporter.Lines(dispatch.MoveFauna(entities.Animal{RunningSpeed: entities.SpeedFromInt(20)}))
	reporter.Lines(dispatch.MoveFauna(entities.Bird{FlyingSpeed: entities.SpeedFromInt(10)}))
	if _, err := entities.ParseFauna([]byte(`{"type":"fish","swimmingSpeed":5}`)); err != nil {
		reporter.Lines([]string{"Rejected: " + err.Error()})
	}

	return nil
}
