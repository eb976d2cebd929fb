package main

import (
	"fmt"
	"os"

	"renocost/pkg/core/catalog"
	"renocost/pkg/core/cost"
	"renocost/pkg/core/geometry"
	"renocost/pkg/core/project"
	"renocost/pkg/core/workcfg"
)

// Logger helper
func logStep(step string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	logStep("1. Build a sample project")

	proj := project.New()
	kitchen := proj.AddRoom(geometry.RoomKitchen)
	bathroom := proj.AddRoom(geometry.RoomBathroom)
	fmt.Printf("Rooms: %d (kitchen %.1f m2, bathroom %.1f m2)\n",
		len(proj.Rooms()), kitchen.Computed.FloorArea, bathroom.Computed.FloorArea)

	length, width := 4.5, 3.2
	if _, err := proj.UpdateRoomDimensions(kitchen.ID, geometry.DimensionPatch{Length: &length, Width: &width}); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	on := true
	radiators := 5
	proj.SetDemolition(true)
	proj.MergeHeating(workcfg.HeatingPatch{Enabled: &on, Radiators: &radiators})

	logStep("2. Calculate estimates per quality tier")

	cat := catalog.NewStatic()
	for _, tier := range []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium} {
		proj.SetQuality(tier)
		result, err := proj.Estimate(cat)
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%-8s  labor %10.2f  materials %10.2f  total %10.2f  (%.0f - %.0f)\n",
			tier, result.TotalLabor, result.TotalMaterials, result.GrandTotal,
			result.LowEstimate, result.HighEstimate)
	}

	logStep("3. Breakdown views (standard tier)")

	proj.SetQuality(workcfg.QualityStandard)
	result, err := proj.Estimate(cat)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	printBreakdowns(result)
}

func printBreakdowns(result cost.CalculationResult) {
	fmt.Println("By room:")
	for _, rb := range result.ByRoom {
		fmt.Printf("  %-14s %10.2f\n", rb.RoomName, rb.Subtotal)
	}
	fmt.Println("By category:")
	for _, cb := range result.ByCategory {
		fmt.Printf("  %-14s %10.2f\n", cb.Category, cb.Subtotal)
	}
	fmt.Printf("Grand total: %.2f\n", result.GrandTotal)
}
