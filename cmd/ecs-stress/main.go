package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/amyinorbit/pd-ecs/ecs"
)

//go:generate go run ./gen -components 24 -systems 32 -out components_gen.go

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	capacity := flag.Int("capacity", 4096, "The registry's entity capacity.")
	entityCount := flag.Int("entities", 4096, "The initial number of entities to create.")
	profileMode := flag.String("profile", "", "Write a profile: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown -profile mode %q (want cpu or mem)", *profileMode)
	}

	if *entityCount > *capacity {
		log.Fatalf("-entities %d exceeds -capacity %d; the registry never grows", *entityCount, *capacity)
	}

	log.Println("Starting ECS stress test...")

	// 1. Set up the registry with the generated component and system tables.
	world := ecs.New(ecs.Config{
		MaxEntities:   *capacity,
		MaxComponents: stressComponentCount,
		MaxSystems:    stressSystemCount,
	})
	ids := DeclareStressComponents(world)
	RegisterStressSystems(world, ids)

	// 2. Populate with entities carrying 1 to 5 random components.
	log.Printf("Populating registry with %d entities...\n", *entityCount)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < *entityCount; i++ {
		SpawnStressEntity(world, ids, rng)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop.
	report := &Report{
		Duration:       *duration,
		Capacity:       *capacity,
		Entities:       *entityCount,
		Components:     stressComponentCount,
		Systems:        stressSystemCount,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	startTime := time.Now()
	var totalTicks int64

	for time.Since(startTime) < *duration {
		tickStart := time.Now()
		world.Tick()
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		totalTicks++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate the report to the console.
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
