package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/itohio/EasyCNC/pkg/config"
	"github.com/itohio/EasyCNC/pkg/core/math/vec"
	"github.com/itohio/EasyCNC/pkg/motion"
	"github.com/itohio/EasyCNC/pkg/toolpath"
)

var (
	settingsFile = flag.String("settings", "", "Machine settings file (yaml); stock machine when empty")
	pathFile     = flag.String("job", "", "Toolpath job file (yaml); built-in demo square when empty")
	startX       = flag.Float64("x", 0, "Starting x position")
	startY       = flag.Float64("y", 0, "Starting y position")
	samplePeriod = flag.Float64("sample", 0, "Print tool positions every N seconds; 0 disables sampling")
)

func main() {
	flag.Parse()

	settings := config.Default()
	if *settingsFile != "" {
		var err error
		settings, err = config.Load(*settingsFile)
		if err != nil {
			slog.Error("Failed to load settings", "path", *settingsFile, "error", err)
			os.Exit(1)
		}
	}

	job := demoJob()
	if *pathFile != "" {
		var err error
		job, err = toolpath.Load(*pathFile)
		if err != nil {
			slog.Error("Failed to load toolpath", "path", *pathFile, "error", err)
			os.Exit(1)
		}
	}

	limits := settings.Limits()
	waypoints, err := job.Build(limits)
	if err != nil {
		slog.Error("Failed to build waypoints", "error", err)
		os.Exit(1)
	}

	start := vec.New(float32(*startX), float32(*startY))
	profile, err := motion.Plan(waypoints, limits, start)
	if err != nil {
		slog.Error("Planning failed", "error", err)
		os.Exit(1)
	}

	printProfile(profile)

	if *samplePeriod > 0 {
		samplePositions(profile, float32(*samplePeriod))
	}
}

func printProfile(p motion.Profile) {
	fmt.Printf("%4s  %20s  %20s  %9s  %10s  %9s\n",
		"#", "from", "to", "speed", "accel", "t")
	for i, sp := range p.Points {
		fmt.Printf("%4d  (%8.2f,%8.2f)  (%8.2f,%8.2f)  %9.2f  %10.1f  %9.4f\n",
			i,
			sp.Start.X(), sp.Start.Y(),
			sp.Target.X(), sp.Target.Y(),
			sp.Speed, sp.Accel, sp.Time)
	}
	fmt.Printf("\ntotal: %.2f units in %.3f s\n", p.TotalDistance(), p.TotalTime())
	if len(p.DegradedAt) > 0 {
		fmt.Printf("warning: requested speeds unreachable at waypoints %v\n", p.DegradedAt)
	}
}

func samplePositions(p motion.Profile, period float32) {
	fmt.Println()
	total := p.TotalTime()
	for t := float32(0); t < total+period; t += period {
		pos := p.PositionAt(t)
		fmt.Printf("t=%8.3f  (%8.2f,%8.2f)\n", t, pos.X(), pos.Y())
	}
}

// demoJob traces the 600x600 demo square: travel to the corner, cut around.
func demoJob() toolpath.Path {
	return toolpath.Path{}.
		Travel(100, 100).
		CutTo(100, 700).
		CutTo(700, 700).
		CutTo(700, 100).
		CutTo(100, 100)
}
