package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	liftlog "github.com/claude/liftlog"
	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/fetch"
	"github.com/claude/liftlog/internal/journal"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/seed"
	"github.com/claude/liftlog/internal/summary"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	date := flag.String("date", "", "day to show, YYYY-MM-DD (default today)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	log.Info("liftlog starting", "version", Version)

	j := journal.New(journal.WithLogger(log))
	if err := populate(j, cfg); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	day := time.Now()
	if *date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			log.Error("bad -date value", "error", err)
			os.Exit(1)
		}
		day = parsed
	}

	// Read through the simulated fetch boundary, the way a presentation
	// layer would.
	fetcher := fetch.New(cfg.Fetch.Latency(), log)
	var workouts []models.Workout
	h := fetch.Read(fetcher, func() []models.Workout {
		return j.WorkoutsOn(day)
	}, func(ws []models.Workout) {
		workouts = ws
	})
	<-h.Done()

	if len(workouts) == 0 {
		log.Info("no workouts logged", "date", day.Format("2006-01-02"))
		return
	}

	history := append(j.WorkoutsForYesterday(), j.WorkoutsForPastWeek()...)
	history = append(history, workouts...)

	for _, w := range workouts {
		cat := j.CategoryInfo(w.Category)
		fmt.Printf("%s  %s  [%s %s]\n", w.Date.Format("15:04"), w.Title, cat.Name, cat.Color)
		for _, ex := range w.Exercises {
			fmt.Printf("  %s\n", ex.Name)
			for _, b := range summary.Summarize(ex) {
				fmt.Printf("    - %s\n", b.Text)
			}
			for t, st := range summary.Stats(history, ex.ID) {
				fmt.Printf("    %s: avg %.1f%s over %d entries, best %.1f%s\n",
					t, st.Average(), st.Unit, st.Count, st.Max, st.Unit)
			}
		}
	}
}

func populate(j *journal.Journal, cfg *config.Config) error {
	switch {
	case cfg.Seed.File != "":
		sd, err := journal.LoadSeedFile(cfg.Seed.File)
		if err != nil {
			return err
		}
		return j.ApplySeed(sd)
	case cfg.Seed.Demo:
		return seed.Populate(j, cfg.Seed.DemoDays, cfg.Seed.DemoSeed)
	default:
		sd, err := journal.ParseSeed(liftlog.DefaultSeed)
		if err != nil {
			return err
		}
		return j.ApplySeed(sd)
	}
}
