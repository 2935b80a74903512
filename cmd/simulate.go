package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"glassjoke/internal/models"
	"glassjoke/internal/repository"
	"glassjoke/internal/repository/db"
	"glassjoke/internal/service"

	"github.com/spf13/cobra"
)

var (
	simDBPath string
	simTrace  bool
	simParams service.DayParams
	simSeed   uint64
	simBreak  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one day and print its summary as JSON",
	Long: `Simulate one working day with the configured defaults, overridden by flags,
and print the summary as JSON. Nothing is stored unless --db is given.

Examples:
  glassjoke simulate
  glassjoke simulate --employee "John Doe" --step 30m --seed 7
  glassjoke simulate --no-break --trace --db glassjoke.db`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	f := simulateCmd.Flags()
	f.StringVar(&simDBPath, "db", "", "Store the run and its trace in this SQLite file")
	f.BoolVar(&simTrace, "trace", false, "Print each trace event as a JSON line before the summary")
	f.StringVar(&simParams.Employee, "employee", "", "Employee name")
	f.BoolVar(&simParams.RandomName, "random-name", false, "Draw a random employee name")
	f.StringVar(&simParams.Start, "start", "", "Start of the working day (HH:MM)")
	f.StringVar(&simParams.End, "end", "", "End of the working day (HH:MM)")
	f.StringVar(&simParams.BreakStart, "break-start", "", "Start of the break (HH:MM)")
	f.BoolVar(&simBreak, "no-break", false, "Work without a break")
	f.StringVar(&simParams.Step, "step", "", "Time between ticks, e.g. 30m")
	f.StringVar(&simParams.RefillKind, "refill", "", "Liquid the intern refills with")
	f.Uint64Var(&simSeed, "seed", 0, "Random seed for thirst drift (0 = random)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repos := repository.NewMemoryRepository()
	if simDBPath != "" {
		conn, err := db.InitDB(simDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = conn.Close() }()
		repos = repository.NewRepository(conn)
	}

	params := simParams
	if cmd.Flags().Changed("no-break") {
		params.NoBreak = &simBreak
	}
	if cmd.Flags().Changed("seed") {
		params.Seed = &simSeed
	}

	out := cmd.OutOrStdout()
	var extra service.Recorder
	if simTrace {
		extra = jsonLines(out)
	}

	days := service.NewDayService(cfg, repos.RunRepo, repos.EventRepo, nil, log)
	run, err := days.Run(ctx, params, extra)
	if run.ID != "" {
		if werr := writeJSON(out, run); werr != nil {
			return werr
		}
	}
	return err
}

// jsonLines writes each event as one JSON line.
func jsonLines(w io.Writer) service.Recorder {
	enc := json.NewEncoder(w)
	return service.RecorderFunc(func(_ context.Context, e models.DayEvent) error {
		return enc.Encode(e)
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
