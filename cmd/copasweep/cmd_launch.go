package main

import (
	"github.com/spf13/cobra"

	"copasweep/internal/launcher"
	"copasweep/internal/model"
)

// addLaunchFlags registers the flags shared by every command that hands a
// batch to CopasiSE.
func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().String("copasi", "", "CopasiSE binary name or path (default from config)")
	cmd.Flags().Int("jobs", 0, "Concurrent simulator processes (default from config)")
	cmd.Flags().Bool("detach", false, "Start the batch and return without waiting")
}

// launchBatch resolves the simulator, probes its version against the
// model's and runs the prepared files through GNU parallel. A version
// mismatch or a failed probe is a warning; an unresolvable simulator is
// fatal.
func launchBatch(cmd *cobra.Command, env *runEnv, doc *model.Document, files []string) error {
	simulator := env.cfg.Simulator.Path
	if flagSim, _ := cmd.Flags().GetString("copasi"); flagSim != "" {
		simulator = flagSim
	}
	jobs := env.cfg.Simulator.Jobs
	if flagJobs, _ := cmd.Flags().GetInt("jobs"); flagJobs > 0 {
		jobs = flagJobs
	}
	detach, _ := cmd.Flags().GetBool("detach")

	resolved, err := launcher.FindSimulator(simulator)
	if err != nil {
		return fail(env.rep, doc.Path(), 1, "%v", err)
	}
	if resolved != simulator {
		env.rep.Problem(doc.Path(), "simulator %q not found, switching to %q", simulator, resolved)
	}

	ctx := cmd.Context()
	if ok, banner, err := launcher.CheckVersion(ctx, resolved, doc.Version()); err != nil {
		env.rep.Problem(doc.Path(), "%v", err)
	} else if !ok {
		env.rep.Problem(doc.Path(),
			"the version of the given CopasiSE (%s) is not the same as for the model file (%s)",
			banner, doc.Version())
	}

	env.trace.Log(map[string]any{
		"event":     "batch_started",
		"simulator": resolved,
		"jobs":      jobs,
		"files":     files,
		"detach":    detach,
	})

	res, err := launcher.Run(ctx, files, launcher.Options{
		Simulator: resolved,
		Jobs:      jobs,
		LogFile:   env.cfg.Simulator.Log,
		Detach:    detach,
	}, doc.Path())
	if err != nil {
		return fail(env.rep, doc.Path(), 1, "%v", err)
	}
	if !detach && res.ExitCode != 0 {
		env.rep.Problem(doc.Path(), "CopasiSE finished with exit code %d, see %s",
			res.ExitCode, env.cfg.Simulator.Log)
	}
	return nil
}
