package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge/catalog"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/config"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/gradient"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/mitigation"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/store"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/tui"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/viz"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/vqe"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	noiseP     float64
	scales     []int
	lr         float64
	steps      int
	theta0     float64
	params     []float64
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qcamp",
		Short: "quantum coding-challenge lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [challenge]",
		Short: "grade one challenge",
		Args:  cobra.ExactArgs(1),
		RunE:  runChallenge,
	}
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing a run record")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "grade every challenge",
		RunE:  checkAll,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := catalog.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tTOLERANCE\tCASES")
			for _, name := range registry.List() {
				ch, err := registry.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%.0e\t%d\n", ch.Name(), ch.Title(), ch.Tolerance(), len(ch.Cases()))
			}
			return w.Flush()
		},
	}

	describeCmd := &cobra.Command{
		Use:   "describe [challenge]",
		Short: "show a challenge's cases",
		Args:  cobra.ExactArgs(1),
		RunE:  describeChallenge,
	}

	gradCmd := &cobra.Command{
		Use:   "grad",
		Short: "parameter-shift gradient of the controlled-rotation circuit",
		RunE:  runGrad,
	}
	gradCmd.Flags().Float64SliceVar(&params, "params", []float64{1.23, 0.6}, "circuit angles")

	fidelityCmd := &cobra.Command{
		Use:   "fidelity",
		Short: "sweep Bell-pair fidelity against depolarizing strength",
		RunE:  runFidelity,
	}

	zneCmd := &cobra.Command{
		Use:   "zne",
		Short: "error-mitigated vqe with zero-noise extrapolation",
		RunE:  runZNE,
	}
	addKnobFlags(zneCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the vqe optimizer converge",
		RunE:  runLive,
	}
	addKnobFlags(liveCmd)

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored run records",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a stored run record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New(dataDir)
			rec, err := st.Load(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list noise presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-10s p=%.3f scales=%v\n", p, cfg.Noise.P, cfg.ZNE.ScaleFactors)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd, listCmd, describeCmd, gradCmd, fidelityCmd,
		zneCmd, liveCmd, runsCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKnobFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&noiseP, "p", config.DefaultNoise, "depolarizing strength per gate wire")
	cmd.Flags().IntSliceVar(&scales, "scales", []int{1, 3, 5}, "fold scale factors (odd)")
	cmd.Flags().Float64Var(&lr, "lr", config.DefaultLearningRate, "optimizer learning rate")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "optimizer steps")
	cmd.Flags().Float64Var(&theta0, "theta0", 0, "initial ansatz angle")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "noise preset")
}

// resolveConfig layers preset < config file < explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("p") {
		cfg.Noise.P = noiseP
	}
	if cmd.Flags().Changed("scales") {
		cfg.ZNE.ScaleFactors = scales
	}
	if cmd.Flags().Changed("lr") {
		cfg.Optimizer.LearningRate = lr
	}
	if cmd.Flags().Changed("steps") {
		cfg.Optimizer.Steps = steps
	}
	if cmd.Flags().Changed("theta0") {
		cfg.Optimizer.Theta0 = theta0
	}
	return cfg, nil
}

func runChallenge(cmd *cobra.Command, args []string) error {
	registry := catalog.NewRegistry()
	ch, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render(ch.Title()))

	start := time.Now()
	outcomes := challenge.RunAll(ch)
	elapsed := time.Since(start)

	allPassed := true
	for _, o := range outcomes {
		fmt.Printf("case %d: %s\n", o.Case+1, viz.RenderVerdict(o.Verdict))
		if o.Verdict != challenge.Correct {
			allPassed = false
			fmt.Println(viz.SubtleStyle.Render("  expected: " + compactJSON(o.Want)))
			if o.Got != "" {
				fmt.Println(viz.SubtleStyle.Render("  got:      " + compactJSON(o.Got)))
			}
			if o.Err != nil {
				fmt.Println(viz.SubtleStyle.Render("  error:    " + o.Err.Error()))
			}
		}
	}
	log.Debug("challenge graded", "challenge", ch.Name(), "elapsed", elapsed)

	if !noSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(toRecord(ch.Name(), outcomes, elapsed, allPassed))
		if err != nil {
			return err
		}
		fmt.Println(viz.SubtleStyle.Render("run id: " + id))
	}
	return nil
}

func checkAll(cmd *cobra.Command, args []string) error {
	registry := catalog.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHALLENGE\tCASES\tVERDICT\tTIME")

	failures := 0
	for _, name := range registry.List() {
		ch, err := registry.Get(name)
		if err != nil {
			return err
		}
		start := time.Now()
		outcomes := challenge.RunAll(ch)
		elapsed := time.Since(start)

		verdict := challenge.Correct
		for _, o := range outcomes {
			if o.Verdict != challenge.Correct {
				verdict = o.Verdict
				failures++
				break
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%v\n", name, len(outcomes), verdict, elapsed.Round(time.Millisecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d challenge(s) failing", failures)
	}
	fmt.Println(viz.TitleStyle.Render("all challenges passing"))
	return nil
}

func describeChallenge(cmd *cobra.Command, args []string) error {
	registry := catalog.NewRegistry()
	ch, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.TitleStyle.Render(ch.Title()))
	fmt.Printf("name: %s\ntolerance: %.0e\n\n", ch.Name(), ch.Tolerance())
	for i, c := range ch.Cases() {
		fmt.Printf("case %d\n", i+1)
		fmt.Println("  input:    " + compactJSON(c.Input))
		fmt.Println("  expected: " + compactJSON(c.Expected))
	}
	return nil
}

func runGrad(cmd *cobra.Command, args []string) error {
	if len(params) != 2 {
		return fmt.Errorf("want 2 params, got %d", len(params))
	}
	expval := func(p []float64) (float64, error) {
		c := qsim.NewCircuit(2).RY(p[0], 0).CRY(p[1], 0, 1)
		s, err := c.Run()
		if err != nil {
			return 0, err
		}
		return s.Expectation(qsim.SingleZ(2, 1))
	}

	value, err := expval(params)
	if err != nil {
		return err
	}
	grad, err := gradient.Gradient(expval, params, []gradient.Rule{gradient.FourTerm, gradient.FourTerm})
	if err != nil {
		return err
	}
	fmt.Printf("circuit: RY(%.4f) q0, CRY(%.4f) q0→q1, observable Z on q1\n", params[0], params[1])
	fmt.Printf("expectation: %.8f\n", value)
	fmt.Printf("gradient:    [%.8f, %.8f]\n", grad[0], grad[1])

	// numeric cross-check
	for i := range params {
		fd, err := gradient.CentralDiff(expval, params, i, 1e-5)
		if err != nil {
			return err
		}
		log.Debug("finite-difference check", "param", i, "shift", grad[i], "central", fd)
	}
	return nil
}

func runFidelity(cmd *cobra.Command, args []string) error {
	c := qsim.NewCircuit(2).H(0).CNOT(0, 1)
	ideal, err := c.Run()
	if err != nil {
		return err
	}

	const points = 41
	fids := make([]float64, points)
	for i := 0; i < points; i++ {
		p := float64(i) / float64(points-1)
		noisy, err := qsim.EvolveNoisy(c, p)
		if err != nil {
			return err
		}
		fids[i] = noisy.FidelityPure(ideal)
	}
	fmt.Println(viz.PlotSweep(fids, "bell-pair fidelity, p from 0 to 1"))
	return nil
}

func runZNE(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opt := vqe.Optimizer{
		LearningRate: cfg.Optimizer.LearningRate,
		Steps:        cfg.Optimizer.Steps,
		Theta0:       cfg.Optimizer.Theta0,
	}

	fmt.Printf("optimizing under depolarizing noise p=%.4f...\n", cfg.Noise.P)
	start := time.Now()
	res, err := vqe.RunMitigated(cfg.Noise.P, cfg.ZNE.ScaleFactors, opt)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start).Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCALE\tENERGY")
	for i, k := range res.Scales {
		fmt.Fprintf(w, "%d\t%.8f\n", k, res.Energies[i])
	}
	fmt.Fprintf(w, "0 (extrapolated)\t%.8f\n", res.Mitigated)
	if err := w.Flush(); err != nil {
		return err
	}

	exact := vqe.ExactGroundEnergy()
	fmt.Printf("\nexact ground energy: %.8f\n", exact)
	fmt.Printf("mitigation error:    %.2e\n", abs(res.Mitigated-exact))

	if len(res.Scales) > 2 {
		xs := make([]float64, len(res.Scales))
		for i, k := range res.Scales {
			xs[i] = float64(k)
		}
		linear, err := mitigation.PolyFitZero(xs, res.Energies, 1)
		if err != nil {
			return err
		}
		fmt.Printf("linear-fit estimate: %.8f (error %.2e)\n", linear, abs(linear-exact))
	}

	fmt.Println()
	fmt.Println(viz.PlotZNE(res.Scales, res.Energies, res.Mitigated))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opt := vqe.Optimizer{
		LearningRate: cfg.Optimizer.LearningRate,
		Steps:        cfg.Optimizer.Steps,
		Theta0:       cfg.Optimizer.Theta0,
	}
	p := tea.NewProgram(tui.NewModel(cfg.Noise.P, opt))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHALLENGE\tTIME\tPASSED")
	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			rec.ID,
			rec.Challenge,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.FormatBool(rec.Passed),
		)
	}
	return w.Flush()
}

func toRecord(name string, outcomes []challenge.Outcome, elapsed time.Duration, passed bool) store.RunRecord {
	rec := store.RunRecord{
		Challenge: name,
		Timestamp: time.Now(),
		Elapsed:   elapsed.Seconds(),
		Passed:    passed,
	}
	for _, o := range outcomes {
		cr := store.CaseRecord{
			Case:    o.Case,
			Verdict: o.Verdict.String(),
			Got:     o.Got,
			Want:    compactJSON(o.Want),
		}
		if o.Err != nil {
			cr.Error = o.Err.Error()
		}
		rec.Cases = append(rec.Cases, cr)
	}
	return rec
}

// compactJSON strips the formatting whitespace out of a JSON literal.
func compactJSON(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
