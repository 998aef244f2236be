package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/graphbench/client"
	"github.com/persistorai/graphbench/internal/coordinator"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

const defaultWorkers = "http://localhost:8081"

var (
	coord       *coordinator.Coordinator
	log         = logrus.New()
	flagWorkers string
	flagFmt     string
	flagTimeout time.Duration
	flagVerbose bool
	flagBatch   int
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("graphbench version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("graphbench version %s-dev", version)
}

// profileConfig holds the worker set for a single profile.
type profileConfig struct {
	Workers []string `yaml:"workers"`
}

// profilesFile is the top-level config file structure.
type profilesFile struct {
	Profiles      map[string]profileConfig `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "graphbench",
		Short:   "graphbench drives partitioned graph benchmarks across workers",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			resolveConfig()
			return setupCoordinator()
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagWorkers, "workers", defaultWorkers, "Comma-separated worker URLs in partition order (env: GRAPHBENCH_WORKERS)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: json|table|quiet")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Minute, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log coordinator progress to stderr")
	rootCmd.PersistentFlags().IntVar(&flagBatch, "load-batch", coordinator.DefaultLoadBatch, "Edges per load request")

	generateCmd := newGenerateCmd()
	generateCmd.PersistentPreRunE = skipCoordinator // no workers needed
	doctorCmd := newDoctorCmd()
	doctorCmd.PersistentPreRunE = skipCoordinator // resolves and probes workers itself
	watchCmd := newWatchCmd()
	watchCmd.PersistentPreRunE = skipCoordinator

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newRoundCmd())
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newFinalizeCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newEdgesCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTraverseCmd())
	rootCmd.AddCommand(newComponentsCmd())
	rootCmd.AddCommand(newReportCmd("pagerank", "PageRank every component on every worker", false))
	rootCmd.AddCommand(newReportCmd("mst", "Minimum spanning forest on every worker", false))
	rootCmd.AddCommand(newReportCmd("ssp", "Shortest paths from --start on every worker", true))
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func skipCoordinator(*cobra.Command, []string) error {
	setupLogger()
	resolveConfig()
	return nil
}

func setupLogger() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func setupCoordinator() error {
	c, err := coordinator.New(
		coordinator.HTTPWorkers(workerURLs(), client.WithTimeout(flagTimeout)),
		log,
		coordinator.WithLoadBatch(flagBatch),
	)
	if err != nil {
		return err
	}
	coord = c
	return nil
}

// workerURLs splits the resolved --workers value.
func workerURLs() []string {
	var urls []string
	for _, u := range strings.Split(flagWorkers, ",") {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".graphbench", "config.yaml"), nil
}

func loadProfiles() (string, *profilesFile, error) {
	cfgPath, err := configPath()
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, nil, err
	}
	var cfg profilesFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, nil, err
	}
	return cfgPath, &cfg, nil
}

// resolveConfig fills --workers from env, then the active config profile.
// An explicit flag always wins.
func resolveConfig() {
	if flagWorkers != defaultWorkers {
		return
	}
	if v := os.Getenv("GRAPHBENCH_WORKERS"); v != "" {
		flagWorkers = v
		return
	}

	_, cfg, err := loadProfiles()
	if err != nil || cfg.Profiles == nil {
		return
	}
	profileName := cfg.ActiveProfile
	if profileName == "" {
		profileName = "default"
	}
	if p, ok := cfg.Profiles[profileName]; ok && len(p.Workers) > 0 {
		flagWorkers = strings.Join(p.Workers, ",")
	}
}
