package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ebin-Benny/lca/internal/logger"
	"github.com/Ebin-Benny/lca/pkg/dag"
	"github.com/Ebin-Benny/lca/pkg/lca"
)

const (
	defaultGraphFile = "graph.yaml"
	defaultLogLevel  = "info"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use: "lca",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Short: "A Lowest Common Ancestor solver for directed acyclic graphs",
	Long: `lca loads a directed acyclic graph from a definition file and answers
lowest-common-ancestor queries on its vertices

Run lca --help for more information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	// Set logger level from flags as early as possible, then load config, then finalize from Viper
	cobra.OnInitialize(preInitLogLevelFromFlags, initConfig, initLogLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/.lca.yaml)")
	rootCmd.PersistentFlags().StringP("graph-file", "g", defaultGraphFile,
		`Path to the graph definition file. The file declares the directed edges of the graph
(parent/child pairs), and optionally labels and attributes for its vertices.`)
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("info", "debug", etc...)`)

	err := viper.BindPFlags(rootCmd.PersistentFlags())
	if err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(docgenCommand())
}

func initConfig() {
	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		setConfigFile(cfgFile)
	} else if val := os.Getenv("LCA_CONFIG"); val != "" {
		// Use config file from the env variable.
		setConfigFile(val)
	} else {
		workingDir, err := os.Getwd()
		cobra.CheckErr(err)

		// Add $HOME/.config and current directory as paths for Viper to search for the config file in.
		homeDir, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(path.Join(homeDir, ".config"))
		viper.AddConfigPath(workingDir)

		// Search config file with name ".lca.yaml" or ".lca.yml".
		viper.SetConfigName(".lca")
	}

	// Env vars starting with the LCA_ prefix can override any configuration.
	// e.g. LCA_LOG_LEVEL, LCA_GRAPH_FILE, etc...
	viper.SetEnvPrefix("lca")
	// Allows to override any sub-level in file config.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Read in environment variables that match.
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err != nil {
		// Non-blocking, because most commands work fine without a config file.
		logger.Debugf("%s", err)
	} else {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initLogLevel() {
	logLevel := viper.GetString("log_level")
	logger.SetLevel(&logLevel)
}

// preInitLogLevelFromFlags sets the log level from Cobra flags or env before config/env are loaded by Viper,
// so that early logs (like config not found) respect user-provided preference.
// Precedence respected here: flag > env (LCA_LOG_LEVEL) > config (handled later in initLogLevel via Viper).
func preInitLogLevelFromFlags() {
	if rootCmd == nil {
		return
	}

	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if flag != nil && flag.Changed {
		val, err := rootCmd.PersistentFlags().GetString("log-level")
		if err == nil {
			logger.SetLevel(&val)
			return
		}
	}

	if val, ok := os.LookupEnv("LCA_LOG_LEVEL"); ok && val != "" {
		logger.SetLevel(&val)
	}
}

func setConfigFile(name string) {
	_, err := os.Stat(name)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("config file %q not found", name))
	}

	viper.SetConfigFile(name)
}

func getWorkingDir() (string, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	return workingDir, nil
}

// resolveGraphFile resolves relative graph file paths against the current
// working directory, and falls back to the default graph file name.
func resolveGraphFile(graphFile string) (string, error) {
	if graphFile == "" {
		graphFile = defaultGraphFile
	}

	if path.IsAbs(graphFile) {
		return graphFile, nil
	}

	workingDir, err := getWorkingDir()
	if err != nil {
		return "", err
	}

	return path.Join(workingDir, graphFile), nil
}

// buildGraph loads the graph definition file and generates the DAG out of it.
func buildGraph(graphFile string) (*dag.DAG, error) {
	graphPath, err := resolveGraphFile(graphFile)
	if err != nil {
		return nil, err
	}

	return lca.GenerateDAG(graphPath)
}

// hydrateOptsFromViper copies all the viper values into our config struct.
// The mapping between viper identifiers and struct field names
// is ensured by `mapstructure` struct tags.
func hydrateOptsFromViper(opts any) {
	_ = viper.Unmarshal(opts)
}

// bindPFlagsSnakeCase binds the flags with viper values. The identifier of the viper value
// is the name of the flag with dashes replaced by underscores. This is required so we can
// retrieve values from viper with the same behaviour with config coming from files
// (my_config: "value") or from flags (--my-config=value).
func bindPFlagsSnakeCase(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}
