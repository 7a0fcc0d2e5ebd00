// Copyright ©2024 The Quat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quatcheck verifies the quaternion algebra: it runs the property
// suite over generated samples and evaluates YAML reference vectors.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LynnColeArt/quat"
)

// errCheckFailed is returned when verification ran but found failures.
var errCheckFailed = errors.New("verification failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by the subcommands of one root command.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *zap.Logger
}

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	a.v.SetDefault("verbose", false)
	a.v.SetDefault("tolerance", "default")
	a.v.SetDefault("properties.count", quat.DefaultSampleCount)
	a.v.SetDefault("properties.seed", quat.DefaultSeed)
	a.v.SetDefault("properties.min", quat.DefaultSampleMin)
	a.v.SetDefault("properties.max", quat.DefaultSampleMax)

	cmd := &cobra.Command{
		Use:   "quatcheck",
		Short: "Verify the quaternion algebra",
		Long: `quatcheck is a developer verification tool for the quat package. It
checks the package against its algebraic laws and against reference
vectors. It does not parse or evaluate quaternion expressions.

  properties  run the property suite over deterministic samples
  vectors     evaluate a YAML reference vector file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.quatcheck.yaml if present)")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	cmd.PersistentFlags().String("tolerance", "default", `tolerance preset ("strict", "default", "relaxed", "arch")`)
	_ = a.v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("tolerance", cmd.PersistentFlags().Lookup("tolerance"))

	cmd.AddCommand(a.newPropertiesCmd())
	cmd.AddCommand(a.newVectorsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig reads an optional config file and QUATCHECK_* environment
// variables.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".quatcheck")
	}

	a.v.SetEnvPrefix("QUATCHECK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (a *app) initLogger() error {
	config := zap.NewProductionConfig()
	if a.v.GetBool("verbose") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	a.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Loaded config", zap.String("file", used))
	}
	return nil
}

func (a *app) tolerance() (quat.ToleranceConfig, error) {
	return quat.ToleranceByName(a.v.GetString("tolerance"))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quat module version",
		Run: func(cmd *cobra.Command, args []string) {
			version, sum := quat.Version()
			if version == "" {
				version = "(devel)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), version, sum)
		},
	}
}
