package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LynnColeArt/quat"
)

func (a *app) newVectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors [file]",
		Short: "Evaluate a YAML reference vector file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runVectors,
	}
}

func (a *app) runVectors(cmd *cobra.Command, args []string) error {
	tol, err := a.tolerance()
	if err != nil {
		return err
	}

	vectors, err := quat.LoadVectorsFile(args[0])
	if err != nil {
		return err
	}
	a.logger.Info("Running vectors", zap.String("file", args[0]), zap.Int("count", len(vectors)))

	var results []quat.VectorResult
	if a.v.GetString("tolerance") == "arch" {
		results = quat.RunVectorsArch(vectors)
	} else {
		results = quat.RunVectors(vectors, tol)
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.Passed {
			a.logger.Debug("Vector passed", zap.String("name", res.Name), zap.String("got", res.Got))
			fmt.Fprintf(out, "PASS %s\n", res.Name)
			continue
		}
		failed++
		a.logger.Warn("Vector failed", zap.String("name", res.Name), zap.String("reason", res.Message))
		fmt.Fprintf(out, "FAIL %s: %s\n", res.Name, res.Message)
	}
	fmt.Fprintf(out, "%d/%d vectors passed\n", len(vectors)-failed, len(vectors))

	if failed > 0 {
		return errCheckFailed
	}
	return nil
}
