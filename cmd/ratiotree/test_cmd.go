package main

import (
	"context"
	"fmt"

	"github.com/pbanos/ratiotree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	training sourceConfig
	testing  sourceConfig
	format   formatConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long: `Grow a tree from a training set and test its performance against a
testing set with the same columns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return fail(1, err)
			}
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			ctx := context.Background()
			trainingSet, err := config.loadSet(ctx, config.training, config.format, features, "training")
			if err != nil {
				return fail(3, err)
			}
			testingSet, err := config.loadSet(ctx, config.testing, config.format, features, "testing")
			if err != nil {
				return fail(3, err)
			}
			if trainingSet.Table.Len() > 0 && testingSet.Table.Len() > 0 && trainingSet.Table.Width() != testingSet.Table.Width() {
				return fail(4, fmt.Errorf("training set has %d columns but testing set has %d", trainingSet.Table.Width(), testingSet.Table.Width()))
			}
			g := &ratiotree.Grower{Logger: config.logger}
			t := g.GrowTree(trainingSet.Table, trainingSet.Features)
			config.logger.Debugf("Testing tree against testing set with %d rows...", testingSet.Table.Len())
			successRate, errorCount, err := t.Test(testingSet.Table)
			if err != nil {
				return fail(4, fmt.Errorf("testing tree: %w", err))
			}
			config.logger.Debugf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d rows\n", successRate, errorCount)
			return nil
		},
	}
	addSourceFlags(cmd.Flags(), &(config.training), "train", "training")
	addSourceFlags(cmd.Flags(), &(config.testing), "", "testing")
	addFormatFlags(cmd.Flags(), &(config.format))
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.training.input == "" && tcc.testing.input == "" {
		return fmt.Errorf("training and testing sets cannot both be read from STDIN: set the train or input flag")
	}
	return nil
}
