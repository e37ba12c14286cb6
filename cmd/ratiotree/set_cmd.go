package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pbanos/ratiotree/dataset"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/set/csv"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	source    sourceConfig
	format    formatConfig
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long: `Read a set of data from any supported source and dump it as
delimited text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			res, err := config.loadSet(context.Background(), config.source, config.format, features, "input")
			if err != nil {
				return fail(3, err)
			}
			out, closeOutput, err := openOutput(config.setOutput, cmd.OutOrStdout())
			if err != nil {
				return fail(5, err)
			}
			defer closeOutput()
			config.logger.Debugf("Dumping %d rows into output set...", res.Table.Len())
			if err = config.write(out, res.Table, res.Features); err != nil {
				return fail(5, err)
			}
			config.logger.Debugf("Done")
			return nil
		},
	}
	addSourceFlags(cmd.PersistentFlags(), &(config.source), "", "input")
	addFormatFlags(cmd.PersistentFlags(), &(config.format))
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a file to dump the output set as delimited text (defaults to STDOUT)")
	cmd.AddCommand(splitCmd(config))
	return cmd
}

func (scc *setCmdConfig) write(w io.Writer, t *dataset.Table, features []*feature.Feature) error {
	opts, err := scc.format.options()
	if err != nil {
		return err
	}
	return csv.WriteTable(w, t, features, opts.Comma)
}

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, assigning every row at random`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return fail(1, err)
			}
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			res, err := config.loadSet(context.Background(), config.source, config.format, features, "input")
			if err != nil {
				return fail(3, err)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			config.logger.Debugf("Splitting input set with seed %d...", seed)
			kept, split := splitRows(res.Table, config.splitProbability, rand.New(rand.NewSource(seed)))
			out, closeOutput, err := openOutput(config.setOutput, cmd.OutOrStdout())
			if err != nil {
				return fail(5, err)
			}
			defer closeOutput()
			if err = config.write(out, kept, res.Features); err != nil {
				return fail(5, err)
			}
			splitOut, closeSplitOutput, err := openOutput(config.splitOutput, nil)
			if err != nil {
				return fail(5, err)
			}
			defer closeSplitOutput()
			if err = config.write(splitOut, split, res.Features); err != nil {
				return fail(5, err)
			}
			config.logger.Debugf("Input set with %d rows was split into sets with %d and %d rows", res.Table.Len(), kept.Len(), split.Len())
			return nil
		},
	}
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a row of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the split set (required)")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of rows (defaults to one taken from the clock)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

/*
splitRows assigns every row of the table to the split table with the given
percent probability and to the kept table otherwise, keeping row order.
*/
func splitRows(t *dataset.Table, probability int, r *rand.Rand) (*dataset.Table, *dataset.Table) {
	var kept, split []dataset.Row
	for _, row := range t.Rows() {
		if 100*r.Float32() > float32(probability) {
			kept = append(kept, row)
		} else {
			split = append(split, row)
		}
	}
	return dataset.MustNew(kept), dataset.MustNew(split)
}
