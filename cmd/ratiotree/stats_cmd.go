package main

import (
	"context"
	"fmt"

	"github.com/pbanos/ratiotree/report"
	"github.com/spf13/cobra"
)

type statsCmdConfig struct {
	*rootCmdConfig
	source sourceConfig
	format formatConfig
	rows   bool
}

func statsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &statsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report the figures of a set of data",
		Long: `Report the value counts of every column of a set of data, the entropy
of its decision column and the Info, Gain, SplitInfo and GainRatio of
every condition attribute.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			res, err := config.loadSet(context.Background(), config.source, config.format, features, "input")
			if err != nil {
				return fail(3, err)
			}
			out := cmd.OutOrStdout()
			if config.rows {
				if err = report.WriteRows(out, res.Table); err != nil {
					return fail(5, err)
				}
				fmt.Fprintln(out)
			}
			if err = report.New(res.Table, res.Features).Write(out); err != nil {
				return fail(5, err)
			}
			return nil
		},
	}
	addSourceFlags(cmd.Flags(), &(config.source), "", "input")
	addFormatFlags(cmd.Flags(), &(config.format))
	cmd.Flags().BoolVar(&(config.rows), "rows", false, "write the rows read before the figures")
	return cmd
}
