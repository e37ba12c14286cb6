package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/ratiotree"
	"github.com/pbanos/ratiotree/report"
	"github.com/pbanos/ratiotree/tree"
	"github.com/pbanos/ratiotree/tree/json"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	source       sourceConfig
	format       formatConfig
	output       string
	outputFormat string
	echo         bool
	stats        bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long: `Grow a decision tree from a set of data to predict its last column,
splitting every node on the attribute with the highest gain ratio.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return fail(1, err)
			}
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			res, err := config.loadSet(context.Background(), config.source, config.format, features, "training")
			if err != nil {
				return fail(3, err)
			}
			out, closeOutput, err := openOutput(config.output, cmd.OutOrStdout())
			if err != nil {
				return fail(5, err)
			}
			defer closeOutput()
			if config.echo {
				if err = report.WriteRows(out, res.Table); err != nil {
					return fail(5, err)
				}
				fmt.Fprintln(out)
			}
			if config.stats {
				if err = report.New(res.Table, res.Features).Write(out); err != nil {
					return fail(5, err)
				}
				fmt.Fprintln(out)
			}
			config.logger.Debugf("Growing tree from a set with %d rows and %d attributes...", res.Table.Len(), res.Table.AttributeCount())
			g := &ratiotree.Grower{Logger: config.logger}
			t := g.GrowTree(res.Table, res.Features)
			config.logger.Debugf("Done: %s", t.Summary())
			if err = config.writeTree(out, t); err != nil {
				return fail(5, err)
			}
			return nil
		},
	}
	addSourceFlags(cmd.Flags(), &(config.source), "", "training")
	addFormatFlags(cmd.Flags(), &(config.format))
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the tree will be written (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.outputFormat), "format", "f", "text", "format the tree is written in: text or json")
	cmd.Flags().BoolVar(&(config.echo), "echo", false, "write the rows read before the tree")
	cmd.Flags().BoolVar(&(config.stats), "stats", false, "write the attribute statistics and figures before the tree")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.outputFormat != "text" && gcc.outputFormat != "json" {
		return fmt.Errorf("unknown output format %q: valid formats are text and json", gcc.outputFormat)
	}
	if gcc.outputFormat == "json" && (gcc.echo || gcc.stats) {
		return fmt.Errorf("echo and stats flags cannot be used with the json format")
	}
	return nil
}

func (gcc *growCmdConfig) writeTree(w io.Writer, t *tree.Tree) error {
	if gcc.outputFormat == "json" {
		return json.Write(w, t)
	}
	if gcc.echo || gcc.stats {
		fmt.Fprintln(w, "Tree:")
	}
	return tree.WriteText(w, t.Root)
}

/*
openOutput returns the writer for the given output path, or the given
default writer if the path is "", and a function to close it.
*/
func openOutput(outputPath string, def io.Writer) (io.Writer, func() error, error) {
	if outputPath == "" {
		return def, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
