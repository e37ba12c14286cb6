package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/ratiotree"
	"github.com/pbanos/ratiotree/feature"
	"github.com/pbanos/ratiotree/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	training sourceConfig
	format   formatConfig
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a decision for a row answering questions",
		Long: `Grow a tree from a training set and use it to predict the decision for
a row, asking on STDIN only for the attributes the tree needs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := config.Validate()
			if err != nil {
				return fail(1, err)
			}
			features, err := config.features()
			if err != nil {
				return fail(2, err)
			}
			res, err := config.loadSet(context.Background(), config.training, config.format, features, "training")
			if err != nil {
				return fail(3, err)
			}
			g := &ratiotree.Grower{Logger: config.logger}
			t := g.GrowTree(res.Table, res.Features)
			v, err := predict(t, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fail(4, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Predicted decision is %s\n", v)
			return nil
		},
	}
	addSourceFlags(cmd.Flags(), &(config.training), "train", "training")
	addFormatFlags(cmd.Flags(), &(config.format))
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.training.input == "" {
		return fmt.Errorf("required train flag was not set: STDIN is used to answer questions")
	}
	return nil
}

/*
predict walks the tree from its root asking on out for the value of the
attribute of every internal node reached and reading the answers from in,
one per line. Answers no branch accounts for are rejected and asked again.
*/
func predict(t *tree.Tree, in io.Reader, out io.Writer) (feature.Value, error) {
	if t.Root == nil {
		return feature.Value{}, tree.ErrNoTree
	}
	scanner := bufio.NewScanner(in)
	n := t.Root
	for {
		switch node := n.(type) {
		case *tree.Leaf:
			return node.Label, nil
		case *tree.Internal:
			valid := make([]string, 0, len(node.Branches))
			for _, b := range node.SortedBranches() {
				valid = append(valid, b.Value.String())
			}
			name := t.Feature(node.Attribute).Name()
			fmt.Fprintf(out, "Please provide the row's %s:\n(valid values are %s)\n", name, strings.Join(valid, ", "))
			for {
				if !scanner.Scan() {
					if err := scanner.Err(); err != nil {
						return feature.Value{}, fmt.Errorf("reading value for %s: %w", name, err)
					}
					return feature.Value{}, fmt.Errorf("reading value for %s: %w", name, io.ErrUnexpectedEOF)
				}
				v := feature.ParseValue(scanner.Text())
				child, ok := node.Child(v)
				if ok {
					if child == nil {
						return feature.Value{}, tree.ErrCannotClassify
					}
					n = child
					break
				}
				fmt.Fprintf(out, "%s is not a valid value for the row's %s. Please provide one of %s.\n", v, name, strings.Join(valid, ", "))
			}
		default:
			return feature.Value{}, fmt.Errorf("unknown node type %T", n)
		}
	}
}
