package tree

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	indentUnit      = "          "
	leafToken       = " -> D: "
	rootToken       = "Attribute: "
	internalToken   = "->Attribute: "
	noTreeToken     = "Brak drzewa"
	rootBranchLabel = ""
)

/*
WriteText takes an io.Writer and a node and writes the textual rendering of
the tree rooted at the node, one node per line:

  - a leaf renders as <indent><branch value> -> D: <label>
  - the root internal node renders as Attribute: <1-based index>
  - any other internal node renders as <indent><branch value>->Attribute: <1-based index>
  - a nil node renders as <indent><branch value>Brak drzewa

The indent holds ten spaces per depth level. Children are written in
ascending order of the textual form of their branch value; branches with
the same textual form keep their stored order.
*/
func WriteText(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	writeText(bw, n, 0, rootBranchLabel)
	return bw.Flush()
}

/*
Text returns the textual rendering of the tree rooted at the given node
as written by WriteText.
*/
func Text(n Node) string {
	var sb strings.Builder
	WriteText(&sb, n)
	return sb.String()
}

func writeText(w *bufio.Writer, n Node, depth int, prefix string) {
	indent := strings.Repeat(indentUnit, depth)
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			w.WriteString(indent + prefix + noTreeToken + "\n")
			return
		}
		w.WriteString(indent + prefix + leafToken + n.Label.String() + "\n")
	case *Internal:
		if n == nil {
			w.WriteString(indent + prefix + noTreeToken + "\n")
			return
		}
		attribute := strconv.Itoa(n.Attribute + 1)
		if depth == 0 {
			w.WriteString(rootToken + attribute + "\n")
		} else {
			w.WriteString(indent + prefix + internalToken + attribute + "\n")
		}
		for _, b := range n.SortedBranches() {
			writeText(w, b.Node, depth+1, b.Value.String())
		}
	default:
		w.WriteString(indent + prefix + noTreeToken + "\n")
	}
}

/*
SortedBranches returns the branches of the node in ascending order of the
textual form of their value. Branches with the same textual form keep their
stored order.
*/
func (in *Internal) SortedBranches() []Branch {
	sorted := make([]Branch, len(in.Branches))
	copy(sorted, in.Branches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.String() < sorted[j].Value.String()
	})
	return sorted
}
