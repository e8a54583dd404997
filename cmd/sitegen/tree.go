package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/projectfile"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/templates"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

// NewTreeCmd creates the tree command.
func NewTreeCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the component tree of every page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := projectfile.LoadFile(input, config.MaxProjectBytes)
			if err != nil {
				return err
			}
			for i := range project.Pages {
				text, err := PrintPageTree(&project.Pages[i])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Project file (.json, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// PrintPageTree renders a page's component forest as an indented tree
func PrintPageTree(page *builder.Page) (string, error) {
	roots, err := templates.BuildComponentTree(page.Components)
	if err != nil {
		return "", fmt.Errorf("page %q: %w", page.ID, err)
	}

	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (%s)", page.Path, page.ID))
	for _, root := range roots {
		addNode(tree, root)
	}
	return tree.String(), nil
}

func addNode(p treeprint.Tree, node *rendering.TreeNode) {
	label := nodeLabel(node.Component)
	if len(node.Children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, child := range node.Children {
		addNode(branch, child)
	}
}

func nodeLabel(c *builder.ComponentInstance) string {
	var b strings.Builder
	b.WriteString(string(c.Type))
	b.WriteString(" #")
	b.WriteString(c.ID)
	if c.Name != "" && c.Name != c.ID {
		fmt.Fprintf(&b, " %q", c.Name)
	}
	return b.String()
}
