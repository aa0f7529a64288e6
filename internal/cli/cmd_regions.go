package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/demarcate/internal/document"
	"github.com/tengjizhang/demarcate/internal/markup"
)

func newRegionsCmd(getApp func() *App, getOutput func() OutputFormat) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "regions <source>",
		Short: "List editable regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			_, sel, err := app.selectRegion(cmd.Context(), args[0], selector)
			if err != nil {
				return err
			}

			nodes := collectRegions(markup.NewEditorTrigger(nil), sel)
			regions := make([]Region, 0, len(nodes))
			for i, n := range nodes {
				regions = append(regions, describeRegion(app.renderer.Serializer(), i+1, n))
			}

			if getOutput() == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), regions)
			}
			writeRegionsTable(cmd.OutOrStdout(), regions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&selector, "select", "s", "", "CSS selector to search within")
	return cmd
}

func newEditCmd(getApp func() *App, getOutput func() OutputFormat) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "edit <source> <index>",
		Short: "Open one editable region and print its Markdown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			doc, sel, err := app.selectRegion(cmd.Context(), args[0], selector)
			if err != nil {
				return err
			}

			var session EditorSession
			var convErr error
			trigger := markup.NewEditorTrigger(func(req markup.EditRequest) {
				session.Region = describeRegion(app.renderer.Serializer(), index, req.Node)
				app.logger.Info("displaying editor", "tag", req.Tag, "path", session.Region.Path)
				session.Markdown, convErr = app.renderer.Serializer().Convert(req.Node)
			})

			nodes := collectRegions(trigger, sel)
			if index > len(nodes) {
				return fmt.Errorf("region %d of %d: %w", index, len(nodes), document.ErrNotFound)
			}
			if !trigger.Activate(nodes[index-1]) {
				return fmt.Errorf("region %d is not editable", index)
			}
			if convErr != nil {
				return convErr
			}
			session.Source = doc.Source()

			out := cmd.OutOrStdout()
			if getOutput() == OutputJSON {
				return writeJSON(out, session)
			}
			_, err = io.WriteString(out, session.Markdown)
			return err
		},
	}

	cmd.Flags().StringVarP(&selector, "select", "s", "", "CSS selector to search within")
	return cmd
}
