package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tengjizhang/demarcate/internal/render"
)

func newConvertCmd(getApp func() *App, getOutput func() OutputFormat) *cobra.Command {
	var selector string
	var engine string

	cmd := &cobra.Command{
		Use:   "convert <source>",
		Short: "Convert an HTML file, URL, or stdin (-) to Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			eng, err := render.ParseEngine(fallback(engine, app.cfg.Engine))
			if err != nil {
				return err
			}
			selector = fallback(selector, app.cfg.Selector)

			doc, sel, err := app.selectRegion(cmd.Context(), args[0], selector)
			if err != nil {
				return err
			}
			md, err := app.renderer.Render(eng, sel)
			if err != nil {
				return fmt.Errorf("convert %s: %w", doc.Source(), err)
			}

			out := cmd.OutOrStdout()
			if getOutput() == OutputJSON {
				return writeJSON(out, Conversion{
					Source:   doc.Source(),
					Selector: selector,
					Engine:   string(eng),
					Markdown: md,
				})
			}
			_, err = io.WriteString(out, md)
			return err
		},
	}

	cmd.Flags().StringVarP(&selector, "select", "s", "", "CSS selector of the region to convert (default from config, body)")
	cmd.Flags().StringVarP(&engine, "engine", "e", "", "Conversion engine: demarcate, library")
	return cmd
}
