package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/ivlev/scene2motn/internal/config"
	"github.com/ivlev/scene2motn/internal/curve"
	"github.com/ivlev/scene2motn/internal/engine"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "inspect [scene.yaml]",
		Short: "Sample and reduce a scene without writing a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *loaded
			if strings.TrimSpace(destination) != "" {
				dest, err := config.ParseDestination(destination)
				if err != nil {
					return err
				}
				cfg.Export.Destination = dest.String()
			}

			out := cmd.OutOrStdout()
			host, err := loadScene(&cfg, args, out)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			res, err := engine.NewExporter(&cfg, host, logger).Plan(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(out, renderPlan(res))
			for _, w := range res.Warnings {
				fmt.Fprintf(out, "[!] %s\n", w)
			}
			fmt.Fprintf(out, "Frames %d..%d (%d) @ %d fps | %s | %d objects | %d keys | %d bytes\n",
				res.Snapshot.Start, res.Snapshot.End, res.Frames(), res.Snapshot.Rate.FPS,
				res.Destination, res.Written(), res.Keys, res.DocumentBytes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination application: AE, SHAKE or MAYA")
	return cmd
}

// renderPlan draws one row per tracked object. Key counts are per channel
// group; FOV is "-" for objects without an angle of view.
func renderPlan(res *engine.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Object", "Source", "Type", "Role", "Samples", "Position", "Rotation", "Scale", "FOV", "Status"})

	for _, o := range res.Objects {
		fov := "-"
		if n, ok := o.Keys[curve.GroupObject]; ok {
			fov = strconv.Itoa(n)
		}
		status := "animated"
		switch {
		case o.Skipped:
			status = "skipped"
		case o.Static:
			status = "static"
		}
		tw.AppendRow(table.Row{
			o.Name,
			o.Source,
			o.Type,
			o.Role.String(),
			o.Samples,
			o.Keys[curve.GroupPosition],
			o.Keys[curve.GroupRotation],
			o.Keys[curve.GroupScale],
			fov,
			status,
		})
	}

	// counts are columns 5..9
	configs := make([]table.ColumnConfig, 0, 5)
	for col := 5; col <= 9; col++ {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
