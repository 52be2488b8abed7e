package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/scene2motn/internal/config"
	"github.com/ivlev/scene2motn/internal/engine"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var destination string
	var stats bool

	cmd := &cobra.Command{
		Use:   "export [scene.yaml]",
		Short: "Export scene animation to a .motn document",
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

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = defaultOutputPath(cfg.Export.OutputDir, host.Path(), time.Now())
			}

			res, err := engine.NewExporter(&cfg, host, logger).Export(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			for _, w := range res.Warnings {
				fmt.Fprintf(out, "[!] %s\n", w)
			}
			fmt.Fprintf(out, "[+] Exported %d objects over %d frames (%s) to %s\n",
				res.Written(), res.Frames(), res.Destination, res.OutputPath)

			if stats || cfg.Stats.Enabled {
				if err := engine.WriteStats(out, res, cfg.BuildVersion, host.Path(), cfg.Stats.LogPath); err != nil {
					fmt.Fprintf(out, "[!] Could not write stats: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: <output_dir>/<scene>_<timestamp>.motn)")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination application: AE, SHAKE or MAYA (overrides export.destination)")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print a performance report and append it to the stats log")
	return cmd
}
