package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/scene2motn/internal/scene"
)

func newSceneCommand(ctx *commandContext) *cobra.Command {
	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "Scene file utilities",
	}
	sceneCmd.AddCommand(newSceneInitCommand(ctx))
	return sceneCmd
}

func newSceneInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample scene description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := filepath.Join(cfg.Export.SceneDir, "sample.yaml")
			if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
				target = strings.TrimSpace(args[0])
			}
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("scene file %s already exists", target)
			}
			if err := scene.Write(scene.SampleScene(), target); err != nil {
				return fmt.Errorf("write sample scene: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample scene to %s\n", target)
			return nil
		},
	}
}
