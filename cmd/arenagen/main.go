// Command arenagen generates the boss arena platform, exports it as a glTF
// binary asset, and can open a preview window on the generated scene.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"arenagen/internal/builder"
	"arenagen/internal/convert"
	"arenagen/internal/export"
	"arenagen/internal/logger"
	"arenagen/internal/params"
	"arenagen/internal/preview"
	"arenagen/internal/scene"
)

var log = logger.Named("cli")

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "arenagen",
		Short: "procedural boss platform generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd(), convertCmd(), previewCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var paramsPath, outPath string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "build the platform and write a .glb asset",
		Long:  "builds the full platform scene from the parameter file (defaults apply when the file is absent) and writes it as one binary glTF asset",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, root, err := buildScene(paramsPath)
			if err != nil {
				return err
			}
			c := builder.TakeCensus(sc)
			log.Infof("scene: %d meshes, %d lights (%d pillar parts, %d altar parts, %d spikes)",
				c.MeshTotal, c.Lights, c.PillarMeshes, c.AltarMeshes, c.Spikes)
			if err := export.WriteGLB(sc, root, outPath); err != nil {
				return err
			}
			log.Infof("wrote %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "platform.yaml", "parameter file (YAML)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "boss_platform.glb", "output asset path")
	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "re-encode an asset between .gltf and .glb",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := convert.Convert(args[0], args[1]); err != nil {
				var stage *convert.StageError
				if errors.As(err, &stage) {
					log.Errorf("%s failed for %s: %v", stage.Stage, stage.Path, stage.Err)
				}
				return err
			}
			log.Infof("wrote %s", args[1])
			return nil
		},
	}
}

func previewCmd() *cobra.Command {
	var paramsPath string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "build the platform and open an interactive viewer",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := buildScene(paramsPath)
			if err != nil {
				return err
			}
			preview.Run(sc)
			return nil
		},
	}
	cmd.Flags().StringVarP(&paramsPath, "params", "p", "platform.yaml", "parameter file (YAML)")
	return cmd
}

func buildScene(paramsPath string) (*scene.Scene, *scene.Node, error) {
	p, err := params.Load(paramsPath)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("seed %d, %d pillars, %d sides", p.Seed, p.PillarCount, p.Sides)
	return builder.Build(p)
}
