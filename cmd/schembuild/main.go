package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oriumgames/schembuild"
	"github.com/oriumgames/schembuild/format"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "schembuild",
		Short: "Build and convert Minecraft .schem files",
		Long:  "schembuild assembles voxel structures from block lists, applies geometric transforms and exports them as version-targeted .schem files.",
	}

	var outDir string
	var planPath string
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a .schem file from a YAML plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}
			res, err := plan.run(outDir)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s: %d blocks, %d palette entries, %d bytes in %s\n",
				res.Path, res.Blocks, res.PaletteSize, res.Bytes, res.Duration)
			return nil
		},
	}
	buildCmd.Flags().StringVarP(&planPath, "plan", "p", "", "path to the YAML build plan (required)")
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides the plan)")
	buildCmd.MarkFlagRequired("plan")

	infoCmd := &cobra.Command{
		Use:   "info <file.schem>",
		Short: "Print the version, dimensions and palette of a .schem file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, v, err := format.ReadFile(args[0])
			if err != nil {
				return err
			}
			dx, dy, dz := s.Dimensions()
			fmt.Printf("%s\n", args[0])
			fmt.Printf("  version:    %v (data version %d)\n", v, v.DataVersion())
			fmt.Printf("  dimensions: %d x %d x %d\n", dx, dy, dz)
			fmt.Printf("  blocks:     %d\n", s.Len())

			names := make([]string, 0, s.Palette().Len())
			for _, b := range s.Palette().Blocks() {
				names = append(names, b.String())
			}
			sort.Strings(names)
			fmt.Printf("  palette (%d):\n", len(names))
			for _, n := range names {
				fmt.Printf("    %s\n", n)
			}
			return nil
		},
	}

	var targetVersion string
	var convertOut string
	convertCmd := &cobra.Command{
		Use:   "convert <in.schem>",
		Short: "Re-encode a .schem file at another version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := format.ParseVersion(targetVersion)
			if err != nil {
				return err
			}
			s, _, err := format.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := convertOut
			if out == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), ".schem")
				out = base + "_" + strings.ReplaceAll(v.Release(), ".", "_") + ".schem"
			}
			res, err := schembuild.Wrap(s, v).Save(filepath.Dir(out), filepath.Base(out))
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s (%v, %d blocks)\n", res.Path, v, res.Blocks)
			return nil
		},
	}
	convertCmd.Flags().StringVarP(&targetVersion, "version", "v", "", "target version, e.g. JE_1_13 or 1.19.2 (required)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: <in>_<version>.schem)")
	convertCmd.MarkFlagRequired("version")

	versionsCmd := &cobra.Command{
		Use:   "versions",
		Short: "List the supported export versions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, v := range format.Versions() {
				fmt.Printf("%-12s data version %d\n", strings.ReplaceAll(v.String(), " ", "_"), v.DataVersion())
			}
		},
	}

	rootCmd.AddCommand(buildCmd, infoCmd, convertCmd, versionsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
