package main

import (
	"fmt"

	"github.com/spf13/cobra"

	confocal "github.com/N2304862K/Confocal-Pro"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <image> [image...]",
	Short: "Print channel intensity statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		r, err := loadRaster(path)
		if err != nil {
			return err
		}
		s, err := confocal.IntensityStats(r)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %dx%d min=%.1f max=%.1f mean=%.1f median=%.1f stddev=%.1f\n",
			path, r.Width, r.Height, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
	}
	return nil
}
