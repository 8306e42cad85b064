package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwypi/internal/cpuinfo"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print detected CPU features and the dispatch level.",
		Long: `Print detected CPU features and the dispatch level the lane kernels use.
Set HWY_NO_SIMD=1 to force the scalar kernels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Report(cmd.OutOrStdout())
		},
	}
}
