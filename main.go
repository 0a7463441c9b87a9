package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var skipConfirm bool

	root := &cobra.Command{
		Use:   "usbreset [DISK [LABEL [MODE]]]",
		Short: "Reset a removable disk to a single FAT32 partition",
		Long: `usbreset wipes a disk and rebuilds it as one FAT32 primary partition
on an MBR partition table, by driving the host partitioning utility.
Omitted arguments are asked for interactively. MODE is Fast (drop the
partition table) or Full (overwrite every sector).`,
		Version:      appversion,
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			flow := &resetFlow{
				prompt:      surveyPrompter{},
				dispatch:    resetDevice,
				listData:    getDiskListData,
				perms:       checkForPerms,
				out:         os.Stdout,
				skipConfirm: skipConfirm,
			}
			return flow.run(args)
		},
	}
	root.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	root.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "disks"},
		Short:   "List the disks the reset can target",
		Args:    cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printDiskTable(os.Stdout, getDiskListData())
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
