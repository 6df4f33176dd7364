package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rewav/internal/config"
)

// errUsage marks argument failures that already printed the usage text.
// The run performs no discovery, dispatch or deletion after it.
var errUsage = errors.New("usage")

const usageText = "usage: rewav [-f folder] [-n num-threads] [-d]\n" +
	"convert audio files under a folder to wav; -d deletes the originals when done\n"

func newRootCommand() *cobra.Command {
	var folderFlag string
	var threadsFlag int
	var deleteFlag bool
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "rewav",
		Short:         "Batch-convert audio files to wav",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd, configFlag, folderFlag, threadsFlag, deleteFlag)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return errUsage
			}
			return runConvert(cmd, cfg)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.OutOrStdout(), usageText)
		return errUsage
	})

	rootCmd.Flags().StringVarP(&folderFlag, "folder", "f", "", "Root directory to scan (default: current directory)")
	rootCmd.Flags().IntVarP(&threadsFlag, "num-threads", "n", 0, "Worker cap; 0 uses all available parallelism")
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Delete original files after the batch completes")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newHistoryCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// loadRunConfig layers command line flags over the optional config file.
// Only flags the user actually set override file values.
func loadRunConfig(cmd *cobra.Command, configPath, folder string, threads int, deleteOriginals bool) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("folder") {
		expanded, err := config.ExpandPath(folder)
		if err != nil {
			return nil, err
		}
		cfg.Folder = expanded
	}
	if flags.Changed("num-threads") {
		cfg.NumThreads = threads
	}
	if flags.Changed("delete") {
		cfg.DeleteOriginals = deleteOriginals
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
