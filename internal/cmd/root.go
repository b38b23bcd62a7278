/*
Copyright 2023 The OpenVEX Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"github.com/openvex/sbom-embed/internal/convert"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"
	"sigs.k8s.io/release-utils/version"
)

const logLevel = "info"

// New returns the root command. Running it without a subcommand converts
// the SBOM at opts.InputPath into opts.OutputPath.
func New(opts convert.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sbom-embed",
		Short: "Embed an SPDX SBOM summary into a JavaScript data file",
		Long: `sbom-embed reads ` + opts.InputPath + `, computes license and file type
statistics over every file, samples the first files and relationships and
writes the result to ` + opts.OutputPath + ` as the EMBEDDED_SBOM_DATA constant.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return log.SetupGlobalLogger(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convert.Run(opts)
			if err != nil {
				return err
			}

			return convert.Report(cmd.OutOrStdout(), result)
		},
	}

	addBrowse(cmd, opts)
	cmd.AddCommand(version.Version())

	return cmd
}

func Execute() error {
	return New(convert.DefaultOptions()).Execute()
}
