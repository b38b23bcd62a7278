/*
Copyright 2023 The OpenVEX Authors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openvex/sbom-embed/internal/browse"
	"github.com/openvex/sbom-embed/internal/convert"
	"github.com/spf13/cobra"
)

func addBrowse(parentCmd *cobra.Command, opts convert.Options) {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore the files, packages and relationships of the SBOM interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := convert.Load(opts.InputPath)
			if err != nil {
				return err
			}

			// start app

			p := tea.NewProgram(browse.New(parsed.Normalized()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}

			return nil
		},
	}

	parentCmd.AddCommand(cmd)
}
