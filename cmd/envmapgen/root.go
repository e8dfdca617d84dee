// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import "github.com/spf13/cobra"

// NewRootCmd builds the envmapgen command tree. envmapgen is a single-
// purpose tool -- bake is the only subcommand -- but it is shaped as a
// cobra root so flags, usage, and error formatting stay consistent if
// more verbs (inspect, convert) are added later.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envmapgen",
		Short: "Bake a pre-filtered mipmapped radiance cube map",
	}
	cmd.AddCommand(newBakeCmd())
	return cmd
}
