// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsmode/slackweb"
)

var flagExcludeArchived bool

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.AddCommand(channelsListCmd)

	channelsListCmd.Flags().BoolVar(&flagExcludeArchived, "exclude-archived", false, "Leave archived channels out of the listing")
}

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Inspect the team's channels",
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all channels in the team",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := slackweb.ChannelsList(sender, cfg.Token, flagExcludeArchived)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		for _, ch := range resp.Channels {
			marker := " "
			if ch.IsMember {
				marker = "*"
			}

			fmt.Printf("%s #%-22s %-10s %4d members  %s\n", marker, ch.Name, ch.ID, ch.NumMembers, ch.Topic.Value)
		}

		return nil
	},
}
