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

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect the team's members",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all members of the team",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := slackweb.UsersList(sender, cfg.Token)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		for _, u := range resp.Members {
			flags := ""

			switch {
			case u.Deleted:
				flags = "(deleted)"
			case u.IsPrimaryOwner:
				flags = "(primary owner)"
			case u.IsOwner:
				flags = "(owner)"
			case u.IsAdmin:
				flags = "(admin)"
			}

			fmt.Printf("@%-22s %-10s %-30s %s\n", u.Name, u.ID, u.Profile.RealName, flags)
		}

		return nil
	},
}
