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
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authTestCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check authentication",
}

var authTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Show who the configured token authenticates as",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := slackweb.AuthTest(sender, cfg.Token)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		fmt.Printf("authed as %s (%s) in team %s (%s)\n", resp.User, resp.UserID, resp.Team, resp.TeamID)

		return nil
	},
}
