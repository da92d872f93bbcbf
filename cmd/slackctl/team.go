// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsmode/slackweb"
)

var (
	flagLogsCount int
	flagLogsPage  int
)

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(teamInfoCmd)
	teamCmd.AddCommand(teamAccessLogsCmd)

	teamAccessLogsCmd.Flags().IntVar(&flagLogsCount, "count", 0, "Number of records per page")
	teamAccessLogsCmd.Flags().IntVar(&flagLogsPage, "page", 0, "Page number to fetch")
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Inspect the current team",
}

var teamInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current team's name, domain, and icon",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := slackweb.TeamInfo(sender, cfg.Token)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		t := resp.Team

		fmt.Printf("%s (%s)\n", t.Name, t.ID)
		fmt.Printf("  domain:       %s.slack.com\n", t.Domain)

		if len(t.EmailDomain) > 0 {
			fmt.Printf("  email domain: %s\n", t.EmailDomain)
		}

		if t.Icon.ImageDefault {
			fmt.Println("  icon:         (default)")
		} else {
			fmt.Printf("  icon:         %s\n", t.Icon.Image132)
		}

		return nil
	},
}

var teamAccessLogsCmd = &cobra.Command{
	Use:   "access-logs",
	Short: "List login events for the current team",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := &slackweb.TeamAccessLogsParams{
			Count: flagLogsCount,
			Page:  flagLogsPage,
		}

		resp, err := slackweb.TeamAccessLogs(sender, cfg.Token, params)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		for _, l := range resp.Logins {
			last := time.Unix(l.DateLast, 0).Format(time.RFC3339)
			fmt.Printf("%s  %-20s %-15s x%d  %s\n", last, l.Username, l.IP, l.Count, l.ISP)
		}

		fmt.Printf("page %d of %d (%d logins total)\n", resp.Paging.Page, resp.Paging.Pages, resp.Paging.Total)

		return nil
	},
}
