// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/opsmode/slackweb"
)

func init() {
	rootCmd.AddCommand(emojiCmd)
	emojiCmd.AddCommand(emojiListCmd)
}

var emojiCmd = &cobra.Command{
	Use:   "emoji",
	Short: "Inspect the team's custom emoji",
}

var emojiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the team's custom emoji",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := slackweb.EmojiList(sender, cfg.Token)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		names := make([]string, 0, len(resp.Emoji))
		for name := range resp.Emoji {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Printf(":%s:  %s\n", name, resp.Emoji[name])
		}

		return nil
	},
}
