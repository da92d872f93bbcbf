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

var (
	flagChatUsername  string
	flagChatIconEmoji string
	flagChatLinkNames bool
)

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatPostCmd)

	chatPostCmd.Flags().StringVar(&flagChatUsername, "username", "", "Name to post as")
	chatPostCmd.Flags().StringVar(&flagChatIconEmoji, "icon-emoji", "", "Emoji to use as the posting icon")
	chatPostCmd.Flags().BoolVar(&flagChatLinkNames, "link-names", false, "Linkify @user and #channel mentions")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Post messages",
}

var chatPostCmd = &cobra.Command{
	Use:   "post <channel> <text>",
	Short: "Post a message to a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := &slackweb.ChatPostMessageParams{
			Username:  flagChatUsername,
			IconEmoji: flagChatIconEmoji,
			LinkNames: flagChatLinkNames,
		}

		resp, err := slackweb.ChatPostMessage(sender, cfg.Token, args[0], args[1], params)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(resp)
		}

		fmt.Printf("posted to %s at %s\n", resp.Channel, resp.TS)

		return nil
	},
}
