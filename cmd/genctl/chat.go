package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

func chatCmd() *cobra.Command {
	var persona string

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send a one-shot chat message to the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if strings.TrimSpace(message) == "" {
				return errors.New("message is empty")
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			svc := service.NewChatService(client, nil, 6, logger.NewNop())

			response, err := svc.Respond(cmd.Context(), message, nil, persona)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), response)
			return nil
		},
	}

	cmd.Flags().StringVar(&persona, "persona", "assistant", "chat persona (assistant, jerry)")

	return cmd
}
