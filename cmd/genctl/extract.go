package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

func extractCmd() *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract visible text from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagePath == "" {
				return errors.New("--image is required")
			}

			payload, err := readMedia(imagePath)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			svc := service.NewContentService(client, nil, logger.NewNop())

			text, err := svc.ExtractText(cmd.Context(), payload)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "no text found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "path to the image file")

	return cmd
}
