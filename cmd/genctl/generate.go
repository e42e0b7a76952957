package main

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/prompt"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

func generateCmd() *cobra.Command {
	var (
		mediaPath    string
		text         string
		platform     string
		tone         string
		language     string
		customPrompt string
		lines        int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate platform content from a media file or source text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mediaPath == "" && text == "" {
				return errors.New("either --media or --text is required")
			}

			p, err := loadPresets(flagPresets)
			if err != nil {
				return err
			}
			if platform == "" {
				platform = p.Platform
			}
			if tone == "" {
				tone = p.Tone
			}
			if language == "" {
				language = p.Language
			}
			if lines == 0 && p.Lines > 0 {
				lines = p.Lines
			}
			if language == "" {
				language = "english"
			}
			if lines == 0 {
				lines = 10
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			svc := service.NewContentService(client, nil, logger.NewNop())

			opts := prompt.Options{
				Platform:     prompt.Platform(platform),
				Tone:         prompt.Tone(tone),
				LineCount:    lines,
				Language:     language,
				CustomPrompt: customPrompt,
			}

			var content string
			if mediaPath != "" {
				payload, err := readMedia(mediaPath)
				if err != nil {
					return err
				}
				content, err = svc.FromMedia(cmd.Context(), payload, opts)
				if err != nil {
					return err
				}
			} else {
				content, err = svc.FromText(cmd.Context(), text, opts)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaPath, "media", "", "path to an image or video file")
	cmd.Flags().StringVar(&text, "text", "", "source text to generate content from")
	cmd.Flags().StringVar(&platform, "platform", "", "target platform (instagram, twitter, facebook, linkedin)")
	cmd.Flags().StringVar(&tone, "tone", "", "tone (professional, casual, humorous, inspirational)")
	cmd.Flags().StringVar(&language, "language", "", "output language tag")
	cmd.Flags().StringVar(&customPrompt, "prompt", "", "custom instructions")
	cmd.Flags().IntVar(&lines, "lines", 0, "requested line count")

	return cmd
}

func readMedia(path string) (*model.MediaPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	kind := model.MediaKindImage
	if strings.HasPrefix(mimeType, "video/") {
		kind = model.MediaKindVideo
	}

	return &model.MediaPayload{
		Bytes:    data,
		MIMEType: mimeType,
		Kind:     kind,
	}, nil
}
