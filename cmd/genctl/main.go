// Package main is the genctl command line front end. It talks to the
// generation backend directly, without going through the API server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/postcraft-ai/content-platform/internal/config"
	"github.com/postcraft-ai/content-platform/internal/llm"
)

var (
	flagAPIKey  string
	flagModel   string
	flagPresets string
)

func main() {
	root := &cobra.Command{
		Use:          "genctl",
		Short:        "Generate social media content from the command line",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "backend API key (defaults to GOOGLE_API_KEY)")
	root.PersistentFlags().StringVar(&flagModel, "model", "", "backend model name")
	root.PersistentFlags().StringVar(&flagPresets, "presets", "", "YAML file with default platform/tone/language")

	root.AddCommand(generateCmd())
	root.AddCommand(extractCmd())
	root.AddCommand(chatCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a retry-wrapped Gemini client from flags and env.
func newClient() (llm.Client, error) {
	key := flagAPIKey
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	if key == "" {
		return nil, config.ErrMissingAPIKey
	}

	var opts []llm.GeminiOption
	if flagModel != "" {
		opts = append(opts, llm.WithGeminiModel(flagModel))
	}
	backend, err := llm.NewGeminiClient(key, opts...)
	if err != nil {
		return nil, err
	}

	return llm.WithRetry(backend, llm.DefaultRetryPolicy(), func(err error, delay time.Duration) {
		fmt.Fprintf(os.Stderr, "backend busy, retrying in %s\n", delay)
	}), nil
}
