// Package main provides the taskline CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mhutchins/taskline/internal/config"
	"github.com/mhutchins/taskline/internal/gemini"
	"github.com/mhutchins/taskline/internal/interpreter"
	"github.com/mhutchins/taskline/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskline \"<your natural language command>\"",
	Short: "Natural language task manager",
	Long: `taskline manages projects and tasks through natural language commands.

Each invocation sends one instruction, along with the current database state,
to a language model that translates it into a single task operation. The
result is printed as one line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstruction,
}

func init() {
	rootCmd.Version = Version
}

// runInstruction joins the arguments into one instruction and processes it.
// With no arguments it prints usage examples and returns.
func runInstruction(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	// A local .env may carry the API key
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	client := newGeminiClient(cfg)
	interp := interpreter.New(db, client)

	instruction := strings.Join(args, " ")
	fmt.Println(interp.Process(context.Background(), instruction))
	return nil
}

// newGeminiClient builds the Gemini client from configuration.
func newGeminiClient(cfg *config.Config) *gemini.Client {
	var opts []gemini.Option
	if cfg.APIKey != "" {
		opts = append(opts, gemini.WithAPIKey(cfg.APIKey))
	}
	if cfg.Model != "" {
		opts = append(opts, gemini.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
	}
	return gemini.NewClient(opts...)
}

// printUsage prints the usage line and example invocations.
func printUsage() {
	fmt.Println("Usage: taskline \"<your natural language command>\"")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  taskline \"Create a project called Website Development\"")
	fmt.Println("  taskline \"Add a task UI design to the Website Development project\"")
	fmt.Println("  taskline \"What should I work on next?\"")
	fmt.Println("  taskline \"Delete the UI design task\"")
}
