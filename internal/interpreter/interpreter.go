// Package interpreter translates a natural language instruction into a store
// operation via a language model call.
package interpreter

import (
	"context"
	"fmt"

	"github.com/mhutchins/taskline/internal/store"
)

// parseFailureMessage is returned when no JSON command can be recovered from
// the model's response.
const parseFailureMessage = "Sorry, I couldn't understand that command. Please try again."

// defaultOutput is used when the model omits the output key.
const defaultOutput = "Operation completed."

// TextGenerator generates text for a prompt and reports an estimated cost.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (text string, cost float64, err error)
}

// Interpreter processes natural language commands against a store.
type Interpreter struct {
	store *store.Store
	gen   TextGenerator
}

// New creates an Interpreter backed by the given store and text generator.
func New(s *store.Store, gen TextGenerator) *Interpreter {
	return &Interpreter{store: s, gen: gen}
}

// Process translates one instruction into a store operation and returns the
// single user-facing message. It never returns an error: every failure
// becomes a printed sentence.
func (i *Interpreter) Process(ctx context.Context, instruction string) string {
	snap, err := i.store.Snapshot()
	if err != nil {
		return fmt.Sprintf("Error processing command: %v", err)
	}

	prompt, err := buildPrompt(snap, instruction)
	if err != nil {
		return fmt.Sprintf("Error processing command: %v", err)
	}

	// The cost estimate is computed but not enforced.
	raw, _, err := i.gen.Generate(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Error processing command: %v", err)
	}

	cmd, ok := parseCommand(raw)
	if !ok {
		return parseFailureMessage
	}

	return i.execute(cmd)
}

// execute dispatches a parsed command to the store and returns the
// user-facing message.
func (i *Interpreter) execute(cmd Command) string {
	output := cmd.Output
	if output == "" {
		output = defaultOutput
	}

	switch cmd.Function {
	case "create_project":
		if _, err := i.store.CreateProject(cmd.arg("name"), cmd.arg("description")); err != nil {
			return fmt.Sprintf("Error executing create_project: %v", err)
		}
		return output

	case "add_task":
		_, err := i.store.AddTask(
			cmd.arg("project_name"),
			cmd.arg("title"),
			cmd.arg("description"),
			cmd.arg("priority"),
			cmd.optionalArg("due_date"),
		)
		if err != nil {
			return fmt.Sprintf("Error executing add_task: %v", err)
		}
		return output

	case "delete_task":
		identifier := cmd.arg("task_identifier")
		deleted, err := i.store.DeleteTask(identifier)
		if err != nil {
			return fmt.Sprintf("Error executing delete_task: %v", err)
		}
		if !deleted {
			return fmt.Sprintf("Could not find task '%s' to delete.", identifier)
		}
		return output

	case "complete_task":
		identifier := cmd.arg("task_identifier")
		updated, err := i.store.UpdateTaskStatus(identifier, "completed")
		if err != nil {
			return fmt.Sprintf("Error executing complete_task: %v", err)
		}
		if !updated {
			return fmt.Sprintf("Could not find task '%s' to complete.", identifier)
		}
		return output

	case "recommend_task", "discuss":
		// The model's generated text already carries the recommendation
		// or discussion; there is no local logic for either.
		return output

	default:
		return fmt.Sprintf("Unknown function: %s", cmd.Function)
	}
}
