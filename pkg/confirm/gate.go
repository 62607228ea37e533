// Package confirm implements the per-operation go/no-go decision. The
// interactive console gate is the only suspension point in the main
// control flow; the auto and policy gates exist so headless runs inject a
// different strategy instead of new control flow.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/style"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// Gate decides whether one operation proceeds.
type Gate interface {
	// Confirm returns true when the operation should run. A false return
	// means the operation is recorded as skipped ("user declined").
	Confirm(desc types.OperationDescriptor) (bool, error)

	// Ask poses a nested yes/no question from inside an operation body,
	// using the same strategy as the per-operation decision.
	Ask(prompt string) (bool, error)
}

// AutoGate approves everything without I/O. Used for --yes and dry runs.
type AutoGate struct{}

// NewAutoGate creates a gate that always approves.
func NewAutoGate() *AutoGate {
	return &AutoGate{}
}

// Confirm always returns true.
func (g *AutoGate) Confirm(types.OperationDescriptor) (bool, error) {
	return true, nil
}

// Ask always returns true.
func (g *AutoGate) Ask(string) (bool, error) {
	return true, nil
}

// ConsoleGate prompts on the terminal and blocks on a single line read.
// An empty answer defaults to yes; anything not starting with y declines.
type ConsoleGate struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleGate creates a gate reading answers from in and writing
// prompts to out.
func NewConsoleGate(in io.Reader, out io.Writer) *ConsoleGate {
	return &ConsoleGate{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm renders the operation's identity with risk-appropriate wording
// and waits for the answer.
func (g *ConsoleGate) Confirm(desc types.OperationDescriptor) (bool, error) {
	fmt.Fprintf(g.out, "\n%s %s\n", style.RiskBadge(desc.Risk), style.Bold(desc.ID))
	fmt.Fprintf(g.out, "  %s\n", desc.Description)

	switch desc.Risk {
	case types.RiskMedium:
		fmt.Fprintf(g.out, "  %s This touches system services; a re-run is safe but the effect is immediate.\n", style.WarningIndicator)
	case types.RiskHigh:
		fmt.Fprintf(g.out, "  %s Destructive action: this rebuilds system state and can take a long time to undo.\n", style.ErrorIndicator)
	}

	return g.prompt(fmt.Sprintf("Run %s? [Y/n]: ", desc.ID))
}

// Ask poses a nested question with the same yes-default semantics.
func (g *ConsoleGate) Ask(prompt string) (bool, error) {
	return g.prompt(fmt.Sprintf("%s [Y/n]: ", prompt))
}

func (g *ConsoleGate) prompt(question string) (bool, error) {
	fmt.Fprint(g.out, question)

	line, err := g.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrConfirmRead, "failed to read confirmation answer")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return true, nil
	}
	return strings.HasPrefix(answer, "y"), nil
}
