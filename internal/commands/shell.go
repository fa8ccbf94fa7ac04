package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manudejuan/home-finance/internal/activity"
	"github.com/manudejuan/home-finance/internal/expenses"
	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/importer"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/money"
	"github.com/manudejuan/home-finance/internal/render"
	"github.com/manudejuan/home-finance/internal/session"
)

const shellHelp = `Commands:
  add <name> <amount> [YYYY-MM-DD]   add an expense (quote names with spaces)
  edit <id>                          start editing an expense
  set name|amount|date <value>       change the expense being edited
  save | cancel                      commit or discard the edit
  rm <id>                            remove an expense
  fixed <name> <amount>              add a fixed budget line
  income <amount>                    set monthly income
  goal <amount>                      set the savings goal (0 turns it off)
  months <n>                         set the projection horizon
  import <file.csv> [finance|chase]  add expenses from a CSV export
  show [summary|expenses|budgets|savings]
  log                                print the activity log as CSV
  help | quit
`

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

func newShellCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive budgeting session",
		Long:  "Read commands from stdin and apply them to one in-memory session.\n\n" + shellHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cfg, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			sh := &shell{cmd: cmd, s: s, currency: cfg.Currency, out: cmd.OutOrStdout()}
			return sh.run(cmd.InOrStdin())
		},
	}
}

type shell struct {
	cmd      *cobra.Command
	s        *session.Session
	currency string
	out      io.Writer
}

func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(sh.out, "> ")
	for scanner.Scan() {
		err := sh.exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
		fmt.Fprint(sh.out, "> ")
	}
	fmt.Fprintln(sh.out)
	return scanner.Err()
}

// exec runs one command line. Returned errors are reported to the user and
// never end the session, except errQuit.
func (sh *shell) exec(line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "add":
		return sh.add(args)
	case "edit":
		return sh.edit(args)
	case "set":
		return sh.set(args)
	case "save":
		return sh.save()
	case "cancel":
		sh.s.CancelEdit()
		return nil
	case "rm", "remove":
		return sh.remove(args)
	case "fixed":
		return sh.fixed(args)
	case "income":
		if len(args) != 1 {
			return errors.New("usage: income <amount>")
		}
		sh.s.SetIncome(args[0])
		fmt.Fprintf(sh.out, "Income: %s\n", money.Format(sh.currency, sh.s.Income()))
		return nil
	case "goal":
		if len(args) != 1 {
			return errors.New("usage: goal <amount>")
		}
		return sh.s.SetSavingsGoal(args[0])
	case "months":
		if len(args) != 1 {
			return errors.New("usage: months <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("months: %w", err)
		}
		return sh.s.SetMonths(n)
	case "import":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: import <file.csv> [format]")
		}
		format := importer.DefaultFormat
		if len(args) == 2 {
			format = args[1]
		}
		return importFile(sh.cmd, sh.s, args[0], format)
	case "show", "ls":
		return sh.show(args)
	case "log":
		return activity.Write(sh.out, sh.s.Activity())
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", name)
}

func (sh *shell) add(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: add <name> <amount> [YYYY-MM-DD]")
	}
	date := ""
	if len(args) == 3 {
		date = args[2]
	}
	e, err := sh.s.AddExpense(args[0], args[1], date)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Added %s %s %s\n", id.Format(e.ID), e.Name, money.Format(sh.currency, e.Amount))
	return nil
}

func (sh *shell) edit(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: edit <id>")
	}
	expenseID, err := id.Parse(args[0])
	if err != nil {
		return err
	}
	e, err := sh.s.EditExpense(expenseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Editing %s %s %s %s\n", id.Format(e.ID), e.Name,
		money.Format(sh.currency, e.Amount), e.Date.Format(expenses.DateFormat))
	return nil
}

func (sh *shell) set(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set name|amount|date <value>")
	}
	var patch model.ExpensePatch
	switch strings.ToLower(args[0]) {
	case "name":
		patch.Name = &args[1]
	case "amount":
		// Typed draft amounts that are not numbers count as 0.
		amt := money.ParseOrZero(args[1])
		patch.Amount = &amt
	case "date":
		d, err := time.Parse(expenses.DateFormat, args[1])
		if err != nil {
			return fmt.Errorf("date %q: expected YYYY-MM-DD", args[1])
		}
		patch.Date = &d
	default:
		return fmt.Errorf("unknown field %q", args[0])
	}
	_, err := sh.s.UpdateDraft(patch)
	return err
}

func (sh *shell) save() error {
	e, err := sh.s.SaveEditedExpense()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Saved %s %s %s\n", id.Format(e.ID), e.Name, money.Format(sh.currency, e.Amount))
	return nil
}

func (sh *shell) remove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}
	expenseID, err := id.Parse(args[0])
	if err != nil {
		return err
	}
	if sh.s.RemoveExpense(expenseID) {
		fmt.Fprintf(sh.out, "Removed %s\n", id.Format(expenseID))
	} else {
		fmt.Fprintf(sh.out, "No expense %s\n", id.Format(expenseID))
	}
	return nil
}

func (sh *shell) fixed(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: fixed <name> <amount>")
	}
	b, err := sh.s.AddFixedExpense(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Added fixed budget %s %s (spent %s)\n", b.Name,
		money.Format(sh.currency, b.Amount), money.Format(sh.currency, b.Spent))
	return nil
}

func (sh *shell) show(args []string) error {
	what := "all"
	if len(args) > 0 {
		what = strings.ToLower(args[0])
	}
	switch what {
	case "all":
		printReport(sh.out, sh.s, sh.currency)
	case "summary":
		fmt.Fprint(sh.out, render.Summary(sh.s.Snapshot(), sh.currency))
	case "expenses":
		fmt.Fprint(sh.out, render.Expenses(sh.s.Expenses(), currentDraft(sh.s), sh.currency))
	case "budgets", "fixed":
		fmt.Fprint(sh.out, render.FixedBudgets(sh.s.FixedBudgets(), sh.currency))
	case "savings", "goal":
		fmt.Fprint(sh.out, render.Savings(sh.s.Projection(), sh.currency))
	default:
		return fmt.Errorf("unknown view %q", what)
	}
	return nil
}

// splitArgs splits a command line on whitespace. Single or double quotes
// group words; there are no escapes.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
