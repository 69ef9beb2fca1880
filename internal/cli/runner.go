package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/todor/internal/apiclient"
	"github.com/idilsaglam/todor/internal/config"
	"github.com/idilsaglam/todor/internal/model"
	"github.com/idilsaglam/todor/internal/state"
	"github.com/idilsaglam/todor/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // print output grouped by pending/done
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	c := apiclient.New(config.Get())
	return run(c, args, opt)
}

func run(c *apiclient.Client, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(c)

	case "print":
		return doPrint(c, opt)

	case "users":
		return doUsers(c)

	case "add":
		if len(a) < 2 {
			ui.Fail("usage: todor add <userId> <title...>")
			return 2
		}
		uid, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("add: not a user id: " + a[0])
			return 2
		}
		return doAdd(c, uid, strings.Join(a[1:], " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: todor done <id>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(c, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todor rm <id>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(c, n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todor - a terminal front end for a remote todo API

Usage:
  todor [-group] <subcommand> [args]

Subcommands:
  ls                 Browse todos (interactive TUI)
  print              Print todos to stdout (-group splits pending/done)
  users              List users
  add <userId> <title...>   Create a todo for a user
  done <id>          Toggle completed for the todo with that id
  rm <id>            Delete the todo with that id

Examples:
  todor add 1 "Buy milk"
  todor ls
  todor done 10
  todor rm 10
`)
}

// ---------------------------------------------------
// Subcommands (all drive the remote gateway)
// ---------------------------------------------------

func doList(c *apiclient.Client) int {
	if err := ui.Run(c, state.NewStore()); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doPrint(c *apiclient.Client, opt Options) int {
	ctx := context.Background()
	users, err := c.Users(ctx)
	if err != nil {
		ui.Fail("fetch users: " + err.Error())
		return 1
	}
	todos, err := c.Todos(ctx)
	if err != nil {
		ui.Fail("fetch todos: " + err.Error())
		return 1
	}
	snap := state.Load(users, todos)

	line := func(t model.Todo) string {
		author, ok := snap.UserName(t.UserID)
		if !ok {
			author = "unknown"
		}
		box := "☐"
		if t.Completed {
			box = "☑"
		}
		return fmt.Sprintf("%s #%-4d %s %s", box, t.ID, t.Title, ui.Muted("by "+author))
	}

	done := 0
	var lines []string
	if opt.Group {
		var pending, finished []string
		for _, t := range todos {
			if t.Completed {
				done++
				finished = append(finished, line(t))
			} else {
				pending = append(pending, line(t))
			}
		}
		lines = append(lines, "Pending")
		lines = append(lines, pending...)
		lines = append(lines, "", "Done")
		lines = append(lines, finished...)
	} else {
		for _, t := range todos {
			if t.Completed {
				done++
			}
			lines = append(lines, line(t))
		}
	}
	lines = append(lines, "", ui.ProgressBar(done, len(todos), 28))
	ui.Panel(lines)
	return 0
}

func doUsers(c *apiclient.Client) int {
	users, err := c.Users(context.Background())
	if err != nil {
		ui.Fail("fetch users: " + err.Error())
		return 1
	}
	var lines []string
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("#%-4d %s", u.ID, u.Name))
	}
	ui.Panel(lines)
	return 0
}

func doAdd(c *apiclient.Client, userID int, title string) int {
	todo, err := c.CreateTodo(context.Background(), userID, title)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 1
	}
	ui.Ok(fmt.Sprintf("added #%d", todo.ID))
	return 0
}

func doToggle(c *apiclient.Client, id int) int {
	ctx := context.Background()
	todos, err := c.Todos(ctx)
	if err != nil {
		ui.Fail("fetch todos: " + err.Error())
		return 1
	}
	var current *model.Todo
	for i := range todos {
		if todos[i].ID == id {
			current = &todos[i]
			break
		}
	}
	if current == nil {
		ui.Fail(fmt.Sprintf("no todo with id %d", id))
		fmt.Fprintln(os.Stderr, ui.Muted("Hint: run `todor print` to see valid ids"))
		return 2
	}
	updated, err := c.SetCompleted(ctx, id, !current.Completed)
	if err != nil {
		ui.Fail("done: " + err.Error())
		return 1
	}
	if updated.Completed {
		ui.Ok(fmt.Sprintf("#%d marked done", id))
	} else {
		ui.Ok(fmt.Sprintf("#%d marked pending", id))
	}
	return 0
}

func doRemove(c *apiclient.Client, id int) int {
	if err := c.DeleteTodo(context.Background(), id); err != nil {
		ui.Fail("rm: " + err.Error())
		return 1
	}
	ui.Ok(fmt.Sprintf("removed #%d", id))
	return 0
}
