package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/trademinutes/tmclient/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	// settle mounts whatever page the last command navigated to.
	settle(ctx context.Context)

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Reset(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, route string) error
	EditProfile(ctx context.Context) error
	Skills(ctx context.Context, args []string) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Services(ctx context.Context, page int) error
	Service(ctx context.Context, slug string) error
	ToggleTheme(ctx context.Context) error
	Debug(ctx context.Context) error
	Back(ctx context.Context) error
}

const (
	helpPublic = "Available commands: login, register, reset <token>, services [page], service <slug>, theme, debug, back, exit"
	helpUser   = "Available commands: dashboard, profile, edit, skills [add|remove <skill>], (n)otifications, read <id>, readall, services [page], service <slug>, theme, debug, back, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the TradeMinutes CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. After every command the page the command navigated to is mounted.
// The loop exits on EOF, when ctx is done, or when the user types "exit" or
// "quit".
//
// Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("tm %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpUser)
			} else {
				printlnFn(helpPublic)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "reset":
			token := ""
			if len(args) > 0 {
				token = args[0]
			}
			cmdErr = a.Reset(ctx, token)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "home":
			cmdErr = a.Open(ctx, common.RouteHome)

		case "dashboard":
			cmdErr = a.Open(ctx, common.RouteDashboard)

		case "profile":
			cmdErr = a.Open(ctx, common.RouteProfile)

		case "edit":
			cmdErr = a.EditProfile(ctx)

		case "skills":
			cmdErr = a.Skills(ctx, args)

		case "n", "notifications":
			cmdErr = a.Open(ctx, common.RouteNotifications)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			cmdErr = a.MarkRead(ctx, args[0])

		case "readall":
			cmdErr = a.MarkAllRead(ctx)

		case "services":
			page := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					printlnFn("Usage: services [page]")
					continue
				}
				page = n
			}
			cmdErr = a.Services(ctx, page)

		case "service":
			if len(args) == 0 {
				printlnFn("Usage: service <slug>")
				continue
			}
			cmdErr = a.Service(ctx, args[0])

		case "theme":
			cmdErr = a.ToggleTheme(ctx)

		case "debug":
			cmdErr = a.Debug(ctx)

		case "back":
			cmdErr = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		a.settle(ctx)
	}
}
