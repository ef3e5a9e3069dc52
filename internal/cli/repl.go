package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	Register(ctx context.Context) error
	Users(ctx context.Context) error
	Follow(ctx context.Context, arg string) error
	Unfollow(ctx context.Context, arg string) error
	Feed(ctx context.Context) error
	AddPost(ctx context.Context) error
	Comment(ctx context.Context, arg string) error
	Like(ctx context.Context, arg string) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read, eval, print loop over the feedline screens.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. The reader is the same buffered
// reader the prompt helpers use, so input typed (or piped) after a command
// is never swallowed by a second buffer on the same descriptor. Unknown
// commands are reported back to the user. The loop exits on reader EOF or
// when the user types "exit" or "quit".
//
// Signed out the available commands are register, login and exit; signed in
// they are users, follow <id>, unfollow <id>, posts, post, comment <id>,
// like <id>, whoami, logout and exit.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("feedline> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, follow <id>, unfollow <id>, posts, post, comment <id>, like <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "login":
			_ = a.SignIn(ctx)

		case "register":
			_ = a.Register(ctx)

		case "users":
			_ = a.Users(ctx)

		case "follow":
			_ = a.Follow(ctx, arg)

		case "unfollow":
			_ = a.Unfollow(ctx, arg)

		case "posts", "feed":
			_ = a.Feed(ctx)

		case "post":
			_ = a.AddPost(ctx)

		case "comment":
			_ = a.Comment(ctx, arg)

		case "like":
			_ = a.Like(ctx, arg)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
