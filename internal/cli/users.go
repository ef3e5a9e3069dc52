package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/olehkhomyk/feedline/internal/common"
)

// Users is the users-list screen: every account with its follow state
// relative to the current session user.
func (a *App) Users(ctx context.Context) error {
	cur, err := a.users.CurrentUser()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	for _, u := range a.users.AllUsers() {
		marker := " "
		switch {
		case u.ID == cur.ID:
			marker = "*"
		case containsID(cur.Follows, u.ID):
			marker = "+"
		}
		status := "offline"
		if u.Online {
			status = "online"
		}
		fmt.Fprintf(a.out, "%s #%d %s %s (%s)\n", marker, u.ID, u.Name, u.Surname, status)
	}
	fmt.Fprintln(a.out, "(* you, + following)")
	return nil
}

// Follow adds the given user id to the current user's follow list.
func (a *App) Follow(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: follow <id>")
		return err
	}

	if err := a.users.AddFollow(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No user with id %d\n", id)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Now following #%d\n", id)
	return nil
}

// Unfollow removes the given user id from the current user's follow list.
func (a *App) Unfollow(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: unfollow <id>")
		return err
	}

	if err := a.users.RemoveFollow(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Unfollowed #%d\n", id)
	return nil
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
