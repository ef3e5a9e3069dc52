package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/models"
)

// Feed is the posts screen: the viewer's personal feed, grouped by followed
// author in follow-list order.
func (a *App) Feed(ctx context.Context) error {
	feed, err := a.posts.Feed(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(feed) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet. Follow someone or write a post!")
		return nil
	}

	for _, p := range feed {
		fmt.Fprintf(a.out, "#%d %s by %s %s (%s)\n", p.ID, p.Title, p.User.Name, p.User.Surname,
			p.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(a.out, "  %s\n", p.Message)
		fmt.Fprintf(a.out, "  %d like(s), %d comment(s)\n", len(p.Likes), len(p.Comments))
		for _, c := range p.Comments {
			fmt.Fprintf(a.out, "    %s: %s\n", c.UserName, c.Message)
		}
	}
	return nil
}

// AddPost prompts for a title and message and publishes the post as the
// current session user.
func (a *App) AddPost(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	message, err := GetMultiline(a.reader, "Enter message", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	post, err := a.posts.AddPost(ctx, models.PostDraft{Title: title, Message: message})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Posted #%d\n", post.ID)
	return nil
}

// Comment prompts for a message and attaches it to the given post.
func (a *App) Comment(ctx context.Context, arg string) error {
	postID, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: comment <post id>")
		return err
	}

	message, err := GetSimpleText(a.reader, "Enter comment", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if err := a.posts.AddComment(ctx, models.Comment{PostID: postID, Message: message}); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No post with id %d\n", postID)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Comment added")
	return nil
}

// Like toggles the current user's like on the given post.
func (a *App) Like(ctx context.Context, arg string) error {
	postID, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: like <post id>")
		return err
	}

	if err := a.posts.Like(ctx, postID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No post with id %d\n", postID)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Toggled like on #%d\n", postID)
	return nil
}
