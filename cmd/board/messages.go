package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Wyydra/board/internal/app"
	"github.com/Wyydra/board/internal/core/domain"
	"github.com/Wyydra/board/internal/core/service"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(cmd, func(ctx context.Context, board *service.BoardService) error {
			return board.Fetch(ctx)
		})
	},
}

var postCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Add a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if domain.IsBlank(args[0]) {
			return fmt.Errorf("%w: message is empty", domain.ErrEmptyContent)
		}
		return withBoard(cmd, func(ctx context.Context, board *service.BoardService) error {
			return board.Post(ctx, args[0])
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a message by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := domain.ParseMessageID(args[0])
		return withBoard(cmd, func(ctx context.Context, board *service.BoardService) error {
			if err := board.Fetch(ctx); err != nil {
				return err
			}
			return board.Delete(ctx, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd, postCmd, deleteCmd)
}

// withBoard runs op against a board with no live subscribers and prints the
// resulting snapshot.
func withBoard(cmd *cobra.Command, op func(ctx context.Context, board *service.BoardService) error) error {
	ctx := cmd.Context()
	collection, closeCollection, err := app.NewCollection(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCollection()

	board := service.NewBoardService(collection, nil, cfg.RequestTimeout)
	opErr := op(ctx, board)

	state := board.State()
	if state.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), color.Red.Sprint(state.Error))
	}
	if opErr != nil {
		if state.Error != "" {
			return reportedError{opErr}
		}
		return opErr
	}
	renderMessages(cmd.OutOrStdout(), state.Messages)
	return nil
}

// reportedError has already been shown to the user as the board banner.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func renderMessages(w io.Writer, messages []domain.Message) {
	if len(messages) == 0 {
		fmt.Fprintln(w, color.Gray.Sprint("No messages yet"))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Created", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		table.Append([]string{m.ID.String(), m.CreatedAt.Local().Format(time.DateTime), m.Content})
	}
	table.Render()
}
