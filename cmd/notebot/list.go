package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/storage"
)

var (
	listSubject string
	listFull    bool
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show saved notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}

		notes := filterNotes(a.store.LoadAll(ctx), listSubject, listLimit)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, notes)
		}
		if len(notes) == 0 {
			fmt.Fprintln(out, "Chưa có ghi chú nào.")
			return nil
		}
		for _, n := range notes {
			printNote(out, n, listFull, time.Now())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSubject, "subject", "s", "", "Only show notes of this subject")
	listCmd.Flags().BoolVar(&listFull, "full", false, "Print the full content and summary")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many notes (0 for all)")
}

// filterNotes keeps notes of subject (all when empty), newest first.
func filterNotes(notes []storage.Note, subject string, limit int) []storage.Note {
	subject = strings.TrimSpace(subject)
	out := make([]storage.Note, 0, len(notes))
	for _, n := range notes {
		if subject == "" || n.Subject == subject {
			out = append(out, n)
		}
	}
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func printNote(w io.Writer, n storage.Note, full bool, now time.Time) {
	fmt.Fprintf(w, "📝 %s - %s (%s)\n", n.Title, n.Subject, humanize.RelTime(n.Date, now, "trước", "sau"))
	fmt.Fprintf(w, "   %s\n", n.Date.Format(storage.DateLayout))
	if full {
		fmt.Fprintf(w, "\n   Tóm tắt:\n%s\n\n   Nội dung:\n%s\n", n.Summary, n.Content)
	} else {
		fmt.Fprintf(w, "   %s\n", preview(n.Summary, 120))
	}
	if n.AudioFile != "" {
		fmt.Fprintf(w, "   🎧 %s\n", n.AudioFile)
	}
	fmt.Fprintln(w)
}

func preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
