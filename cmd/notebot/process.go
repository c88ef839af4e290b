package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/notebook"
	"github.com/nguyentantai21042004/notebot/internal/subject"
)

var (
	processSubject string
	processYes     bool
)

var processCmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Transcribe and summarize a lecture recording, then save it on confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}

		if processSubject == "" {
			processSubject = a.cfg.Notes.DefaultSubject
		}
		if !subject.Known(processSubject) {
			a.log.Warn(ctx, "Unknown subject %q, using the generic outline", processSubject)
		}

		nb, err := a.notebook(ctx, true)
		if err != nil {
			return err
		}

		draft, err := nb.Process(ctx, args[0], processSubject)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := printJSON(out, draft); err != nil {
				return err
			}
		} else {
			printDraft(out, draft)
		}

		if !processYes && !confirm(cmd.InOrStdin(), out, "Lưu ghi chú này? [y/N] ") {
			fmt.Fprintln(out, "Không lưu. File âm thanh vẫn được giữ tại:", draft.AudioFile)
			return nil
		}

		note, err := nb.SaveDraft(ctx, draft)
		if err != nil {
			return fmt.Errorf("save failed: %w", err)
		}
		printSaved(out, note)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVarP(&processSubject, "subject", "s", "", "Subject of the lecture (see 'notebot subjects')")
	processCmd.Flags().BoolVarP(&processYes, "yes", "y", false, "Save without asking for confirmation")
}

func printDraft(w io.Writer, d notebook.Draft) {
	fmt.Fprintf(w, "📄 Văn bản gốc\n%s\n\n", d.Transcript)
	fmt.Fprintf(w, "📝 Văn bản đã sửa\n%s\n\n", d.Content)
	if d.Corrected {
		fmt.Fprintln(w, "ℹ️ Văn bản đã được sửa và cải thiện chất lượng.")
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "✨ Tóm tắt học thuật - %s\n%s\n\n", d.Subject, d.Summary)
}

func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "c", "có":
		return true
	default:
		return false
	}
}
