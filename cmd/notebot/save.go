package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/notebook"
	"github.com/nguyentantai21042004/notebot/internal/storage"
)

var (
	saveSubject     string
	saveContentFile string
	saveSummaryFile string
	saveAudio       string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a note from existing transcript and summary files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}

		content, err := readInput(cmd.InOrStdin(), saveContentFile)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		summary, err := readInput(cmd.InOrStdin(), saveSummaryFile)
		if err != nil {
			return fmt.Errorf("read summary: %w", err)
		}

		nb, err := a.notebook(ctx, false)
		if err != nil {
			return err
		}

		note, err := saveNote(ctx, a.store, nb, notebook.NewNote{
			Subject: saveSubject,
			Content: content,
			Summary: summary,
		}, saveAudio)
		if err != nil {
			return fmt.Errorf("save failed: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), note)
		}
		printSaved(cmd.OutOrStdout(), note)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVarP(&saveSubject, "subject", "s", "", "Subject of the note")
	saveCmd.Flags().StringVar(&saveContentFile, "content-file", "", "File holding the corrected transcript ('-' for stdin)")
	saveCmd.Flags().StringVar(&saveSummaryFile, "summary-file", "", "File holding the summary ('-' for stdin)")
	saveCmd.Flags().StringVar(&saveAudio, "audio", "", "Recording to archive with the note")
	saveCmd.MarkFlagRequired("subject")
	saveCmd.MarkFlagRequired("content-file")
	saveCmd.MarkFlagRequired("summary-file")
}

// saveNote archives audioSrc, when given, and saves the note referencing it.
// The archived copy is removed again if the note is not saved.
func saveNote(ctx context.Context, store storage.Store, nb notebook.Notebook, note notebook.NewNote, audioSrc string) (storage.Note, error) {
	if audioSrc != "" {
		f, err := os.Open(audioSrc)
		if err != nil {
			return storage.Note{}, fmt.Errorf("open audio: %w", err)
		}
		note.AudioFile, err = store.SaveAudio(ctx, filepath.Base(audioSrc), f)
		f.Close()
		if err != nil {
			return storage.Note{}, err
		}
	}

	saved, err := nb.Save(ctx, note)
	if err != nil {
		if note.AudioFile != "" {
			os.Remove(note.AudioFile)
		}
		return storage.Note{}, err
	}
	return saved, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func printSaved(w io.Writer, note storage.Note) {
	fmt.Fprintln(w, "✅ Đã lưu ghi chú thành công!")
	fmt.Fprintf(w, "- Tiêu đề: %s\n- Môn học: %s\n- Thời gian: %s\n", note.Title, note.Subject, note.Date.Format(storage.DateLayout))
	if note.TextFile != "" {
		fmt.Fprintf(w, "- File ghi chú: %s\n", note.TextFile)
	}
	if note.AudioFile != "" {
		fmt.Fprintf(w, "- File âm thanh: %s\n", note.AudioFile)
	}
}
