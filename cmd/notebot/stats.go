package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show note and audio counts and storage locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cmd)
		if err != nil {
			return err
		}

		st := a.store.Stats(ctx)
		loc := a.store.Locations()

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, struct {
				storage.Stats
				Locations storage.Locations `json:"locations"`
			}{st, loc})
		}

		fmt.Fprintln(out, "📊 Thống kê")
		fmt.Fprintf(out, "- Tổng số ghi chú: %s\n", humanize.Comma(int64(st.NoteCount)))
		fmt.Fprintf(out, "- File âm thanh: %s\n", humanize.Comma(int64(st.AudioCount)))
		fmt.Fprintf(out, "- File ghi chú: %s\n", humanize.Comma(int64(st.TextCount)))
		fmt.Fprintf(out, "- Dung lượng âm thanh: %.2f MB (%s)\n", st.TotalAudioSizeMB, humanize.IBytes(uint64(st.TotalAudioBytes)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "💾 Vị trí lưu trữ")
		fmt.Fprintf(out, "- Ghi chú: %s\n- Âm thanh: %s\n- Văn bản: %s\n", loc.NotesFile, loc.AudioDir, loc.TextDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
