package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// writeDocx renders note as a styled Word document next to its text export.
// The summary is treated as markdown; the content as plain paragraphs.
func (s *implStore) writeDocx(note Note) (string, error) {
	if err := os.MkdirAll(s.paths.Text, 0755); err != nil {
		return "", fmt.Errorf("create text dir: %w", err)
	}

	outputPath := filepath.Join(s.paths.Text, companionBase(note)+".docx")
	if _, err := os.Stat(outputPath); err == nil {
		// Keep the first export of a same-second pair
		f, err := createUnique(s.paths.Text, companionBase(note), ".docx")
		if err != nil {
			return "", err
		}
		f.Close()
		outputPath = f.Name()
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", err
	}

	addStyledRun(doc.AddParagraph(""), note.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), "Môn học: "+note.Subject, false, fontSize)
	addStyledRun(doc.AddParagraph(""), "Thời gian: "+note.Date.Format(DateLayout), false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "TÓM TẮT", true, 15)
	for _, line := range strings.Split(note.Summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}
		addRichText(doc.AddParagraph(""), trimmed)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "NỘI DUNG ĐẦY ĐỦ", true, 15)
	for _, para := range strings.Split(note.Content, "\n") {
		if para = strings.TrimSpace(para); para != "" {
			doc.AddParagraph("").AddText(para).Font(fontName).Size(fontSize).Color("000000")
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
