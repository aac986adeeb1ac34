package reporter

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName   = "Times New Roman"
	fontSize   = 13
	titleSize  = 16
	textColor  = "000000"
	errorColor = "C00000"
)

// reportToDocx renders the same lines as the text report into a styled docx file.
// The stem is bold; failed files are shown in red.
func reportToDocx(summary Summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), Title, true, titleSize, textColor)
	addStyledRun(doc.AddParagraph(""), strings.Repeat("=", dividerWidth), false, fontSize, textColor)

	for _, e := range summary.Entries {
		color := textColor
		if e.Failed() {
			color = errorColor
		}
		p := doc.AddParagraph("")
		addStyledRun(p, e.Stem+": ", true, fontSize, color)
		addStyledRun(p, e.Label, false, fontSize, color)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%s%d", totalPrefix, summary.Processed), true, fontSize, textColor)

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64, color string) {
	run := p.AddText(text).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}
