package bio

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const documentPart = "word/document.xml"

// extractParagraphs pulls the visible text out of a .docx package: one
// string per w:p element directly under w:body, with every nested w:t
// run concatenated and trimmed, blank paragraphs dropped. Any structural
// problem (not a zip, missing part, malformed XML) yields nil.
func extractParagraphs(path string) []string {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil
	}
	defer zr.Close()

	part, err := zr.Open(documentPart)
	if err != nil {
		return nil
	}
	defer part.Close()

	dec := xml.NewDecoder(part)

	var (
		stack      []xml.Name
		paragraphs []string
		text       strings.Builder
		paraDepth  = -1
		textDepth  int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case paraDepth == -1 && isWord(el.Name, "p") && len(stack) > 0 && isWord(stack[len(stack)-1], "body"):
				paraDepth = len(stack)
				text.Reset()
			case paraDepth != -1 && isWord(el.Name, "t"):
				textDepth++
			}
			stack = append(stack, el.Name)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if textDepth > 0 && isWord(el.Name, "t") {
				textDepth--
			}
			if paraDepth != -1 && len(stack) == paraDepth {
				if paragraph := strings.TrimSpace(text.String()); paragraph != "" {
					paragraphs = append(paragraphs, paragraph)
				}
				paraDepth = -1
			}
		case xml.CharData:
			if textDepth > 0 {
				text.Write(el)
			}
		}
	}
	return paragraphs
}

func isWord(name xml.Name, local string) bool {
	return name.Space == wordNamespace && name.Local == local
}
