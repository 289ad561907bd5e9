// Package pdfdoc is the document-table collaborator: it turns a statement
// PDF into the page/table/text structure the extraction pipeline consumes.
// Row-text PDFs surface as one single-column table per page (one cell per
// printed row) alongside a plain-text rendering for the fallback scanner.
package pdfdoc

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/mintbomb27/cc-wrapped/extractor/common"
)

// Open decodes the statement at path. password may be empty; it is only
// consulted when the file is encrypted.
func Open(path, password string) (*common.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromReader(file, name, password)
}

// FromReader decodes a statement from an open stream.
func FromReader(reader io.Reader, name, password string) (*common.Document, error) {
	rAt, size, err := readerAt(reader)
	if err != nil {
		return nil, err
	}

	r, err := openReader(rAt, size, password)
	if err != nil {
		return nil, err
	}

	doc := &common.Document{Source: name}

	for no := 1; no <= r.NumPage(); no++ {
		page := r.Page(no)
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("WARN error getting text from page %d: %v", no, err)
			continue
		}

		var table common.Table
		var lines []string
		for _, row := range rows {
			var builder strings.Builder
			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}
			if builder.Len() == 0 {
				continue
			}
			line := builder.String()
			table = append(table, common.Cells(line))
			lines = append(lines, line)
		}

		doc.Pages = append(doc.Pages, common.Page{
			Tables: []common.Table{table},
			Text:   strings.Join(lines, "\n"),
		})
	}

	return doc, nil
}

func openReader(rAt io.ReaderAt, size int64, password string) (*pdf.Reader, error) {
	if password != "" {
		return pdf.NewReaderEncrypted(rAt, size, func() string { return password })
	}
	return pdf.NewReader(rAt, size)
}

// readerAt adapts an arbitrary reader into the ReaderAt+size pair the pdf
// library needs, buffering into memory when necessary.
func readerAt(reader io.Reader) (io.ReaderAt, int64, error) {
	if rAt, ok := reader.(io.ReaderAt); ok {
		seeker, ok := reader.(io.Seeker)
		if !ok {
			return nil, 0, errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
		}
		cur, _ := seeker.Seek(0, io.SeekCurrent)
		end, _ := seeker.Seek(0, io.SeekEnd)
		seeker.Seek(cur, io.SeekStart)
		return rAt, end, nil
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, 0, err
	}
	b := buf.Bytes()
	return bytes.NewReader(b), int64(len(b)), nil
}
