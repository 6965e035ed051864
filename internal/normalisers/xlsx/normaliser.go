// Package xlsx normalises Excel (.xlsx) workbooks into Markdown-style
// pipe tables, one section per sheet.
package xlsx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles XLSX workbooks.
type Normaliser struct{}

// New creates a new XLSX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{"xlsx"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise renders every worksheet as a pipe table with a separator
// after the header row. Each sheet becomes a level-2 section in
// workbook order.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawSource) (*domain.SourceDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, domain.ErrUnreadableFile
	}

	wb, err := newWorkbook(reader)
	if err != nil {
		return nil, err
	}

	var rawContent strings.Builder
	var docSections []domain.ContentSection

	for _, sheet := range wb.sheets {
		rows, err := wb.sheetRows(sheet.target)
		if err != nil {
			return nil, err
		}

		var sheetText strings.Builder
		sheetText.WriteString("## " + sheet.name + "\n\n")
		for i, cells := range rows {
			sheetText.WriteString("| " + strings.Join(cells, " | ") + " |\n")
			if i == 0 {
				separators := make([]string, len(cells))
				for j := range separators {
					separators[j] = "---"
				}
				sheetText.WriteString("| " + strings.Join(separators, " | ") + " |\n")
			}
		}

		rawContent.WriteString(sheetText.String() + "\n\n")
		docSections = append(docSections, domain.ContentSection{
			Title:   sheet.name,
			Content: sheetText.String(),
			Level:   2,
			Role:    domain.RoleOther,
		})
	}

	if strings.TrimSpace(rawContent.String()) == "" {
		return nil, domain.ErrTextExtractionFailed
	}

	return &domain.SourceDocument{
		ID:            uuid.New().String(),
		FileName:      raw.FileName,
		Type:          domain.TypeXlsx,
		ImportedAt:    time.Now(),
		RawContent:    rawContent.String(),
		Sections:      docSections,
		IsWebResource: raw.IsWebResource,
		SourceURL:     raw.SourceURL,
	}, nil
}

// sheetRef is a worksheet resolved to its part path inside the archive.
type sheetRef struct {
	name   string
	target string
}

// workbook holds the parsed archive index needed to read sheets.
type workbook struct {
	reader        *zip.Reader
	sheets        []sheetRef
	sharedStrings []string
}

func newWorkbook(reader *zip.Reader) (*workbook, error) {
	wb := &workbook{reader: reader}

	var book struct {
		Sheets struct {
			Sheet []struct {
				Name string `xml:"name,attr"`
				RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
			} `xml:"sheet"`
		} `xml:"sheets"`
	}
	if err := wb.unmarshalPart("xl/workbook.xml", &book); err != nil {
		return nil, domain.ErrInvalidStructure
	}

	var rels struct {
		Relationship []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := wb.unmarshalPart("xl/_rels/workbook.xml.rels", &rels); err != nil {
		return nil, domain.ErrInvalidStructure
	}
	targets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		targets[rel.ID] = rel.Target
	}

	for i, sheet := range book.Sheets.Sheet {
		target, ok := targets[sheet.RID]
		if !ok {
			continue
		}
		if !strings.HasPrefix(target, "/") {
			target = path.Join("xl", target)
		} else {
			target = strings.TrimPrefix(target, "/")
		}
		name := sheet.Name
		if name == "" {
			name = "Sheet" + strconv.Itoa(i+1)
		}
		wb.sheets = append(wb.sheets, sheetRef{name: name, target: target})
	}

	// Shared strings are optional in a minimal workbook.
	var shared struct {
		SI []struct {
			T string `xml:"t"`
			R []struct {
				T string `xml:"t"`
			} `xml:"r"`
		} `xml:"si"`
	}
	if err := wb.unmarshalPart("xl/sharedStrings.xml", &shared); err == nil {
		for _, si := range shared.SI {
			text := si.T
			for _, r := range si.R {
				text += r.T
			}
			wb.sharedStrings = append(wb.sharedStrings, text)
		}
	}

	return wb, nil
}

// sheetRows reads a worksheet part and resolves each cell to its
// string value, in document order.
func (wb *workbook) sheetRows(target string) ([][]string, error) {
	var sheet struct {
		SheetData struct {
			Row []struct {
				C []struct {
					Type string `xml:"t,attr"`
					V    string `xml:"v"`
					IS   struct {
						T string `xml:"t"`
					} `xml:"is"`
				} `xml:"c"`
			} `xml:"row"`
		} `xml:"sheetData"`
	}
	if err := wb.unmarshalPart(target, &sheet); err != nil {
		return nil, domain.ErrInvalidStructure
	}

	rows := make([][]string, 0, len(sheet.SheetData.Row))
	for _, row := range sheet.SheetData.Row {
		cells := make([]string, 0, len(row.C))
		for _, c := range row.C {
			cells = append(cells, wb.cellValue(c.Type, c.V, c.IS.T))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (wb *workbook) cellValue(cellType, value, inline string) string {
	switch cellType {
	case "s":
		index, err := strconv.Atoi(value)
		if err != nil || index < 0 || index >= len(wb.sharedStrings) {
			return value
		}
		return wb.sharedStrings[index]
	case "inlineStr":
		return inline
	default:
		return value
	}
}

func (wb *workbook) unmarshalPart(name string, v any) error {
	for _, file := range wb.reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}
		return xml.Unmarshal(content, v)
	}
	return io.EOF
}
