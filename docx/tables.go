package docx

import "github.com/tsawler/docxparse/model"

// Tables returns every top-level table of the body in document order.
func (r *Reader) Tables() []model.DocTable {
	tables := make([]model.DocTable, 0, len(r.document.Body.Tables))
	for _, tbl := range r.document.Body.Tables {
		tables = append(tables, r.parseTable(tbl))
	}
	return tables
}

// parseTable converts a table node into a model.DocTable. Rows and cells are
// taken as the table lists them: merged cells are neither expanded nor
// padded, so rows may differ in length.
func (r *Reader) parseTable(tbl tableXML) model.DocTable {
	table := model.DocTable{
		Rows: make([][]model.Cell, 0, len(tbl.Rows)),
	}

	for _, row := range tbl.Rows {
		cells := make([]model.Cell, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, r.parseCell(cell))
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}

// parseCell parses a table cell's paragraphs.
func (r *Reader) parseCell(cell tableCellXML) model.Cell {
	parsed := model.Cell{
		Paragraphs: make([]model.Para, 0, len(cell.Paragraphs)),
	}
	for _, p := range cell.Paragraphs {
		parsed.Paragraphs = append(parsed.Paragraphs, r.parseParagraph(p))
	}
	return parsed
}
