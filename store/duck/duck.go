// Package duck loads tabular files into an in-memory DuckDB and serves
// filtered projections of them as frames.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/frame"
)

const table = "data"

type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filter   nt.Filter
	index    string
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a file, picking the reader from its extension
func (dk *Duck) Load(path string) (err error) {

	reader, err := readerFor(path)
	if err != nil {
		return
	}

	_, err = dk.db.Exec(fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", table, reader))
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path
	dk.logger.Info(context.Background(), "loaded", "path", path)
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return filepath.Base(dk.filename)
}

// SetIndex names the field shown as the index, or the row number when empty.
func (dk *Duck) SetIndex(field string) (err error) {

	if field != "" {
		err = dk.hasField(field)
		if err != nil {
			return
		}
	}

	dk.index = field
	return
}

// SetView sets the filter applied to Count and Source
func (dk *Duck) SetView(filter nt.Filter) (err error) {
	dk.filter = filter
	return nil
}

// Fields returns the loaded table's columns in order
func (dk *Duck) Fields() (fields []nt.Field, err error) {
	return getFields(dk.db)
}

// Count returns the number of rows passing the filter
func (dk *Duck) Count() (count int, err error) {

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, dk.buildWhereClause())
	err = dk.db.QueryRow(query).Scan(&count)
	err = errors.Wrapf(err, "failed to count rows")
	return
}

// Source queries the filtered rows and returns them as a frame of columns.
// An empty columns selects every field but the index.
func (dk *Duck) Source(columns []string) (src nt.TableSource, err error) {

	if len(columns) == 0 {
		columns, err = dk.allBut(dk.index)
		if err != nil {
			return
		}
	}

	index := "rowid"
	if dk.index != "" {
		index = quote(dk.index)
	}

	selects := []string{index}
	for _, column := range columns {
		selects = append(selects, quote(column))
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY rowid",
		strings.Join(selects, ", "), table, dk.buildWhereClause())

	rows, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", table)
		return
	}
	defer rows.Close()

	count, err := columnCount(rows)
	if err != nil {
		return
	}

	idx := []nt.Value{}
	values := [][]nt.Value{}
	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		row := make([]nt.Value, count-1)
		for i, val := range vals[1:] {
			row[i] = nt.Value{Raw: val}
		}

		idx = append(idx, nt.Value{Raw: vals[0]})
		values = append(values, row)
	}

	err = rows.Err()
	if err != nil {
		err = errors.Wrapf(err, "error iterating rows")
		return
	}

	frm, err := frame.New(columns, idx, values)
	if err != nil {
		return
	}

	src = frm
	return
}

// buildWhereClause converts the Filter to SQL WHERE clause
func (dk *Duck) buildWhereClause() string {

	clause := buildFilterExpr(dk.filter)
	if clause == "" {
		return ""
	}
	return "WHERE " + clause
}

// buildFilterExpr recursively builds filter expression (without WHERE prefix)
func buildFilterExpr(f nt.Filter) string {
	switch f.Op {
	case nt.Eq:
		return fmt.Sprintf("CAST(%s AS VARCHAR) = %s", quote(f.Field), literal(f.Value))
	case nt.Ne:
		return fmt.Sprintf("CAST(%s AS VARCHAR) != %s", quote(f.Field), literal(f.Value))
	case nt.Gt:
		return fmt.Sprintf("%s > %s", quote(f.Field), operand(f.Value))
	case nt.Gte:
		return fmt.Sprintf("%s >= %s", quote(f.Field), operand(f.Value))
	case nt.Lt:
		return fmt.Sprintf("%s < %s", quote(f.Field), operand(f.Value))
	case nt.Lte:
		return fmt.Sprintf("%s <= %s", quote(f.Field), operand(f.Value))
	case nt.Contains:
		return fmt.Sprintf("contains(lower(CAST(%s AS VARCHAR)), lower(%s))", quote(f.Field), literal(f.Value))
	case nt.Match:
		return fmt.Sprintf("regexp_matches(CAST(%s AS VARCHAR), %s)", quote(f.Field), literal(f.Value))
	case nt.And:
		return join(f.Children, " AND ")
	case nt.Or:
		return join(f.Children, " OR ")
	case nt.Not:
		if len(f.Children) > 0 {
			if expr := buildFilterExpr(f.Children[0]); expr != "" {
				return "NOT (" + expr + ")"
			}
		}
		return ""
	default:
		return ""
	}
}

// unexported

func join(children []nt.Filter, sep string) string {

	var clauses []string
	for _, child := range children {
		if expr := buildFilterExpr(child); expr != "" {
			clauses = append(clauses, expr)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, sep) + ")"
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func literal(val any) string {
	return "'" + strings.ReplaceAll(fmt.Sprintf("%v", val), "'", "''") + "'"
}

// operand leaves numbers bare so comparisons are numeric.
func operand(val any) string {

	num, err := nt.Value{Raw: val}.Number()
	if err != nil {
		return literal(val)
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

func readerFor(path string) (reader string, err error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		reader = fmt.Sprintf("read_csv_auto(%s)", literal(path))
	case ".tsv":
		reader = fmt.Sprintf("read_csv_auto(%s, delim='\\t')", literal(path))
	case ".parquet":
		reader = fmt.Sprintf("read_parquet(%s)", literal(path))
	case ".json", ".ndjson", ".jsonl":
		reader = fmt.Sprintf("read_json_auto(%s)", literal(path))
	default:
		err = errors.Errorf("unsupported file type: %s", path)
	}
	return
}

func (dk *Duck) hasField(name string) (err error) {

	fields, err := dk.Fields()
	if err != nil {
		return
	}

	for _, field := range fields {
		if field.Name == name {
			return
		}
	}

	err = errors.Errorf("no such field: %s", name)
	return
}

func (dk *Duck) allBut(skip string) (columns []string, err error) {

	fields, err := dk.Fields()
	if err != nil {
		return
	}

	for _, field := range fields {
		if field.Name != skip {
			columns = append(columns, field.Name)
		}
	}
	return
}

func columnCount(rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get cols from query rows")
	}
	return len(cols), nil
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func getFields(db *sql.DB) (fields []nt.Field, err error) {

	rows, err := db.Query(fmt.Sprintf(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = '%s'
		ORDER BY ordinal_position
	`, table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}
