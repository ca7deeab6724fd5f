// Package dataframe is a small immutable in-memory table, built from
// local rows the way a session builds a frame from literal data.
package dataframe

import (
	"errors"
	"fmt"
)

var (
	ErrArityMismatch   = errors.New("row arity does not match columns")
	ErrTypeMismatch    = errors.New("value type does not match column type")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrInvalidColumns  = errors.New("invalid columns")
)

// Row is a single row; values are in schema order
type Row []any

// DataFrame is an immutable table
type DataFrame struct {
	schema Schema
	rows   []Row
}

// CreateDataFrame builds a frame from rows of go values. Column types are
// inferred from the first non-nil value of every column.
func CreateDataFrame(data [][]any, columns []string) (*DataFrame, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidColumns)
	}

	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if column == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrInvalidColumns)
		}
		if seen[column] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidColumns, column)
		}
		seen[column] = true
	}

	fields := make([]Field, len(columns))
	typed := make([]bool, len(columns))
	for i, column := range columns {
		// frames inferred from local data are always nullable
		fields[i] = Field{Name: column, Type: StringType, Nullable: true}
	}

	rows := make([]Row, len(data))
	for i, values := range data {
		if len(values) != len(columns) {
			return nil, fmt.Errorf(
				"%w: row %d has %d values, expected %d",
				ErrArityMismatch, i, len(values), len(columns),
			)
		}

		row := make(Row, len(values))
		for j, value := range values {
			if value == nil {
				continue
			}

			v, dataType, err := normalize(value)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, columns[j], err)
			}
			if !typed[j] {
				fields[j].Type = dataType
				typed[j] = true
			} else if fields[j].Type != dataType {
				return nil, fmt.Errorf(
					"%w: row %d column %q is %s, expected %s",
					ErrTypeMismatch, i, columns[j], dataType, fields[j].Type,
				)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return &DataFrame{
		schema: Schema{Fields: fields},
		rows:   rows,
	}, nil
}

// Schema returns a copy of the frame schema
func (df *DataFrame) Schema() Schema {
	fields := make([]Field, len(df.schema.Fields))
	copy(fields, df.schema.Fields)
	return Schema{Fields: fields}
}

// Columns returns the column names
func (df *DataFrame) Columns() []string {
	return df.schema.Names()
}

// Count returns the number of rows
func (df *DataFrame) Count() int {
	return len(df.rows)
}

// Collect returns a copy of all rows
func (df *DataFrame) Collect() []Row {
	rows := make([]Row, len(df.rows))
	for i, row := range df.rows {
		rows[i] = append(Row(nil), row...)
	}
	return rows
}
