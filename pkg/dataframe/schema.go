package dataframe

import (
	"fmt"
	"io"
	"math"
)

// DataType is the type of a column
type DataType int

const (
	StringType DataType = iota
	LongType
	DoubleType
	BooleanType
)

// String returns the type name used by printSchema
func (t DataType) String() string {
	switch t {
	case StringType:
		return "string"
	case LongType:
		return "long"
	case DoubleType:
		return "double"
	case BooleanType:
		return "boolean"
	default:
		return "unknown"
	}
}

// Field is a named column of a schema
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

// Schema is the ordered list of fields of a frame
type Schema struct {
	Fields []Field
}

// Names returns the field names in order
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}

// Print writes the schema as a tree
func (s Schema) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "root"); err != nil {
		return err
	}
	for _, field := range s.Fields {
		_, err := fmt.Fprintf(w, " |-- %s: %s (nullable = %t)\n", field.Name, field.Type, field.Nullable)
		if err != nil {
			return err
		}
	}
	return nil
}

// normalize converts a go value to the canonical value stored for its type
func normalize(value any) (any, DataType, error) {
	switch v := value.(type) {
	case string:
		return v, StringType, nil
	case bool:
		return v, BooleanType, nil
	case int:
		return int64(v), LongType, nil
	case int8:
		return int64(v), LongType, nil
	case int16:
		return int64(v), LongType, nil
	case int32:
		return int64(v), LongType, nil
	case int64:
		return v, LongType, nil
	case uint8:
		return int64(v), LongType, nil
	case uint16:
		return int64(v), LongType, nil
	case uint32:
		return int64(v), LongType, nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, 0, fmt.Errorf("%w: %d overflows long", ErrTypeMismatch, v)
		}
		return int64(v), LongType, nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, 0, fmt.Errorf("%w: %d overflows long", ErrTypeMismatch, v)
		}
		return int64(v), LongType, nil
	case float32:
		return float64(v), DoubleType, nil
	case float64:
		return v, DoubleType, nil
	default:
		return nil, 0, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}
