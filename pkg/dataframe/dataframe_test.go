package dataframe

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloFrame(t *testing.T) *DataFrame {
	data := [][]any{
		{"Hello", "World", 1},
		{"AWS", "Glue", 2},
		{"Demo", "Job", 3},
	}
	df, err := CreateDataFrame(data, []string{"col1", "col2", "id"})
	require.Nil(t, err)
	return df
}

func Test_CreateDataFrame_HappyPath(t *testing.T) {
	df := helloFrame(t)

	assert.Equal(t, []string{"col1", "col2", "id"}, df.Columns())
	assert.Equal(t, 3, df.Count())
	assert.Equal(t, []Field{
		{Name: "col1", Type: StringType, Nullable: true},
		{Name: "col2", Type: StringType, Nullable: true},
		{Name: "id", Type: LongType, Nullable: true},
	}, df.Schema().Fields)

	rows := df.Collect()
	assert.Equal(t, Row{"Hello", "World", int64(1)}, rows[0])

	// collected rows are copies
	rows[0][0] = "changed"
	assert.Equal(t, "Hello", df.Collect()[0][0])
}

func Test_CreateDataFrame_CopiesInput(t *testing.T) {
	data := [][]any{{"a", 1}}
	df, err := CreateDataFrame(data, []string{"name", "value"})
	require.Nil(t, err)

	data[0][0] = "b"
	assert.Equal(t, "a", df.Collect()[0][0])
}

func Test_CreateDataFrame_Inference(t *testing.T) {
	data := [][]any{
		{nil, int8(1), float32(1.5), true, nil},
		{"x", uint16(2), 2.0, false, nil},
	}
	df, err := CreateDataFrame(data, []string{"s", "l", "d", "b", "empty"})
	require.Nil(t, err)

	types := []DataType{}
	for _, field := range df.Schema().Fields {
		types = append(types, field.Type)
	}
	assert.Equal(t, []DataType{StringType, LongType, DoubleType, BooleanType, StringType}, types)
	assert.Equal(t, Row{nil, int64(1), 1.5, true, nil}, df.Collect()[0])
}

func Test_CreateDataFrame_UnhappyPath(t *testing.T) {
	tests := []struct {
		name    string
		data    [][]any
		columns []string
		err     error
	}{
		{"short row", [][]any{{"a", 1}, {"b"}}, []string{"c1", "c2"}, ErrArityMismatch},
		{"long row", [][]any{{"a", 1, 2}}, []string{"c1", "c2"}, ErrArityMismatch},
		{"mixed types", [][]any{{"a"}, {1}}, []string{"c1"}, ErrTypeMismatch},
		{"unsupported", [][]any{{struct{}{}}}, []string{"c1"}, ErrUnsupportedType},
		{"overflow", [][]any{{uint64(math.MaxUint64)}}, []string{"c1"}, ErrTypeMismatch},
		{"no columns", nil, nil, ErrInvalidColumns},
		{"empty column", nil, []string{"c1", ""}, ErrInvalidColumns},
		{"duplicate column", nil, []string{"c1", "c1"}, ErrInvalidColumns},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			df, err := CreateDataFrame(test.data, test.columns)
			assert.Nil(t, df)
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}

func Test_ShowDefault_HappyPath(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, helloFrame(t).ShowDefault(&out))

	expected := strings.Join([]string{
		"+-----+-----+---+",
		"| col1| col2| id|",
		"+-----+-----+---+",
		"|Hello|World|  1|",
		"|  AWS| Glue|  2|",
		"| Demo|  Job|  3|",
		"+-----+-----+---+",
		"",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func Test_Show_TopRows(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, helloFrame(t).Show(&out, 1, true))

	expected := strings.Join([]string{
		"+-----+-----+---+",
		"| col1| col2| id|",
		"+-----+-----+---+",
		"|Hello|World|  1|",
		"+-----+-----+---+",
		"only showing top 1 row",
		"",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())

	out.Reset()
	require.Nil(t, helloFrame(t).Show(&out, 2, false))
	assert.True(t, strings.HasSuffix(out.String(), "only showing top 2 rows\n\n"))
	assert.Contains(t, out.String(), "|AWS  |Glue |2  |")
}

func Test_Show_Truncate(t *testing.T) {
	df, err := CreateDataFrame(
		[][]any{{"a value that is longer than twenty", nil, 2.0}},
		[]string{"text", "missing", "ratio"},
	)
	require.Nil(t, err)

	var out bytes.Buffer
	require.Nil(t, df.Show(&out, 20, true))
	assert.Contains(t, out.String(), "|a value that is l...|   null|  2.0|")

	out.Reset()
	require.Nil(t, df.Show(&out, 20, false))
	assert.Contains(t, out.String(), "|a value that is longer than twenty|null   |2.0  |")
}

func Test_Show_WideCharacters(t *testing.T) {
	df, err := CreateDataFrame([][]any{{"日本語", "s"}}, []string{"name", "x"})
	require.Nil(t, err)

	var out bytes.Buffer
	require.Nil(t, df.ShowDefault(&out))

	expected := strings.Join([]string{
		"+------+---+",
		"|  name|  x|",
		"+------+---+",
		"|日本語|  s|",
		"+------+---+",
		"",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func Test_FormatDouble(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{2.0, "2.0"},
		{0.0, "0.0"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1234567.0, "1234567.0"},
		{1e7, "1.0E7"},
		{1e10, "1.0E10"},
		{1.25e-5, "1.25E-5"},
		{-3.5e20, "-3.5E20"},
		{0.001, "0.001"},
		{math.Inf(1), "Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, formatValue(test.value))
	}
}

func Test_PrintSchema_HappyPath(t *testing.T) {
	var out bytes.Buffer
	require.Nil(t, helloFrame(t).PrintSchema(&out))

	expected := "root\n" +
		" |-- col1: string (nullable = true)\n" +
		" |-- col2: string (nullable = true)\n" +
		" |-- id: long (nullable = true)\n"
	assert.Equal(t, expected, out.String())
}
