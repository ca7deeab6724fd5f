package args

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Resolve_HappyPath(t *testing.T) {
	argv := []string{
		"--JOB_NAME", "helloworld",
		"--JOB_RUN_ID=jr_0001",
		"--enable-metrics", "true",
		"--job-bookmark-option", "job-bookmark-enable",
		"--TempDir", "s3://aws-glue-assets/temporary/",
	}

	options, err := Resolve(argv, []string{JobName})
	require.Nil(t, err)
	assert.Equal(t, "helloworld", options.JobName())
	assert.Equal(t, "jr_0001", options.RunID())
	assert.Equal(t, BookmarkEnable, options.BookmarkOption())

	tempDir, ok := options.Get(TempDir)
	assert.True(t, ok)
	assert.Equal(t, "s3://aws-glue-assets/temporary/", tempDir)

	// arguments that were not asked for are not returned
	_, ok = options.Get("enable-metrics")
	assert.False(t, ok)
	_, ok = options.Get(JobID)
	assert.False(t, ok)
}

func Test_Resolve_LastValueWins(t *testing.T) {
	options, err := Resolve([]string{"--JOB_NAME", "first", "--JOB_NAME", "second"}, []string{JobName})
	require.Nil(t, err)
	assert.Equal(t, "second", options.JobName())
}

func Test_Resolve_ExplicitDashValue(t *testing.T) {
	options, err := Resolve([]string{"--JOB_NAME=--helloworld", "--TempDir", "s3://tmp/"}, []string{JobName})
	require.Nil(t, err)
	assert.Equal(t, "--helloworld", options.JobName())
	assert.Equal(t, "s3://tmp/", options[TempDir])

	// the last occurrence decides
	_, err = Resolve([]string{"--JOB_NAME=--helloworld", "--JOB_NAME", "--TempDir"}, []string{JobName})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	options, err = Resolve([]string{"--JOB_NAME", "--x", "--JOB_NAME=--y"}, []string{JobName})
	require.Nil(t, err)
	assert.Equal(t, "--y", options.JobName())
}

func Test_Resolve_DefaultBookmarkOption(t *testing.T) {
	options, err := Resolve([]string{"--JOB_NAME", "helloworld"}, []string{JobName})
	require.Nil(t, err)
	assert.Equal(t, BookmarkDisable, options.BookmarkOption())
}

func Test_Resolve_UnhappyPath(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		required []string
		err      error
	}{
		{"missing job name", []string{"--other", "x"}, []string{JobName}, ErrMissingArgument},
		{"no arguments", nil, []string{JobName, "INPUT"}, ErrMissingArgument},
		{"no value at the end", []string{"--JOB_NAME"}, []string{JobName}, ErrInvalidArgument},
		{"flag as value", []string{"--JOB_NAME", "--TempDir", "x"}, []string{JobName}, ErrInvalidArgument},
		{
			"invalid bookmark option",
			[]string{"--JOB_NAME", "helloworld", "--job-bookmark-option", "bookmark-on"},
			[]string{JobName},
			ErrInvalidArgument,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Resolve(test.argv, test.required)
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}

func Test_Resolve_MissingNamesAll(t *testing.T) {
	_, err := Resolve(nil, []string{JobName, "INPUT", JobName})
	assert.EqualError(t, err, "missing required argument: JOB_NAME, INPUT")
}

func Test_FromMap_HappyPath(t *testing.T) {
	argv := FromMap(map[string]string{"JOB_NAME": "helloworld", "--INPUT": "s3://in"})
	assert.Equal(t, []string{"--INPUT", "s3://in", "--JOB_NAME", "helloworld"}, argv)

	options, err := Resolve(argv, []string{JobName, "INPUT"})
	require.Nil(t, err)
	assert.Equal(t, "s3://in", options["INPUT"])
}

func Test_ServiceArguments_HappyPath(t *testing.T) {
	assert.Nil(t, ServiceArguments(nil))
	assert.Equal(t,
		map[string]string{"--JOB_NAME": "helloworld", "--TempDir": "s3://tmp"},
		ServiceArguments(map[string]string{"JOB_NAME": "helloworld", "--TempDir": "s3://tmp"}),
	)
}

func Test_ParsePairs_HappyPath(t *testing.T) {
	options, err := ParsePairs([]string{"INPUT=s3://in/a=b", "--LIMIT=10", "EMPTY="})
	require.Nil(t, err)
	assert.Equal(t, map[string]string{"INPUT": "s3://in/a=b", "LIMIT": "10", "EMPTY": ""}, options)
}

func Test_ParsePairs_UnhappyPath(t *testing.T) {
	_, err := ParsePairs([]string{"INPUT"})
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = ParsePairs([]string{"=value"})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
