package questionfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/annotiz/internal/question"
)

func ptr[T any](v T) *T { return &v }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func mixedSet(t *testing.T) *question.Set {
	t.Helper()
	set, err := question.NewSet([]question.Question{
		{Prompt: "Which is prime?", Options: []string{"4", "6", "7"}, ReferenceAnswer: "7"},
		{Prompt: "Pick yes", Options: []string{"yes", "no"}, ReferenceAnswer: "yes", Classification: ptr(true)},
		{Prompt: "Empty option", Options: []string{"", "null"}, ReferenceAnswer: "", HumanAnswer: ptr("")},
		{Prompt: "Both", Options: []string{"x", "y"}, ReferenceAnswer: "y", Classification: ptr(false), HumanAnswer: ptr("y")},
	})
	require.NoError(t, err)
	return set
}

func TestLoad_FirstTimeFile(t *testing.T) {
	path := writeFile(t, "q.json", `[
  {"question": "2+2?", "options": ["3", "4"], "answer": "4"},
  {"question": "3+3?", "options": ["6", "7"], "answer": "6"}
]`)

	set, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	q, _ := set.At(0)
	assert.Equal(t, "2+2?", q.Prompt)
	assert.Equal(t, []string{"3", "4"}, q.Options)
	assert.Equal(t, "4", q.ReferenceAnswer)
	assert.Nil(t, q.Classification)
	assert.Nil(t, q.HumanAnswer)
}

func TestLoad_PartiallyAnnotated(t *testing.T) {
	path := writeFile(t, "q.json", `[
  {"question": "a", "options": ["1", "2"], "answer": "1", "is_higher_order": true, "human_answer": null},
  {"question": "b", "options": ["1", "2"], "answer": "2", "is_higher_order": null, "human_answer": "2"}
]`)

	set, err := Load(path)
	require.NoError(t, err)

	q0, _ := set.At(0)
	require.NotNil(t, q0.Classification)
	assert.True(t, *q0.Classification)
	assert.Nil(t, q0.HumanAnswer)

	q1, _ := set.At(1)
	assert.Nil(t, q1.Classification)
	assert.Equal(t, "2", *q1.HumanAnswer)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "q.yaml", `
- question: Largest planet?
  options: [Mars, Jupiter]
  answer: Jupiter
  is_higher_order: false
`)

	set, err := Load(path)
	require.NoError(t, err)
	q, _ := set.At(0)
	assert.Equal(t, []string{"Mars", "Jupiter"}, q.Options)
	assert.False(t, *q.Classification)
}

func TestLoad_Unreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadableFile)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"not json", "q.json", `{nope`},
		{"object not list", "q.json", `{"question": "a"}`},
		{"empty list", "q.json", `[]`},
		{"missing options", "q.json", `[{"question": "a", "answer": "b"}]`},
		{"empty options", "q.json", `[{"question": "a", "options": [], "answer": "b"}]`},
		{"wrong type", "q.json", `[{"question": "a", "options": ["x"], "answer": "x", "is_higher_order": "yes"}]`},
		{"unknown field", "q.json", `[{"question": "a", "options": ["x"], "answer": "x", "notes": "?"}]`},
		{"foreign answer", "q.json", `[{"question": "a", "options": ["x"], "answer": "x", "human_answer": "z"}]`},
		{"trailing document", "q.json", `[{"question": "a", "options": ["x"], "answer": "x"}] []`},
		{"yaml mapping", "q.yml", "question: a\n"},
		{"yaml unknown field", "q.yml", "- question: a\n  options: [x]\n  answer: x\n  extra: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedData)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"q.json", "q.yaml", "q.yml", "questions"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			set := mixedSet(t)

			require.NoError(t, Save(context.Background(), path, set))
			loaded, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, set.All(), loaded.All())
		})
	}
}

func TestSave_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	set, err := question.NewSet([]question.Question{
		{Prompt: "a", Options: []string{"x"}, ReferenceAnswer: "x"},
	})
	require.NoError(t, err)

	require.NoError(t, Save(context.Background(), path, set))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `[
  {
    "question": "a",
    "options": [
      "x"
    ],
    "answer": "x",
    "is_higher_order": null,
    "human_answer": null
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestSave_JSONKeepsComparisonCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	set, err := question.NewSet([]question.Question{
		{Prompt: "x < 5 && y > 2", Options: []string{"a <b>", "c"}, ReferenceAnswer: "c"},
	})
	require.NoError(t, err)

	require.NoError(t, Save(context.Background(), path, set))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"question": "x < 5 && y > 2"`)
	assert.Contains(t, string(data), `"a <b>"`)
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotContains(t, string(data), `\u0026`)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(context.Background(), path, loaded))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again, "saving an unchanged file should not rewrite its bytes")
}

func TestSave_ReplacesWholeFile(t *testing.T) {
	path := writeFile(t, "q.json", `[
  {"question": "a", "options": ["x", "y"], "answer": "x"},
  {"question": "b", "options": ["x", "y"], "answer": "y"},
  {"question": "c", "options": ["x", "y"], "answer": "y"}
]`)
	set, err := question.NewSet([]question.Question{
		{Prompt: "only", Options: []string{"z"}, ReferenceAnswer: "z"},
	})
	require.NoError(t, err)

	require.NoError(t, Save(context.Background(), path, set))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestSave_KeepsPermissions(t *testing.T) {
	path := writeFile(t, "q.json", `[{"question": "a", "options": ["x"], "answer": "x"}]`)
	require.NoError(t, os.Chmod(path, 0o640))

	require.NoError(t, Save(context.Background(), path, mixedSet(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestSave_FailureLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the final rename fail.
	target := filepath.Join(dir, "q.json")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := Save(context.Background(), target, mixedSet(t))

	require.Error(t, err)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "rename", ioErr.Op)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be cleaned up")
}

func TestSave_FailedRenameKeepsExistingBytes(t *testing.T) {
	original := `[{"question": "a", "options": ["x"], "answer": "x"}]`
	path := writeFile(t, "q.json", original)

	renameFile = func(string, string) error { return os.ErrPermission }
	t.Cleanup(func() { renameFile = os.Rename })

	err := Save(context.Background(), path, mixedSet(t))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "rename", ioErr.Op)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be cleaned up")
}

func TestSave_ThroughSymlinkUpdatesTarget(t *testing.T) {
	dir := t.TempDir()
	realPath := filepath.Join(dir, "real.json")
	require.NoError(t, os.WriteFile(realPath, []byte(`[{"question": "a", "options": ["x"], "answer": "x"}]`), 0o600))
	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(realPath, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	require.NoError(t, Save(context.Background(), link, mixedSet(t)))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should remain a symlink")

	loaded, err := Load(realPath)
	require.NoError(t, err)
	assert.Equal(t, mixedSet(t).All(), loaded.All())
}

func TestSave_ReadOnlyDirectoryRewritesInPlace(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "q.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"question": "a", "options": ["x"], "answer": "x"}]`), 0o644))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	require.NoError(t, Save(context.Background(), path, mixedSet(t)))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, mixedSet(t).All(), loaded.All())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "q.json")

	err := Save(context.Background(), path, mixedSet(t))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestSave_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Save(ctx, path, mixedSet(t))

	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("a.YML"))
	assert.Equal(t, FormatJSON, FormatFor("a.json"))
	assert.Equal(t, FormatJSON, FormatFor("a"))
}

func TestSaver_ImplementsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.json")
	require.NoError(t, Saver{}.Save(context.Background(), path, mixedSet(t)))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
