package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/internal/util"
)

// recorder is a TestingT that records failures instead of stopping the test
type recorder struct {
	name   string
	failed bool
	fatal  string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failed = true
	r.fatal = fmt.Sprintf(format, args...)
}

func (r *recorder) Logf(string, ...interface{}) {}

func (r *recorder) Helper() {}

func (r *recorder) Name() string {
	return r.name
}

// inTempDir runs the test from an empty directory
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestValidateSnapshot(t *testing.T) {
	dir := inTempDir(t)
	defer util.UnsetEnv(UpdateEnv)()

	r := &recorder{name: "TestSnapshot/match"}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "testdata"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testdata", "TestSnapshot_match-0.json"), []byte("{\n  \"wins\": 1\n}\n"), 0644))

	assert.True(t, ValidateSnapshot(r, map[string]int{"wins": 1}))
	assert.False(t, r.failed)
}

func TestValidateSnapshot_mismatch(t *testing.T) {
	dir := inTempDir(t)
	defer util.UnsetEnv(UpdateEnv)()

	r := &recorder{name: "TestSnapshot/mismatch"}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "testdata"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testdata", "TestSnapshot_mismatch-0.json"), []byte("{\n  \"wins\": 1\n}\n"), 0644))

	assert.False(t, ValidateSnapshot(r, map[string]int{"wins": 999}))
	assert.True(t, r.failed)
}

func TestValidateSnapshot_missing(t *testing.T) {
	dir := inTempDir(t)
	defer util.UnsetEnv(UpdateEnv)()

	r := &recorder{name: "TestSnapshot/missing"}
	assert.False(t, ValidateSnapshot(r, map[string]int{"wins": 1}))
	assert.True(t, r.failed)
	assert.Contains(t, r.fatal, "does not exist")

	_, err := os.Stat(filepath.Join(dir, "testdata"))
	assert.True(t, os.IsNotExist(err), "a failed check must not write snapshots")
}

func TestValidateSnapshot_update(t *testing.T) {
	dir := inTempDir(t)
	defer util.SetEnv(UpdateEnv, "1")()

	r := &recorder{name: "TestSnapshot/update"}
	assert.True(t, ValidateSnapshot(r, map[string]int{"wins": 1}))
	assert.False(t, r.failed)

	data, err := os.ReadFile(filepath.Join(dir, "testdata", "TestSnapshot_update-0.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"wins\": 1\n}\n", string(data))

	assert.True(t, ValidateSnapshot(r, map[string]int{"wins": 2}))
	_, err = os.Stat(filepath.Join(dir, "testdata", "TestSnapshot_update-1.json"))
	assert.NoError(t, err)
}

func TestNextFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "TestA_sub_case-0.json"), nextFilename("TestA/sub case"))
	assert.Equal(t, filepath.Join("testdata", "TestA_sub_case-1.json"), nextFilename("TestA/sub case"))
}
