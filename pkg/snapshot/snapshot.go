package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"blackjack/internal/util"
)

// UpdateEnv is the environment variable that, when set to 1, (re)writes snapshot files
const UpdateEnv = "UPDATE_SNAPSHOTS"

// TestingT is the part of *testing.T used by ValidateSnapshot
type TestingT interface {
	assert.TestingT
	Helper()
	Name() string
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// ValidateSnapshot compares obj, encoded as indented JSON, with testdata/<test name>-<n>.json
// where n counts the calls made by the same test.
// A missing snapshot fails the test unless UPDATE_SNAPSHOTS=1, which writes the file instead.
func ValidateSnapshot(t TestingT, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
		return false
	}

	if util.Getenv(UpdateEnv, "") == "1" {
		return write(t, filename, objJSON)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot %s does not exist, run with %s=1 to create it", filename, UpdateEnv)
			return false
		}

		t.Fatalf("could not read snapshot %s: %v", filename, err)
		return false
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)

	mu.Lock()
	call := callCount[name]
	callCount[name] = call + 1
	mu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(t TestingT, filename string, data []byte) bool {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
		return false
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatalf("could not write snapshot %s: %v", filename, err)
		return false
	}

	return true
}
