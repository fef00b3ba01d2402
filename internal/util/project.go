package util

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the absolute path of the project root. It can be
// overridden through PROJECT_ROOT_DIR, otherwise it is resolved from the
// location of this source file.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if dir, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = dir
			return
		}

		_, file, _, ok := runtime.Caller(0)
		if !ok {
			projectRootDir, _ = os.Getwd()
			return
		}

		// internal/util/project.go
		projectRootDir = filepath.Join(filepath.Dir(file), "..", "..")
	})

	return projectRootDir
}

// RunningInTest reports whether the binary is a test binary.
func RunningInTest() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}

	return strings.HasSuffix(os.Args[0], ".test")
}
