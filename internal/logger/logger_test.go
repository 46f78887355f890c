package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathUsesWorkdirLogs(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve log path failed: %v", err)
	}
	realTmpDir, _ := filepath.EvalSymlinks(tmpDir)
	realGot, _ := filepath.EvalSymlinks(filepath.Dir(got))
	if realGot != filepath.Join(realTmpDir, defaultLogDirName) {
		t.Fatalf("unexpected log dir: got=%s", realGot)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
}

func TestReleaseModeWritesJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "storefront.log"})
	log.Info("order_created")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "storefront.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), `"message":"order_created"`) {
		t.Fatalf("expected json log line, got=%s", string(content))
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-log-test")

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected fallback logger")
	}
	scoped := SW("request_id", "req-1")
	ctx := WithContext(context.Background(), scoped)
	if FromContext(ctx) != scoped {
		t.Fatalf("expected scoped logger from context")
	}
}

func TestPositiveOr(t *testing.T) {
	if positiveOr(0, 7) != 7 || positiveOr(-1, 7) != 7 || positiveOr(3, 7) != 3 {
		t.Fatalf("positiveOr returned unexpected value")
	}
}
