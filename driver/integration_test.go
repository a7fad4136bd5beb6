package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Compiles the example project end to end through the manifest path.

func TestIntegrationSquareExample(t *testing.T) {
	src := filepath.Join("..", "examples", "square", "src")
	if _, err := os.Stat(src); err != nil {
		t.Skipf("example project not present: %v", err)
	}

	files, err := Discover(src)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 classes", files)
	}

	out := t.TempDir()
	result, err := Run(files, Options{OutDir: out})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Failed != 0 {
		t.Fatalf("result = %+v, want no failures", result)
	}

	data, err := os.ReadFile(filepath.Join(out, "SquareGame.vm"))
	if err != nil {
		t.Fatalf("missing SquareGame.vm: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"function SquareGame.new 0",
		"call Square.new 3",
		"call Memory.alloc 1",
		"function SquareGame.run 2",
		"call Keyboard.keyPressed 0",
		"call SquareGame.moveSquare 1",
	} {
		if !strings.Contains(text, want+"\n") {
			t.Errorf("SquareGame.vm lacks %q", want)
		}
	}

	// Labels inside one class never collide.
	seen := map[string]bool{}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "label ") {
			if seen[line] {
				t.Errorf("duplicate %q", line)
			}
			seen[line] = true
		}
	}
}
