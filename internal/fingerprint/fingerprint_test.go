package fingerprint_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reflow/internal/fingerprint"
	"reflow/internal/testsupport"
)

func TestFingerprintDeterministic(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(base, "src", "a.txt"), "alpha")
	testsupport.WriteFile(t, filepath.Join(base, "src", "b.txt"), "beta")

	hasher := fingerprint.NewHasher(4)
	first, err := hasher.Fingerprint(context.Background(), base, []string{"src/*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := hasher.Fingerprint(context.Background(), base, []string{"src/*.txt"})
		if err != nil {
			t.Fatalf("Fingerprint: %v", err)
		}
		if again != first {
			t.Fatalf("fingerprint changed on unchanged tree:\n%s\nvs\n%s", first, again)
		}
	}

	lines := strings.Split(first, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), first)
	}
	if !strings.HasSuffix(lines[0], " src/a.txt") || !strings.HasSuffix(lines[1], " src/b.txt") {
		t.Errorf("lines not in lexicographic path order: %q", first)
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "src", "a.txt")
	testsupport.WriteFile(t, path, "alpha")

	hasher := fingerprint.NewHasher(2)
	before, err := hasher.Fingerprint(context.Background(), base, []string{"src/*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}

	testsupport.AppendFile(t, path, "x")
	after, err := hasher.Fingerprint(context.Background(), base, []string{"src/*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if before == after {
		t.Error("appending one byte did not change the fingerprint")
	}
}

func TestFingerprintMembership(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(base, "a.txt"), "same")

	hasher := fingerprint.NewHasher(2)
	one, err := hasher.Fingerprint(context.Background(), base, []string{"*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}

	testsupport.WriteFile(t, filepath.Join(base, "b.txt"), "same")
	two, err := hasher.Fingerprint(context.Background(), base, []string{"*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if one == two {
		t.Error("adding a file did not change the fingerprint")
	}

	if err := os.Remove(filepath.Join(base, "b.txt")); err != nil {
		t.Fatal(err)
	}
	three, err := hasher.Fingerprint(context.Background(), base, []string{"*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if three != one {
		t.Error("removing the added file did not restore the fingerprint")
	}
}

func TestFingerprintEmptyMatchSet(t *testing.T) {
	base := t.TempDir()
	hasher := fingerprint.NewHasher(2)

	fp, err := hasher.Fingerprint(context.Background(), base, []string{"nothing/*.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp != "" {
		t.Errorf("empty match set fingerprint = %q, want empty string", fp)
	}

	fp, err = hasher.Fingerprint(context.Background(), base, nil)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp != "" {
		t.Errorf("empty pattern set fingerprint = %q, want empty string", fp)
	}
}

func TestFingerprintExcludesDirectories(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(base, "src", "nested", "a.txt"), "alpha")

	hasher := fingerprint.NewHasher(2)
	fp, err := hasher.Fingerprint(context.Background(), base, []string{"src/*"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp != "" {
		t.Errorf("directory matched as a file: %q", fp)
	}
}

func TestFingerprintGlobstar(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(base, "src", "deep", "nested", "a.go"), "package a")
	testsupport.WriteFile(t, filepath.Join(base, "src", "b.go"), "package b")

	hasher := fingerprint.NewHasher(2)
	fp, err := hasher.Fingerprint(context.Background(), base, []string{"src/**/*.go"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if got := len(strings.Split(fp, "\n")); got != 2 {
		t.Errorf("globstar matched %d files, want 2: %q", got, fp)
	}
}

func TestFingerprintDeduplicatesAcrossPatterns(t *testing.T) {
	base := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(base, "a.txt"), "alpha")

	hasher := fingerprint.NewHasher(2)
	fp, err := hasher.Fingerprint(context.Background(), base, []string{"*.txt", "a.txt"})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if got := len(strings.Split(fp, "\n")); got != 1 {
		t.Errorf("file counted %d times, want once: %q", got, fp)
	}
}

func TestFingerprintReadFailure(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "secret.txt")
	testsupport.WriteFile(t, path, "hidden")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })
	if os.Geteuid() == 0 {
		t.Skip("running as root; chmod cannot make the file unreadable")
	}

	hasher := fingerprint.NewHasher(2)
	_, err := hasher.Fingerprint(context.Background(), base, []string{"*.txt"})
	var ioErr *fingerprint.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *fingerprint.IOError, got %v", err)
	}
	if ioErr.ErrorKind() != "io" {
		t.Errorf("classification = %q", ioErr.ErrorKind())
	}
}
