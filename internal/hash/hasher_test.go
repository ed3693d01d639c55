package hash

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestHashFile_Report(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "Editor.log")

	content := []byte(" 21.0 mb 80.7% Assets/hero.png\n")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	digest, err := HashFile(testFile)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}

	h := xxhash.New()
	h.Write(content)
	expected := hex.EncodeToString(h.Sum(nil))

	if digest != expected {
		t.Errorf("Hash mismatch: expected %s, got %s", expected, digest)
	}
}

func TestHashReader_MatchesHashFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "large.log")

	// Larger than one streaming buffer
	data := []byte(strings.Repeat(" 1.0 kb 0.1% Assets/a.png\n", 4096))
	if err := os.WriteFile(testFile, data, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	fromFile, err := HashFile(testFile)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	fromReader, err := HashReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}

	if fromFile != fromReader {
		t.Errorf("Digests differ: %s vs %s", fromFile, fromReader)
	}
}

func TestHashFile_NonExistent(t *testing.T) {
	_, err := HashFile("/nonexistent/Editor.log")
	if err == nil {
		t.Error("HashFile should return error for nonexistent file")
	}
}

func TestXXHashFunc(t *testing.T) {
	data := []byte("test data")

	hashBytes, err := XXHashFunc(data)
	if err != nil {
		t.Fatalf("XXHashFunc failed: %v", err)
	}

	if len(hashBytes) != 8 {
		t.Errorf("Expected 8 bytes, got %d", len(hashBytes))
	}

	hashBytes2, _ := XXHashFunc(data)
	if hex.EncodeToString(hashBytes) != hex.EncodeToString(hashBytes2) {
		t.Error("XXHashFunc should be deterministic")
	}
}

func TestKey_Stable(t *testing.T) {
	if Key("Assets/hero.png") != Key("Assets/hero.png") {
		t.Error("Key should be deterministic")
	}
	if Key("Assets/hero.png") == Key("Assets/villain.png") {
		t.Error("Different ids should produce different keys")
	}
}

func TestFingerprint(t *testing.T) {
	records := [][]byte{[]byte("a/b|1"), []byte("a/c|2"), []byte("d|3")}

	fp1, err := Fingerprint(records)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	fp2, err := Fingerprint(records)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if fp1 == "" || fp1 != fp2 {
		t.Errorf("Fingerprint should be non-empty and deterministic: %q vs %q", fp1, fp2)
	}

	changed, err := Fingerprint([][]byte{[]byte("a/b|1"), []byte("a/c|2"), []byte("d|4")})
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if changed == fp1 {
		t.Error("Different records should produce a different fingerprint")
	}
}

func TestFingerprint_SmallInputs(t *testing.T) {
	empty, err := Fingerprint(nil)
	if err != nil || empty == "" {
		t.Fatalf("Fingerprint(nil) = %q, %v", empty, err)
	}

	single, err := Fingerprint([][]byte{[]byte("only")})
	if err != nil || single == "" {
		t.Fatalf("Fingerprint(single) = %q, %v", single, err)
	}
	if single == empty {
		t.Error("Single record fingerprint should differ from the empty one")
	}

	sum, err := XXHashFunc([]byte("only"))
	if err != nil {
		t.Fatalf("XXHashFunc failed: %v", err)
	}
	if want := hex.EncodeToString(sum); single != want {
		t.Errorf("Fingerprint(single) = %s, want the record hash %s", single, want)
	}
}
