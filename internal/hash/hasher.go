package hash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	mt "github.com/txaty/go-merkletree"
)

const bufferSize = 32 * 1024 // 32KB buffer for streaming

// HashReader computes the xxHash of everything readable from r
func HashReader(r io.Reader) (string, error) {
	h := xxhash.New()
	buf := make([]byte, bufferSize)

	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile computes the xxHash of a file using streaming for large files
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return HashReader(file)
}

// XXHashFunc is a custom hash function adapter for go-merkletree
// It converts []byte input to xxHash []byte output
func XXHashFunc(data []byte) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, xxhash.Sum64(data))
	return buf, nil
}

// Key returns a stable 64-bit key for s.
func Key(s string) uint64 {
	return xxhash.Sum64String(s)
}

type block []byte

func (b block) Serialize() ([]byte, error) {
	return b, nil
}

// Fingerprint returns the hex merkle root over the given records. The
// caller is responsible for a deterministic record order.
func Fingerprint(records [][]byte) (string, error) {
	switch len(records) {
	case 0:
		sum, err := XXHashFunc([]byte("empty-report"))
		if err != nil {
			return "", fmt.Errorf("failed to hash empty record set: %w", err)
		}
		return hex.EncodeToString(sum), nil
	case 1:
		// go-merkletree needs at least two leaves
		sum, err := XXHashFunc(records[0])
		if err != nil {
			return "", fmt.Errorf("failed to hash record: %w", err)
		}
		return hex.EncodeToString(sum), nil
	}

	blocks := make([]mt.DataBlock, len(records))
	for i, r := range records {
		blocks[i] = block(r)
	}

	tree, err := mt.New(&mt.Config{
		HashFunc: XXHashFunc,
		Mode:     mt.ModeTreeBuild,
	}, blocks)
	if err != nil {
		return "", fmt.Errorf("failed to build merkle tree: %w", err)
	}

	return hex.EncodeToString(tree.Root), nil
}
