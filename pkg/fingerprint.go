package dupfinder

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// ErrInterrupted is returned when a shutdown signal arrives while the
// pipeline is running.
var ErrInterrupted = errors.New("scan interrupted by shutdown")

// FingerprintAlgorithm describes a content digest used by the partial
// and full fingerprint stages. Collision-unlikely partitioning is all
// that is required here; the byte verifier is the proof of equality.
type FingerprintAlgorithm struct {
	Name    string
	Size    int // digest length in bytes after truncation
	NewFunc func() hash.Hash
}

// GetFingerprintAlgorithm returns the algorithm configuration for the
// given name. blake3 is truncated to 128 bits; md5 remains selectable
// for reports that must stay comparable with older scans.
func GetFingerprintAlgorithm(name string) (*FingerprintAlgorithm, error) {
	switch strings.ToLower(name) {
	case "blake3":
		return &FingerprintAlgorithm{
			Name:    "blake3",
			Size:    16,
			NewFunc: func() hash.Hash { return blake3.New() },
		}, nil
	case "md5":
		return &FingerprintAlgorithm{
			Name:    "md5",
			Size:    md5.Size,
			NewFunc: md5.New,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported fingerprint algorithm: %s (supported: blake3, md5)", name)
	}
}

// encode finalizes a digest as a hex string of the configured width.
func (alg *FingerprintAlgorithm) encode(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil)[:alg.Size])
}

// partialFingerprint digests at most the first PartialReadLimit bytes
// of the file, fewer if the file is shorter. Most non-duplicates of
// equal size differ within the first few KB, so this stage eliminates
// the bulk of them without reading whole files.
func partialFingerprint(path string, alg *FingerprintAlgorithm) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	hasher := alg.NewFunc()
	if _, err := io.CopyN(hasher, file, PartialReadLimit); err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read from file %s: %w", path, err)
	}

	return alg.encode(hasher), nil
}

// fullFingerprint streams the entire file content through the digest in
// bounded chunks and checks for a shutdown signal between reads so a
// long hash can be interrupted gracefully.
func fullFingerprint(path string, alg *FingerprintAlgorithm, bufferSize int, shutdown <-chan struct{}) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	hasher := alg.NewFunc()
	buffer := make([]byte, bufferSize)

	for {
		select {
		case <-shutdown:
			return "", ErrInterrupted
		default:
		}

		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read from file %s: %w", path, err)
		}
	}

	return alg.encode(hasher), nil
}
