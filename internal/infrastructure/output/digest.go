package output

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

// Digest returns a hex BLAKE2b-256 over the ordered file set. Paths and
// contents are length-prefixed so no two distinct sets share an input.
func Digest(files []builder.GeneratedFile) string {
	h, _ := blake2b.New256(nil)

	var size [8]byte
	for _, f := range files {
		binary.BigEndian.PutUint64(size[:], uint64(len(f.Path)))
		h.Write(size[:])
		h.Write([]byte(f.Path))

		binary.BigEndian.PutUint64(size[:], uint64(len(f.Content)))
		h.Write(size[:])
		h.Write(f.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FileDigest returns the hex BLAKE2b-256 of one file's content
func FileDigest(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}
