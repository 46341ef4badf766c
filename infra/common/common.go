package common

import (
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ImageSources are the repo paths the API image is built from (see cmd/api/Dockerfile).
var ImageSources = []string{"go.mod", "go.sum", "cmd", "internal", "pkg"}

// GenerateHash hashes the files under the given paths of root, so the image tag only
// changes when its build inputs do. Missing paths are skipped.
func GenerateHash(root string, paths ...string) (string, error) {
	var hash string

	for _, p := range paths {
		err := filepath.Walk(filepath.Join(root, p),
			func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				if !info.IsDir() && info.Mode()&os.ModeSymlink != os.ModeSymlink {
					fh, err := fileMd5Hash(path)
					if err != nil {
						return err
					}
					hash = appendHash(hash, fh)
				}

				return nil
			})
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
	}

	return hash, nil
}

func fileMd5Hash(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}

	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func appendHash(hash1, hash2 string) string {
	h := md5.New()
	io.WriteString(h, fmt.Sprintf("%s%s", hash1, hash2))

	return fmt.Sprintf("%x", h.Sum(nil))
}
