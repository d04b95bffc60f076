package builder

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type Checksummer struct {
	filesystem billy.Basic
	logger     logger
}

func NewChecksummer(filesystem billy.Basic, logger logger) Checksummer {
	return Checksummer{filesystem: filesystem, logger: logger}
}

// Sum writes the hex SHA256 of the file at path to path + ".sha256".
func (c Checksummer) Sum(path string) error {
	c.logger.Println(fmt.Sprintf("Calculating SHA256 checksum of %s...", path))

	hash := sha256.New()

	file, err := c.filesystem.Open(path)
	if err != nil {
		return err
	}
	defer closeAndIgnoreError(file)

	_, err = io.Copy(hash, file)
	if err != nil {
		return err
	}

	hexsum := fmt.Sprintf("%x", hash.Sum(nil))

	err = util.WriteFile(c.filesystem, fmt.Sprintf("%s.sha256", path), []byte(hexsum), 0o644)
	if err != nil {
		return err
	}

	c.logger.Println(fmt.Sprintf("SHA256 checksum: %s", hexsum))

	return nil
}
