//go:build !unix

package themes

import "os"

func mapFile(path string) ([]byte, func() error, error) {
	mem, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return mem, nil, nil
}
