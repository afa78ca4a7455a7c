//go:build !unix

package dupfinder

import "os"

// sameStorage reports whether two paths refer to the same underlying
// storage object.
func sameStorage(pathA, pathB string) (bool, error) {
	infoA, err := os.Stat(pathA)
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(pathB)
	if err != nil {
		return false, err
	}
	return os.SameFile(infoA, infoB), nil
}
