//go:build unix

package dupfinder

import "golang.org/x/sys/unix"

// sameStorage reports whether two paths refer to the same underlying
// storage object, i.e. hard links to one inode on one device.
func sameStorage(pathA, pathB string) (bool, error) {
	var statA, statB unix.Stat_t
	if err := unix.Stat(pathA, &statA); err != nil {
		return false, err
	}
	if err := unix.Stat(pathB, &statB); err != nil {
		return false, err
	}
	return statA.Dev == statB.Dev && statA.Ino == statB.Ino, nil
}
