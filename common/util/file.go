package util

import (
	"os"
	"path/filepath"
	"vincit.fi/eink-slideshow/common/logger"
)

func DoesFileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return !os.IsNotExist(err)
}

func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// MakeDirectoriesIfNotExist creates dstPath using the permissions of srcPath.
// If srcPath does not exist either, 0755 is used.
func MakeDirectoriesIfNotExist(srcPath string, dstPath string) error {
	if DoesFileExist(dstPath) {
		return nil
	}

	mode := os.FileMode(0755)
	if info, err := os.Stat(srcPath); err == nil {
		mode = info.Mode().Perm()
	}
	logger.Debug.Printf("Creating directory '%s'", dstPath)
	return os.MkdirAll(dstPath, mode)
}

// WriteFileAtomic writes the content into a temporary file next to the
// target and renames it over the target.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := MakeDirectoriesIfNotExist(dir, dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
