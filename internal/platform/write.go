package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// WriteFile replaces the contents of path atomically. If path is a symlink
// the link target is replaced and the link itself is kept. An existing
// file's mode is preserved; new files get perm.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	target, err := resolve(path)
	if err != nil {
		return err
	}

	mode := perm
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

// resolve follows symlinks in path. A path that does not exist yet is
// returned unchanged so it can be created.
func resolve(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if os.IsNotExist(err) {
		if _, lerr := os.Lstat(path); lerr == nil {
			return "", fmt.Errorf("resolving %s: dangling symlink", path)
		}
		return path, nil
	}
	return "", fmt.Errorf("resolving %s: %w", path, err)
}

func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
