package questionfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/annotiz/internal/question"
)

const defaultFileMode fs.FileMode = 0o644

// Load reads and validates the question file at path.
func Load(path string) (*question.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	format := FormatFor(path)
	doc, err := decodeGeneric(format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	rs, err := decodeRecords(format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	set, err := question.NewSet(fromRecords(rs))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return set, nil
}

// Save encodes the whole set in memory, then replaces the file at path in a
// single rename. On any failure the previous content stays in place.
func Save(ctx context.Context, path string, set *question.Set) error {
	format := FormatFor(path)
	data, err := encode(format, toRecords(set.All()))
	if err != nil {
		return &SerializationError{Format: format, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// Saver persists question sets through Save.
type Saver struct{}

// Save implements the session's saver contract.
func (Saver) Save(ctx context.Context, path string, set *question.Set) error {
	return Save(ctx, path, set)
}

// renameFile is swapped in tests to force a failed replace.
var renameFile = os.Rename

// writeFileAtomic writes data to a temporary sibling of path and renames it
// into place, keeping the permissions of an existing file. A symlinked path
// updates the link target. When the directory does not allow new files the
// existing file is truncated and rewritten in place.
func writeFileAtomic(path string, data []byte) (err error) {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	mode := defaultFileMode
	exists := false
	if info, statErr := os.Stat(target); statErr == nil {
		mode = info.Mode().Perm()
		exists = true
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return &IOError{Op: "stat", Path: target, Err: statErr}
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		if exists && errors.Is(err, fs.ErrPermission) {
			return writeInPlace(target, data)
		}
		return &IOError{Op: "create temp", Path: target, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: tmpName, Err: err}
	}
	if err = tmp.Chmod(mode); err != nil {
		return &IOError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpName, Err: err}
	}
	if err = renameFile(tmpName, target); err != nil {
		return &IOError{Op: "rename", Path: target, Err: err}
	}
	return nil
}

// resolveTarget follows symlinks so the rename replaces the real file and
// leaves the link alone. A path that does not exist yet is used as is.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	return "", &IOError{Op: "resolve", Path: path, Err: err}
}

// writeInPlace truncates and rewrites an existing file. It is not atomic and
// only runs when no temporary sibling can be created.
func writeInPlace(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
