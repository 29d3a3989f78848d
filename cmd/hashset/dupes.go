package main

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/noncombatant/hashset"
	"github.com/noncombatant/hashset/hashutil"
	"github.com/noncombatant/hashset/log"
)

// A file on a POSIX system is uniquely identified by the combination of its
// device and inode numbers; two paths sharing a fileID are hard links to the
// same file.
type fileID struct {
	dev uint64
	ino uint64
}

type fileEntry struct {
	id    fileID
	paths []string
}

func hashFileID(e *fileEntry) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], e.id.dev)
	binary.LittleEndian.PutUint64(buf[8:], e.id.ino)
	return hashutil.Bytes(buf[:])
}

func compareFileIDs(a, b *fileEntry) int {
	if c := hashutil.Compare(a.id.dev, b.id.dev); c != 0 {
		return c
	}
	return hashutil.Compare(a.id.ino, b.id.ino)
}

// runDupes walks root and reports every file reachable through more than one
// path. Unreadable entries are logged and skipped rather than aborting the
// walk.
func runDupes(root string) error {
	table, err := hashset.New[*fileEntry](4096, hashFileID, compareFileIDs)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Logger.Warn("skipping", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		var st unix.Stat_t
		if err := unix.Stat(path, &st); err != nil {
			log.Logger.Warn("stat failed", zap.String("path", path), zap.Error(err))
			return nil
		}
		probe := &fileEntry{id: fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}}
		if entry, ok := table.Get(probe); ok {
			// Value-part mutation of a stored element; the key part
			// (the fileID) is untouched.
			entry.paths = append(entry.paths, path)
			return nil
		}
		probe.paths = []string{path}
		table.Add(probe)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	found := false
	table.Range(func(e *fileEntry) bool {
		if len(e.paths) > 1 {
			found = true
			fmt.Printf("dev %d inode %d:\n\t%s\n", e.id.dev, e.id.ino, strings.Join(e.paths, "\n\t"))
		}
		return true
	})
	if !found {
		fmt.Println("no hard-linked duplicates")
	}
	return nil
}
