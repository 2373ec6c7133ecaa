package metrics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Footprint reports the on-disk size of the application's stored data.
type Footprint struct {
	DatabaseBytes int64
	ExportBytes   int64
}

// MeasureFootprint sizes the database file and the export directory. Missing
// paths count as zero; a fresh install has no data yet.
func MeasureFootprint(dbPath, exportDir string) Footprint {
	return Footprint{
		DatabaseBytes: fileSize(dbPath),
		ExportBytes:   dirSize(exportDir),
	}
}

func (f Footprint) String() string {
	return fmt.Sprintf("database %s, exports %s", humanSize(f.DatabaseBytes), humanSize(f.ExportBytes))
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func dirSize(path string) int64 {
	var size int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			size += info.Size()
		}
		return nil
	})
	return size
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
