package zoneclock

import (
	"archive/zip"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// DefaultZone is always offered, even when no zone database is found.
const DefaultZone = "UTC"

var zoneDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
	"/etc/zoneinfo/",
}

// Zones lists the timezone identifiers supported by the host.
func Zones() []string {
	seen := map[string]bool{DefaultZone: true}

	for _, dir := range zoneDirs {
		for _, name := range zonesInDir(os.DirFS(dir)) {
			seen[name] = true
		}
	}
	if len(seen) == 1 {
		for _, name := range zonesInZip(filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip")) {
			seen[name] = true
		}
	}

	zones := make([]string, 0, len(seen))
	for name := range seen {
		zones = append(zones, name)
	}
	sort.Strings(zones)
	return zones
}

func zonesInDir(fsys fs.FS) []string {
	var zones []string
	_ = fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if path != "." && skipDir(entry.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !isZoneName(path) {
			return nil
		}
		if !hasTZifHeader(fsys, path) {
			return nil
		}
		zones = append(zones, path)
		return nil
	})
	return zones
}

func zonesInZip(path string) []string {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil
	}
	defer reader.Close()

	var zones []string
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !isZoneName(file.Name) {
			continue
		}
		zones = append(zones, file.Name)
	}
	return zones
}

func skipDir(name string) bool {
	switch name {
	case "posix", "right", "SystemV":
		return true
	}
	return false
}

func isZoneName(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}
	switch name {
	case "posixrules", "localtime", "Factory", "leapseconds", "+VERSION":
		return false
	}
	first := name[0]
	return first >= 'A' && first <= 'Z'
}

func hasTZifHeader(fsys fs.FS, path string) bool {
	file, err := fsys.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	header := make([]byte, 4)
	if _, err := file.Read(header); err != nil {
		return false
	}
	return string(header) == "TZif"
}
