// Package batch walks a directory tree collecting tree-interchange files
// for jsast's recursive print/reduce modes, mirroring jscan's
// app.FileHelper.CollectJSFiles: gitignore-style exclusion first, then
// glob inclusion.
package batch

import (
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// Collect returns every file under paths whose base name matches one of
// includeGlobs, honoring ignoreFile (gitignore syntax, relative to each
// root) when recursive is true. Non-directory entries in paths are
// included outright, matching CollectJSFiles' behavior for explicit file
// arguments.
func Collect(paths []string, recursive bool, includeGlobs []string, ignoreFile string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		if !recursive {
			continue
		}

		gi := loadIgnore(path, ignoreFile)
		err = filepath.Walk(path, func(walked string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if gi != nil {
				if rel, relErr := filepath.Rel(path, walked); relErr == nil && gi.MatchesPath(rel) {
					if info.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
			if info.IsDir() {
				return nil
			}
			if matchesAny(filepath.Base(walked), includeGlobs) {
				files = append(files, walked)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func matchesAny(name string, globs []string) bool {
	for _, g := range globs {
		if matched, err := filepath.Match(g, name); err == nil && matched {
			return true
		}
	}
	return false
}

func loadIgnore(root, ignoreFile string) *ignore.GitIgnore {
	if ignoreFile == "" {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ignoreFile))
	if err != nil {
		return nil
	}
	return gi
}
