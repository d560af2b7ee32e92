package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"i18next-typesafe/core/catalog"

	"github.com/spf13/afero"
)

const quotes = "'\"`"

// keyCallPattern captures the first string-literal argument of `t(...)` or
// `tSomething(...)`. It is a textual heuristic and matches inside comments too.
var keyCallPattern = regexp.MustCompile(`\b(?:t|t[A-Z]\w*)\(\s*[` + quotes + `]([^` + quotes + `]+)[` + quotes + `]`)

// errStop ends a walk early once every prefix has been found.
var errStop = errors.New("scan complete")

// Options controls which files a Scanner reads.
type Options struct {
	// Extensions is the allow-list of filename suffixes, e.g. ".ts".
	Extensions []string
	// Exclude holds directory names that are never descended into.
	Exclude []string
	// OnError receives paths that could not be listed or read.
	// The walk continues after every call.
	OnError func(path string, err error)
}

// Scanner searches a source tree for translation usage.
type Scanner struct {
	fs         afero.Fs
	extensions []string
	exclude    map[string]struct{}
	onError    func(path string, err error)
}

// New creates a Scanner over fs.
func New(fs afero.Fs, opts Options) *Scanner {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}
	onError := opts.OnError
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Scanner{
		fs:         fs,
		extensions: opts.Extensions,
		exclude:    exclude,
		onError:    onError,
	}
}

// KeyCalls returns the distinct key literals passed to translation calls
// anywhere under root.
func (s *Scanner) KeyCalls(ctx context.Context, root string) (catalog.KeySet, error) {
	found := make(catalog.KeySet)
	err := s.walk(ctx, root, func(content string) bool {
		for _, m := range keyCallPattern.FindAllStringSubmatch(content, -1) {
			found.Add(m[1])
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// PrefixesUsed reports, for every prefix, whether any file under root
// references it. The tree is walked once for the whole list.
func (s *Scanner) PrefixesUsed(ctx context.Context, root string, prefixes []string) (map[string]bool, error) {
	used := make(map[string]bool, len(prefixes))
	pending := make(map[string]*regexp.Regexp, len(prefixes))
	for _, p := range prefixes {
		used[p] = false
		pending[p] = prefixPattern(p)
	}
	if len(pending) == 0 {
		return used, nil
	}

	err := s.walk(ctx, root, func(content string) bool {
		for p, re := range pending {
			if re.MatchString(content) {
				used[p] = true
				delete(pending, p)
			}
		}
		return len(pending) == 0
	})
	if err != nil {
		return nil, err
	}
	return used, nil
}

// PrefixUsed reports whether a single prefix is referenced under root.
func (s *Scanner) PrefixUsed(ctx context.Context, root, prefix string) (bool, error) {
	used, err := s.PrefixesUsed(ctx, root, []string{prefix})
	if err != nil {
		return false, err
	}
	return used[prefix], nil
}

// prefixPattern matches a `prefixes(...)` declaration naming the prefix, or
// the quoted prefix anywhere in the file.
func prefixPattern(prefix string) *regexp.Regexp {
	lit := `[` + quotes + `]` + regexp.QuoteMeta(prefix) + `[` + quotes + `]`
	return regexp.MustCompile(`prefixes\([^)]*` + lit + `[^)]*\)|` + lit)
}

// walk feeds the text of every matching file under root to visit.
// visit returns true to stop the walk.
func (s *Scanner) walk(ctx context.Context, root string, visit func(content string) bool) error {
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.onError(path, err)
			if info != nil && info.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if _, skip := s.exclude[info.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.allowed(info.Name()) {
			return nil
		}

		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			s.onError(path, err)
			return nil
		}
		if visit(string(data)) {
			return errStop
		}
		return nil
	})
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}

func (s *Scanner) allowed(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
