package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/config"
	"i18next-typesafe/core/locale"
	"i18next-typesafe/core/pattern"
	"i18next-typesafe/core/reconcile"
	"i18next-typesafe/core/scanner"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
)

// ErrValidationFailed is returned by commands when a check reports a policy violation.
var ErrValidationFailed = errors.New("validation failed")

// Options configures a validation Service.
type Options struct {
	// SourceDir is the application source root.
	SourceDir string
	// Canonical is the language code of the reference document.
	Canonical string
	// Languages are compared by the sync check.
	Languages     []string
	IgnoreKeys    []string
	IgnoreBlocks  []string
	MaxUnusedKeys int
	Extensions    []string
	Exclude       []string
}

// OptionsFromConfig maps resolved configuration onto service options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SourceDir:     cfg.Source,
		Canonical:     cfg.CanonicalLanguage(),
		Languages:     cfg.Languages,
		IgnoreKeys:    cfg.Validation.IgnoreKeys,
		IgnoreBlocks:  cfg.Validation.IgnoreBlocks,
		MaxUnusedKeys: cfg.Validation.MaxUnusedKeys,
		Extensions:    cfg.Scan.Extensions,
		Exclude:       cfg.Scan.Exclude,
	}
}

// Service runs the sync, unused-block and unused-key checks.
type Service struct {
	opts    Options
	source  locale.Source
	scanner *scanner.Scanner
	logger  *zap.Logger

	ignoreKeys   *pattern.Matcher
	ignoreBlocks *pattern.Matcher

	// scans coalesces identical concurrent source scans.
	scans singleflight.Group
}

// NewService creates a validation service reading documents from source and
// application code from fsys.
func NewService(opts Options, source locale.Source, fsys afero.Fs, logger *zap.Logger) *Service {
	s := &Service{
		opts:         opts,
		source:       source,
		logger:       logger,
		ignoreKeys:   pattern.Compile(opts.IgnoreKeys),
		ignoreBlocks: pattern.Compile(opts.IgnoreBlocks),
	}
	s.scanner = scanner.New(fsys, scanner.Options{
		Extensions: opts.Extensions,
		Exclude:    opts.Exclude,
		OnError: func(path string, err error) {
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
		},
	})
	return s
}

// Options returns the options the service was created with.
func (s *Service) Options() Options {
	return s.opts
}

// LoadCanonical loads the reference document. Any failure is fatal for the caller.
func (s *Service) LoadCanonical(ctx context.Context) (*catalog.Document, error) {
	doc, err := s.source.Load(ctx, s.opts.Canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical locale %s: %w", s.opts.Canonical, err)
	}
	return doc, nil
}

// ValidateSync compares the key sets of all configured languages.
// Missing or malformed languages are skipped with a warning; fewer than two
// remaining languages yields reconcile.ErrTooFewLanguages.
func (s *Service) ValidateSync(ctx context.Context) (*SyncReport, error) {
	langs := reconcile.Dedupe(s.opts.Languages)
	for _, lang := range langs {
		if _, err := language.Parse(lang); err != nil {
			s.logger.Warn("Language code is not a valid BCP 47 tag", zap.String("lang", lang), zap.Error(err))
		}
	}

	sources, failures := reconcile.Collect(ctx, langs, func(ctx context.Context, lang string) (catalog.KeySet, error) {
		doc, err := s.source.Load(ctx, lang)
		if err != nil {
			return nil, err
		}
		return catalog.Flatten(doc), nil
	})

	skipped := make([]SkippedLanguage, 0, len(failures))
	for _, f := range failures {
		loc := s.source.Location(f.Language)
		var perr *locale.ParseError
		switch {
		case errors.Is(f.Err, locale.ErrNotFound):
			s.logger.Warn("Translation file not found", zap.String("lang", f.Language), zap.String("location", loc))
			skipped = append(skipped, SkippedLanguage{Language: f.Language, Location: loc, Reason: "not found"})
		case errors.As(f.Err, &perr):
			s.logger.Error("Translation file is malformed", zap.String("lang", f.Language), zap.String("location", loc), zap.Error(perr.Err))
			skipped = append(skipped, SkippedLanguage{Language: f.Language, Location: loc, Reason: perr.Err.Error()})
		default:
			s.logger.Error("Failed to load translation file", zap.String("lang", f.Language), zap.String("location", loc), zap.Error(f.Err))
			skipped = append(skipped, SkippedLanguage{Language: f.Language, Location: loc, Reason: f.Err.Error()})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := reconcile.CompareSync(sources)
	if err != nil {
		return nil, fmt.Errorf("%w (loaded %d of %d)", err, len(sources), len(langs))
	}
	return &SyncReport{SyncResult: result, Skipped: skipped, Passed: result.InSync}, nil
}

// ValidateBlocks reports blocks of the canonical document never referenced in source.
func (s *Service) ValidateBlocks(ctx context.Context) (*BlocksReport, error) {
	doc, err := s.LoadCanonical(ctx)
	if err != nil {
		return nil, err
	}

	blocks := catalog.ExtractBlocks(doc)
	used, err := s.prefixesUsed(ctx, ScanTargets(blocks, s.ignoreBlocks))
	if err != nil {
		return nil, err
	}
	return DetectUnusedBlocks(blocks, s.ignoreBlocks, used), nil
}

// ValidateKeys reports keys of the canonical document never called in source.
func (s *Service) ValidateKeys(ctx context.Context) (*KeysReport, error) {
	doc, err := s.LoadCanonical(ctx)
	if err != nil {
		return nil, err
	}

	evidence, err := s.keyCalls(ctx)
	if err != nil {
		return nil, err
	}

	threshold := s.opts.MaxUnusedKeys
	if threshold < 0 {
		threshold = DefaultMaxUnusedKeys
	}
	prefixes := catalog.BlockPrefixes(catalog.ExtractBlocks(doc))
	return DetectUnusedKeys(catalog.Flatten(doc), prefixes, s.ignoreKeys, evidence, threshold), nil
}

func (s *Service) keyCalls(ctx context.Context) (catalog.KeySet, error) {
	v, err := s.coalesce(ctx, "keys\x00"+s.opts.SourceDir, func(ctx context.Context) (any, error) {
		return s.scanner.KeyCalls(ctx, s.opts.SourceDir)
	})
	if err != nil {
		return nil, err
	}
	return v.(catalog.KeySet), nil
}

func (s *Service) prefixesUsed(ctx context.Context, prefixes []string) (map[string]bool, error) {
	sorted := append([]string(nil), prefixes...)
	sort.Strings(sorted)
	key := "prefixes\x00" + s.opts.SourceDir + "\x00" + strings.Join(sorted, "\x00")

	v, err := s.coalesce(ctx, key, func(ctx context.Context) (any, error) {
		return s.scanner.PrefixesUsed(ctx, s.opts.SourceDir, prefixes)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]bool), nil
}

// coalesce shares one scan between concurrent callers with the same key.
// The scan runs detached from any single caller's cancellation; each caller
// stops waiting when its own ctx is done.
func (s *Service) coalesce(ctx context.Context, key string, scan func(context.Context) (any, error)) (any, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.scans.DoChan(key, func() (any, error) {
		return scan(shared)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Step names used in summaries.
const (
	StepSync   = "sync"
	StepBlocks = "blocks"
	StepKeys   = "keys"
)

// Summary collects the reports of a full validation run.
type Summary struct {
	Sync   *SyncReport   `json:"sync,omitempty"`
	Blocks *BlocksReport `json:"blocks,omitempty"`
	Keys   *KeysReport   `json:"keys,omitempty"`
	// Errors maps a step name to the error that stopped it.
	Errors map[string]string `json:"errors,omitempty"`
	Passed bool              `json:"passed"`
}

// Failed reports whether the named step errored or did not pass.
func (s *Summary) Failed(step string) bool {
	if _, ok := s.Errors[step]; ok {
		return true
	}
	switch step {
	case StepSync:
		return s.Sync == nil || !s.Sync.Passed
	case StepBlocks:
		return s.Blocks == nil || !s.Blocks.Passed
	case StepKeys:
		return s.Keys == nil || !s.Keys.Passed
	}
	return false
}

// RunAll runs sync, blocks and keys one after another. A step that errors
// counts as failed and the remaining steps still run.
func (s *Service) RunAll(ctx context.Context) *Summary {
	var errs [3]error
	sum := &Summary{}
	sum.Sync, errs[0] = s.ValidateSync(ctx)
	sum.Blocks, errs[1] = s.ValidateBlocks(ctx)
	sum.Keys, errs[2] = s.ValidateKeys(ctx)
	return s.finish(sum, errs)
}

// RunAllConcurrent runs the three checks in parallel and waits for all of them.
func (s *Service) RunAllConcurrent(ctx context.Context) *Summary {
	var (
		errs [3]error
		sum  = &Summary{}
		g    errgroup.Group
	)
	// A Group without a context never cancels siblings, so every step
	// still runs after another one fails.
	g.Go(func() error {
		sum.Sync, errs[0] = s.ValidateSync(ctx)
		return errs[0]
	})
	g.Go(func() error {
		sum.Blocks, errs[1] = s.ValidateBlocks(ctx)
		return errs[1]
	})
	g.Go(func() error {
		sum.Keys, errs[2] = s.ValidateKeys(ctx)
		return errs[2]
	})
	if err := g.Wait(); err != nil {
		s.logger.Debug("Concurrent validation finished with step errors", zap.Error(err))
	}
	return s.finish(sum, errs)
}

func (s *Service) finish(sum *Summary, errs [3]error) *Summary {
	for i, step := range []string{StepSync, StepBlocks, StepKeys} {
		if errs[i] == nil {
			continue
		}
		if sum.Errors == nil {
			sum.Errors = make(map[string]string)
		}
		sum.Errors[step] = errs[i].Error()
		s.logger.Error("Validation step failed", zap.String("step", step), zap.Error(errs[i]))
	}
	sum.Passed = !sum.Failed(StepSync) && !sum.Failed(StepBlocks) && !sum.Failed(StepKeys)
	return sum
}
