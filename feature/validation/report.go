package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Output formats accepted by NewPrinter.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	syncListLimit  = 10
	keysGroupLimit = 5
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
	boldColor = color.New(color.Bold)
	rule      = strings.Repeat("━", 60)
)

// Printer renders reports as human-readable text or JSON.
type Printer struct {
	w      io.Writer
	format string
}

// NewPrinter creates a printer for format, which is "text" or "json".
func NewPrinter(w io.Writer, format string) (*Printer, error) {
	switch format {
	case FormatText, FormatJSON:
		return &Printer{w: w, format: format}, nil
	case "":
		return &Printer{w: w, format: FormatText}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

// Sync prints a sync report.
func (p *Printer) Sync(r *SyncReport) error {
	if p.format == FormatJSON {
		return p.json(r)
	}

	boldColor.Fprintln(p.w, "Validating translation key synchronization...")
	fmt.Fprintln(p.w)
	for _, s := range r.Skipped {
		warnColor.Fprintf(p.w, "⚠ Skipped %s (%s): %s\n", s.Language, s.Location, s.Reason)
	}

	if r.Passed {
		okColor.Fprintln(p.w, "✓ All translation files are synchronized!")
		fmt.Fprintf(p.w, "\n  Languages checked: %s\n", strings.Join(r.Languages, ", "))
		fmt.Fprintf(p.w, "  Total keys: %d\n", r.Summary.TotalKeys)
		return nil
	}

	for _, pair := range r.Mismatches() {
		failColor.Fprintf(p.w, "\n✗ Mismatch between %s and %s:\n", pair.A, pair.B)
		p.keyList(pair.A, pair.OnlyInA)
		p.keyList(pair.B, pair.OnlyInB)
	}
	failColor.Fprintln(p.w, "\n✗ Translation files are out of sync")
	return nil
}

func (p *Printer) keyList(lang string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n  Keys only in %s (%d):\n", lang, len(keys))
	for _, k := range head(keys, syncListLimit) {
		fmt.Fprintf(p.w, "    - %s\n", k)
	}
	if more := len(keys) - syncListLimit; more > 0 {
		fmt.Fprintf(p.w, "    ... and %d more\n", more)
	}
}

// Blocks prints an unused-block report.
func (p *Printer) Blocks(r *BlocksReport) error {
	if p.format == FormatJSON {
		return p.json(r)
	}

	boldColor.Fprintln(p.w, "Checking for unused translation blocks...")
	fmt.Fprintf(p.w, "\nFound %d translation blocks\n\n", len(r.Blocks))
	if n := len(r.Ignored); n > 0 {
		infoColor.Fprintf(p.w, "ℹ Ignoring %d blocks (from config patterns)\n\n", n)
	}

	if r.Passed {
		okColor.Fprintln(p.w, "✓ All translation blocks are being used!")
		fmt.Fprintf(p.w, "\n  Blocks checked: %d\n", len(r.Blocks))
		if n := len(r.Ignored); n > 0 {
			fmt.Fprintf(p.w, "  Ignored blocks: %d\n", n)
		}
		return nil
	}

	failColor.Fprintf(p.w, "✗ Found %d unused translation blocks:\n\n", len(r.Unused))
	for _, b := range r.Unused {
		fmt.Fprintf(p.w, "  ✗ %s (%d keys)\n", b.Prefix, b.KeyCount)
	}
	fmt.Fprintf(p.w, "\n  Total unused keys: %d\n", r.UnusedKeys)
	infoColor.Fprintf(p.w, "\nTip: Add useTypedTranslation(prefixes('%s')) to use this block\n", r.Unused[0].Prefix)
	return nil
}

// Keys prints an unused-key report.
func (p *Printer) Keys(r *KeysReport) error {
	if p.format == FormatJSON {
		return p.json(r)
	}

	boldColor.Fprintln(p.w, "Checking for unused translation keys...")
	fmt.Fprintf(p.w, "\nTotal translation keys: %d\n", r.TotalKeys)
	fmt.Fprintf(p.w, "Found %d translation calls in code\n\n", r.Calls)
	if r.Ignored > 0 {
		infoColor.Fprintf(p.w, "ℹ Ignoring %d keys (from config patterns)\n\n", r.Ignored)
	}

	if len(r.Unused) == 0 {
		okColor.Fprintln(p.w, "✓ All translation keys are being used!")
		fmt.Fprintf(p.w, "\n  Keys checked: %d\n", r.TotalKeys)
		if r.Ignored > 0 {
			fmt.Fprintf(p.w, "  Ignored keys: %d\n", r.Ignored)
		}
		return nil
	}

	c := warnColor
	if !r.Passed {
		c = failColor
	}
	c.Fprintf(p.w, "⚠ Found %d unused translation keys:\n\n", len(r.Unused))
	for _, g := range r.Groups {
		fmt.Fprintf(p.w, "  Block: %s\n", g.Block)
		for _, k := range head(g.Keys, keysGroupLimit) {
			fmt.Fprintf(p.w, "    - %s\n", k[strings.LastIndex(k, ".")+1:])
		}
		if more := len(g.Keys) - keysGroupLimit; more > 0 {
			fmt.Fprintf(p.w, "    ... and %d more\n", more)
		}
		fmt.Fprintln(p.w)
	}
	fmt.Fprintln(p.w, "These keys exist in translations but aren't used in code")
	fmt.Fprintln(p.w, "Consider removing them or verify they're needed")
	if !r.Passed {
		failColor.Fprintf(p.w, "\n✗ More than %d unused keys\n", r.Threshold)
	}
	return nil
}

// Summary prints every step of a full run followed by the overall verdict.
func (p *Printer) Summary(s *Summary) error {
	if p.format == FormatJSON {
		return p.json(s)
	}

	boldColor.Fprintln(p.w, "Running all i18n validations...")
	fmt.Fprintln(p.w, rule)

	steps := []struct {
		name  string
		title string
		print func() error
	}{
		{StepSync, "Step 1/3: Cross-language synchronization", func() error { return p.Sync(s.Sync) }},
		{StepBlocks, "Step 2/3: Unused translation blocks", func() error { return p.Blocks(s.Blocks) }},
		{StepKeys, "Step 3/3: Unused translation keys", func() error { return p.Keys(s.Keys) }},
	}
	for _, st := range steps {
		fmt.Fprintf(p.w, "\n%s\n%s\n", st.title, rule)
		if msg, ok := s.Errors[st.name]; ok {
			failColor.Fprintf(p.w, "✗ %s\n", msg)
			continue
		}
		if err := st.print(); err != nil {
			return err
		}
	}

	fmt.Fprintf(p.w, "\n%s\n", rule)
	if !s.Passed {
		failColor.Fprintln(p.w, "\n✗ Validation completed with errors")
		fmt.Fprintln(p.w, "\nFix the issues above and run again")
		return nil
	}
	okColor.Fprintln(p.w, "\n✓ All validations passed!")
	fmt.Fprintln(p.w, "\nYour translations are:")
	fmt.Fprintln(p.w, "  ✓ Synchronized across all languages")
	fmt.Fprintln(p.w, "  ✓ All blocks are being used")
	if s.Keys != nil && s.Keys.Warning() {
		fmt.Fprintf(p.w, "  ⚠ %d unused keys (within the limit of %d)\n", len(s.Keys.Unused), s.Keys.Threshold)
	} else {
		fmt.Fprintln(p.w, "  ✓ All keys are being used")
	}
	return nil
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
