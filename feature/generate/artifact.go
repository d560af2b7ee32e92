package generate

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"i18next-typesafe/core/catalog"
)

const (
	headerLine   = "// AUTO-GENERATED - DO NOT EDIT"
	sourceLine   = "// Generated from translation files"
	countPrefix  = "// Total keys: "
	typeDeclLine = "export type TranslationKey ="
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// Render builds the type declaration listing every key in sorted order.
// An empty key set renders as `never`.
func Render(keys catalog.KeySet) string {
	sorted := keys.Sorted()

	var b strings.Builder
	b.WriteString(headerLine + "\n")
	b.WriteString(sourceLine + "\n")
	b.WriteString(countPrefix + strconv.Itoa(len(sorted)) + "\n")
	b.WriteString("\n")
	b.WriteString(typeDeclLine)

	if len(sorted) == 0 {
		b.WriteString(" never;\n")
		return b.String()
	}
	for i, k := range sorted {
		b.WriteString("\n  | '")
		b.WriteString(literalEscaper.Replace(k))
		b.WriteString("'")
		if i == len(sorted)-1 {
			b.WriteString(";")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// ParseArtifact reads the key list back from a rendered declaration.
// It checks the declared total against the number of literals found.
func ParseArtifact(text string) ([]string, error) {
	var (
		keys     = []string{}
		declared = -1
		inType   bool
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, countPrefix):
			n, err := strconv.Atoi(strings.TrimPrefix(line, countPrefix))
			if err != nil {
				return nil, fmt.Errorf("invalid key count line %q", line)
			}
			declared = n
		case strings.HasPrefix(line, typeDeclLine):
			inType = true
			if strings.TrimSpace(strings.TrimPrefix(line, typeDeclLine)) == "never;" {
				inType = false
			}
		case inType && strings.HasPrefix(line, "| '"):
			lit := strings.TrimSuffix(strings.TrimPrefix(line, "| "), ";")
			key, err := unquote(lit)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			if strings.HasSuffix(line, ";") {
				inType = false
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if declared < 0 {
		return nil, fmt.Errorf("missing %q header", strings.TrimSpace(countPrefix))
	}
	if declared != len(keys) {
		return nil, fmt.Errorf("header declares %d keys but %d were found", declared, len(keys))
	}
	return keys, nil
}

// unquote decodes a single-quoted literal written by Render.
func unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", fmt.Errorf("malformed key literal %s", lit)
	}
	body := lit[1 : len(lit)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			if i+1 >= len(body) {
				return "", fmt.Errorf("malformed key literal %s", lit)
			}
			i++
			switch c = body[i]; c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			}
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
