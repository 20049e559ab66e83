// Package agf reads and writes Abalone game files: PGN style tag pairs, the
// start position diagram and the move tree in FFTL notation with comments
// and variations.
package agf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"abalone-local/settings"
)

// Tags of the seven tag roster, written first and in this order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "Black", "White", "Result"}

func writeTag(w io.Writer, key, value string) {
	var sb strings.Builder
	for _, r := range value {
		if r == '\\' || r == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	fmt.Fprintf(w, "[%s \"%s\"]\n", key, sb.String())
}

// writeTags prints the roster tags that are present, then the rest sorted,
// then a blank line if anything was printed.
func writeTags(w io.Writer, tags settings.Settings) {
	roster := make(map[string]bool, len(sevenTagRoster))
	for _, k := range sevenTagRoster {
		roster[k] = true
		if v, ok := tags[k]; ok {
			writeTag(w, k, v)
		}
	}
	for _, k := range tags.Keys() {
		if !roster[k] {
			writeTag(w, k, tags[k])
		}
	}
	if len(tags) > 0 {
		fmt.Fprintln(w)
	}
}

// parseTag reads one `[Key "Value"]` line.
func parseTag(line string) (key, value string, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return "", "", fmt.Errorf("tag %q: missing '['", line)
	}
	rest := line[1:]
	end := strings.IndexAny(rest, " \"")
	if end <= 0 {
		return "", "", fmt.Errorf("tag %q: missing name", line)
	}
	key = rest[:end]
	rest = strings.TrimLeft(rest[end:], " ")
	if !strings.HasPrefix(rest, "\"") {
		return "", "", fmt.Errorf("tag %q: missing value", line)
	}
	var sb strings.Builder
	escaped := false
	for _, r := range rest[1:] {
		switch {
		case escaped:
			sb.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			return key, sb.String(), nil
		default:
			sb.WriteRune(r)
		}
	}
	return "", "", fmt.Errorf("tag %q: unterminated value", line)
}

func skipSpace(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return br.UnreadByte()
		}
	}
}

// readTags reads tag lines until the first line not starting with '['.
func readTags(br *bufio.Reader) (settings.Settings, error) {
	tags := settings.Settings{}
	for {
		if err := skipSpace(br); err != nil {
			if err == io.EOF {
				return tags, nil
			}
			return tags, err
		}
		c, err := br.Peek(1)
		if err != nil || c[0] != '[' {
			return tags, nil
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return tags, err
		}
		key, value, perr := parseTag(line)
		if perr != nil {
			return tags, perr
		}
		tags[key] = value
		if err == io.EOF {
			return tags, nil
		}
	}
}
