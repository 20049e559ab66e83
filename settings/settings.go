// Package settings stores key/value configuration: plain "key=value" lists
// and sectioned init files that keep comments and line order when rewritten.
package settings

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Settings maps keys to string values.
type Settings map[string]string

// Get returns the value for key and whether it was present.
func (s Settings) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Int returns the value for key as an integer, or def when it is missing or
// not a number.
func (s Settings) Int(key string, def int) int {
	v, ok := s[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Bool returns the value for key as a boolean. "on", "yes" and "true" are
// accepted as well as non-zero numbers.
func (s Settings) Bool(key string, def bool) bool {
	v, ok := s[key]
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes", "true":
		return true
	case "off", "no", "false", "":
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n != 0
}

func (s Settings) Set(key string, value any) {
	s[key] = fmt.Sprint(value)
}

// Clone returns a copy of s.
func (s Settings) Clone() Settings {
	c := make(Settings, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Keys returns the keys in sorted order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Read adds the "key=value" lines of r to s. A trailing carriage return is
// dropped. It reports false when some line was not an assignment; such lines
// are skipped.
func (s Settings) Read(r io.Reader) (bool, error) {
	pure := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			pure = false
			continue
		}
		if i := strings.IndexByte(value, '\r'); i >= 0 {
			value = value[:i]
		}
		s[key] = value
	}
	return pure, sc.Err()
}

// Write prints s as sorted "key=value" lines.
func (s Settings) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, k := range s.Keys() {
		fmt.Fprintf(bw, "%s=%s\n", k, s[k])
	}
	return bw.Flush()
}
