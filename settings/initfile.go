package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// section holds a header and every line up to the next header. The section
// before the first header has an empty name.
type section struct {
	name  string
	lines []string
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";")
}

func (sec *section) settings() Settings {
	s := Settings{}
	for _, line := range sec.lines {
		if isComment(line) {
			continue
		}
		if key, value, ok := strings.Cut(line, "="); ok {
			s[key] = value
		}
	}
	return s
}

func (sec *section) update(s Settings) {
	remaining := s.Clone()
	for i, line := range sec.lines {
		if isComment(line) {
			continue
		}
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if v, found := remaining[key]; found {
			sec.lines[i] = key + "=" + v
			delete(remaining, key)
		}
	}

	if len(sec.lines) == 0 {
		sec.lines = append(sec.lines, "")
	}
	at := len(sec.lines)
	for at > 0 && sec.lines[at-1] == "" {
		at--
	}
	added := make([]string, 0, len(remaining))
	for _, k := range remaining.Keys() {
		added = append(added, k+"="+remaining[k])
	}
	sec.lines = append(sec.lines[:at], append(added, sec.lines[at:]...)...)
}

// InitFile is a sectioned settings file. Comments, blank lines and the order
// of entries survive a read/write cycle.
//
//	[engine]
//	name=random
//	; a comment
type InitFile struct {
	sections []section
}

// Read appends the sections of r. Text lines without '=' are turned into
// "# " comments so that it is clear they are ignored.
func (f *InitFile) Read(r io.Reader) error {
	cur := section{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "["):
			f.sections = append(f.sections, cur)
			name := strings.TrimRight(line, " ")
			name = strings.TrimPrefix(name, "[")
			name = strings.TrimSuffix(name, "]")
			cur = section{name: name}
		case !strings.Contains(line, "="):
			if line != "" && !isComment(line) {
				line = "# " + line
			}
			cur.lines = append(cur.lines, line)
		default:
			cur.lines = append(cur.lines, line)
		}
	}
	f.sections = append(f.sections, cur)
	return sc.Err()
}

func (f *InitFile) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, sec := range f.sections {
		if !(i == 0 && sec.name == "") {
			fmt.Fprintf(bw, "[%s]\n", sec.name)
		}
		for _, line := range sec.lines {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Sections returns the section names in file order.
func (f *InitFile) Sections() []string {
	names := make([]string, 0, len(f.sections))
	for _, sec := range f.sections {
		names = append(names, sec.name)
	}
	return names
}

// Get returns the settings of the named section.
func (f *InitFile) Get(name string) (Settings, bool) {
	for i := range f.sections {
		if f.sections[i].name == name {
			return f.sections[i].settings(), true
		}
	}
	return Settings{}, false
}

// Set updates the named section, creating it at the end if needed. Existing
// keys are changed in place and new keys are added after the last non-blank
// line of the section.
func (f *InitFile) Set(name string, s Settings) {
	for i := range f.sections {
		if f.sections[i].name == name {
			f.sections[i].update(s)
			return
		}
	}
	sec := section{name: name}
	sec.update(s)
	f.sections = append(f.sections, sec)
}

// Load reads an init file from disk.
func Load(path string) (*InitFile, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	f := &InitFile{}
	if err := f.Read(fp); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return f, nil
}

// Save writes the init file to disk.
func (f *InitFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// ErrNoInitFile is returned by FindInitFile when no candidate exists.
var ErrNoInitFile = errors.New("init file not found")

// FindInitFile looks for name in the working directory and then in the XDG
// config directories under "abalone-local".
func FindInitFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	path, err := xdg.SearchConfigFile(filepath.Join("abalone-local", name))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoInitFile, name)
	}
	return path, nil
}
