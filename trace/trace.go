// Package trace provides named debug flags that write structured logs to a
// trace file. Flags are off until enabled by name, from code or from the
// [trace] section of an init file.
package trace

import (
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"abalone-local/settings"
)

// Flag is a named trace switch.
type Flag struct {
	name    string
	enabled atomic.Bool
}

var (
	mu    sync.Mutex
	flags = map[string]*Flag{}
	out   io.Writer = io.Discard
	file  *os.File
	path  string
)

// Register returns the flag called name, creating it on first use.
func Register(name string) *Flag {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := flags[name]; ok {
		return f
	}
	f := &Flag{name: name}
	flags[name] = f
	return f
}

func (f *Flag) Name() string {
	return f.name
}

func (f *Flag) Enabled() bool {
	return f.enabled.Load()
}

func (f *Flag) SetEnabled(on bool) {
	f.enabled.Store(on)
}

// Logger returns a logger tagged with the flag name. It discards everything
// while the flag is off.
func (f *Flag) Logger() zerolog.Logger {
	if !f.Enabled() {
		return zerolog.Nop()
	}
	mu.Lock()
	w := out
	mu.Unlock()
	return zerolog.New(syncWriter{w}).With().Timestamp().Str("module", f.name).Logger()
}

type syncWriter struct {
	w io.Writer
}

func (s syncWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return s.w.Write(p)
}

// Set enables or disables a registered flag. It reports false for unknown
// names.
func Set(name string, on bool) bool {
	mu.Lock()
	f, ok := flags[name]
	mu.Unlock()
	if ok {
		f.SetEnabled(on)
	}
	return ok
}

// SetFile sends trace output to the file at p, appending. An empty path
// discards output.
func SetFile(p string) error {
	mu.Lock()
	defer mu.Unlock()
	if p == path {
		return nil
	}
	if file != nil {
		file.Close()
		file = nil
	}
	out, path = io.Discard, ""
	if p == "" {
		return nil
	}
	fp, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	file, out, path = fp, fp, p
	return nil
}

// SetOutput sends trace output to w, or discards it when w is nil.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	out, path = w, ""
}

// Configure applies "file=<path>" and "<flag>=on|off" entries. Unknown flag
// names are kept so that the flag picks them up when registered.
func Configure(s settings.Settings) error {
	for _, k := range s.Keys() {
		if k == "file" {
			continue
		}
		Register(k).SetEnabled(s.Bool(k, false))
	}
	if p, ok := s.Get("file"); ok {
		return SetFile(p)
	}
	return nil
}

// Settings returns the state of every flag and the trace file, in the form
// accepted by Configure.
func Settings() settings.Settings {
	mu.Lock()
	defer mu.Unlock()
	s := settings.Settings{}
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if flags[name].Enabled() {
			s[name] = "on"
		} else {
			s[name] = "off"
		}
	}
	if path != "" {
		s["file"] = path
	}
	return s
}

// Sync configures tracing from the [trace] section of f and then writes the
// known flags back into it.
func Sync(f *settings.InitFile) error {
	if s, ok := f.Get("trace"); ok {
		if err := Configure(s); err != nil {
			return err
		}
	}
	f.Set("trace", Settings())
	return nil
}
