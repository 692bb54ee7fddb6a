package space

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed systems/*.txt
var systemsFS embed.FS

// Builtins lists the names of the embedded system files.
func Builtins() []string {
	entries, err := fs.ReadDir(systemsFS, "systems")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// LoadBuiltin loads an embedded system by name, e.g. "solar".
func LoadBuiltin(name string) ([]*Body, error) {
	data, err := systemsFS.ReadFile("systems/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no built-in system %q (have %s)", name, strings.Join(Builtins(), ", "))
	}
	return LoadSystem(bytes.NewReader(data))
}

// Title turns a file name like "solar_system" into "Solar System".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}
