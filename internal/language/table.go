package language

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Auto is the reserved source-language selector meaning "let the provider
// detect the language".
const Auto = "auto"

// Entry is one row of the language table: a display name, the translation
// code the provider understands, and an optional BCP-47 speech locale.
type Entry struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	TTSLocale string `json:"tts_locale,omitempty"`
}

// Table is an immutable language lookup table. Build it once with NewTable
// or LoadTableFile; lookups are read-only and safe for concurrent use.
type Table struct {
	entries []Entry
	byName  map[string]Entry
	byCode  map[string]Entry
}

//go:embed table_schema.json
var tableSchemaJSON []byte

// NewTable builds a table from explicit entries. Names must be unique;
// when several entries share a translation code, the last one wins for
// code lookups.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("language table is empty")
	}

	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
		byCode:  make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		code := NormalizeTag(entry.Code)
		if name == "" || code == "" {
			return nil, fmt.Errorf("language entry %q/%q is incomplete", entry.Name, entry.Code)
		}
		if _, exists := t.byName[nameKey(name)]; exists {
			return nil, fmt.Errorf("duplicate language name %q", name)
		}

		row := Entry{
			Name:      name,
			Code:      code,
			TTSLocale: strings.TrimSpace(entry.TTSLocale),
		}
		t.entries = append(t.entries, row)
		t.byName[nameKey(name)] = row
		t.byCode[code] = row
	}

	return t, nil
}

// DefaultTable builds the built-in table. The built-in entries are fixed at
// compile time, so a construction failure is a programming error.
func DefaultTable() *Table {
	t, err := NewTable(builtinEntries)
	if err != nil {
		panic(fmt.Sprintf("built-in language table is invalid: %v", err))
	}
	return t
}

// LoadTableFile reads a JSON language table, validates it against the
// embedded schema, and builds a table from it.
func LoadTableFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language table: %w", err)
	}

	if err := validateTableJSON(raw); err != nil {
		return nil, fmt.Errorf("language table %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode language table %s: %w", path, err)
	}

	return NewTable(entries)
}

func validateTableJSON(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("table_schema.json", bytes.NewReader(tableSchemaJSON)); err != nil {
		return fmt.Errorf("load table schema: %w", err)
	}
	schema, err := compiler.Compile("table_schema.json")
	if err != nil {
		return fmt.Errorf("compile table schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse table JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validate table: %w", err)
	}
	return nil
}

// Entries returns the table rows in declaration order. The returned slice
// is a copy.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ResolveName looks an entry up by its display name (case-insensitive).
func (t *Table) ResolveName(name string) (Entry, bool) {
	entry, ok := t.byName[nameKey(name)]
	return entry, ok
}

// ResolveCode looks an entry up by its translation code.
func (t *Table) ResolveCode(code string) (Entry, bool) {
	entry, ok := t.byCode[NormalizeTag(code)]
	return entry, ok
}

// Resolve accepts either a display name or a translation code.
func (t *Table) Resolve(nameOrCode string) (Entry, bool) {
	if entry, ok := t.ResolveName(nameOrCode); ok {
		return entry, true
	}
	return t.ResolveCode(nameOrCode)
}

// KnownCode reports whether code resolves to a table entry.
func (t *Table) KnownCode(code string) bool {
	_, ok := t.ResolveCode(code)
	return ok
}

// DisplayName returns the display name for a translation code, or the code
// itself when the table has no entry for it.
func (t *Table) DisplayName(code string) string {
	if entry, ok := t.ResolveCode(code); ok {
		return entry.Name
	}
	return strings.TrimSpace(code)
}

// TTSLocale returns the speech-synthesis locale for a translation code.
// Entries without a dedicated locale fall back to the bare code, which most
// speech engines accept.
func (t *Table) TTSLocale(code string) string {
	normalized := NormalizeTag(code)
	if entry, ok := t.byCode[normalized]; ok && entry.TTSLocale != "" {
		return entry.TTSLocale
	}
	return normalized
}

// Codes returns the distinct translation codes in the table, sorted.
func (t *Table) Codes() []string {
	seen := make(map[string]struct{}, len(t.entries))
	codes := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		if _, dup := seen[entry.Code]; dup {
			continue
		}
		seen[entry.Code] = struct{}{}
		codes = append(codes, entry.Code)
	}
	sort.Strings(codes)
	return codes
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
