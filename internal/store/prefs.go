package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fixed storage keys.
const (
	HistoryKey = "calc_history"
	ThemeKey   = "calc_theme"
)

// MaxHistory is the number of entries kept, newest first.
const MaxHistory = 200

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	Expression string `json:"expr"`
	Result     string `json:"result"`
	Timestamp  int64  `json:"t"` // Unix milliseconds.
}

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Prefs stores calculator history and theme in a KV.
type Prefs struct {
	kv KV
}

func NewPrefs(kv KV) *Prefs {
	return &Prefs{kv: kv}
}

// LoadHistory returns the stored history, newest first. Missing or
// malformed data yields an empty history.
func (p *Prefs) LoadHistory() []HistoryEntry {
	raw, ok, err := p.kv.Get(HistoryKey)
	if err != nil {
		log.Warningf("read history: %s", err)
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Warningf("discarding malformed history: %s", err)
		return nil
	}
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	return entries
}

// SaveHistory persists at most MaxHistory entries.
func (p *Prefs) SaveHistory(entries []HistoryEntry) error {
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := p.kv.Set(HistoryKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// ClearHistory removes all stored history.
func (p *Prefs) ClearHistory() error {
	return p.SaveHistory(nil)
}

// LoadTheme returns the stored theme, defaulting to light.
func (p *Prefs) LoadTheme() Theme {
	raw, ok, err := p.kv.Get(ThemeKey)
	if err != nil {
		log.Warningf("read theme: %s", err)
		return ThemeLight
	}
	if !ok {
		return ThemeLight
	}
	t, err := ParseTheme(raw)
	if err != nil {
		log.Warningf("%s, using light", err)
	}
	return t
}

func (p *Prefs) SaveTheme(t Theme) error {
	if err := p.kv.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
