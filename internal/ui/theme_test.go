package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatal("ThemeNames() should return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.in); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		for _, kind := range []string{sectionWarmup, sectionWorkout, sectionCooldown} {
			if th.SectionColors[kind] == "" {
				t.Fatalf("theme %s has no %s color", name, kind)
			}
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestStylesSectionFallsBackToAccent(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	if got := styles.Section("unknown").GetForeground(); got != styles.AccentText.GetForeground() {
		t.Fatalf("Section(unknown) foreground = %v, want accent", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"exactly ten", 11, "exactly ten"},
		{"much too long", 8, "much ..."},
		{"abc", 2, "ab"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/state/liftbook/liftbook.log", 15)
	if len([]rune(got)) != 15 {
		t.Fatalf("truncateMiddle length = %d, want 15 (%q)", len([]rune(got)), got)
	}
	if got[:7] != "/home/u" || got[len(got)-7:] != "ook.log" {
		t.Fatalf("truncateMiddle = %q, want both ends kept", got)
	}
	if got := truncateMiddle("short", 10); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}
