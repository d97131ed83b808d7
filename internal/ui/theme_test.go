package ui

import (
	"testing"
)

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "gruvbox", "nord", "dracula"} {
		t.Run(name, func(t *testing.T) {
			theme, ok := ThemeByName(name)
			if !ok {
				t.Fatalf("ThemeByName(%q) not found", name)
			}
			if theme.Name != name {
				t.Errorf("Name = %q, want %q", theme.Name, name)
			}
		})
	}

	theme, ok := ThemeByName("solarized")
	if ok {
		t.Error("ThemeByName(solarized) should not be found")
	}
	if theme.Name != "default" {
		t.Errorf("fallback theme = %q, want default", theme.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	name := "default"
	seen := map[string]bool{}
	for i := 0; i < len(themeOrder); i++ {
		name = NextTheme(name).Name
		seen[name] = true
	}
	if name != "default" {
		t.Errorf("after a full cycle got %q, want default", name)
	}
	if len(seen) != len(themeOrder) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(themeOrder))
	}
	if got := NextTheme("unknown").Name; got != "default" {
		t.Errorf("NextTheme(unknown) = %q, want default", got)
	}
	if got := NextTheme("gruvbox").Name; got != "nord" {
		t.Errorf("NextTheme(gruvbox) = %q, want nord", got)
	}
}

func TestThemeNamesSorted(t *testing.T) {
	names := ThemeNames()
	want := []string{"default", "dracula", "gruvbox", "nord"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ThemeNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
