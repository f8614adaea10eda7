package overlay

import "testing"

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemesAreComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("theme %q has Name %q", name, th.Name)
		}
		for field, v := range map[string]string{
			"Surface": th.Surface, "Border": th.Border, "Text": th.Text,
			"Muted": th.Muted, "Danger": th.Danger,
		} {
			if v == "" {
				t.Fatalf("theme %q missing %s", name, field)
			}
		}
	}
}
