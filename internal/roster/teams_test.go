package roster

import "testing"

func TestIsTeamInput(t *testing.T) {
	t.Parallel()

	teams := []string{"Eagles", "eagles", "phi", "PHI", "Chiefs", "sf", "SF", "commanders", "49ers"}
	for _, in := range teams {
		if !IsTeamInput(in) {
			t.Errorf("IsTeamInput(%q) = false, want true", in)
		}
	}

	players := []string{"Christian McCaffrey", "Saquon Barkley", "", "XYZ"}
	for _, in := range players {
		if IsTeamInput(in) {
			t.Errorf("IsTeamInput(%q) = true, want false", in)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Eagles", "PHI"},
		{"eagles", "PHI"},
		{"phi", "PHI"},
		{"Chiefs", "KC"},
		{"49ers", "SF"},
		{" washington commanders ", "WAS"},
		{"ram", "LAR"},
		{"sea", "SEA"},
		// Unknown input passes through uppercased.
		{"xyz", "XYZ"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
