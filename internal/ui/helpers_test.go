package ui

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "$0.00"},
		{"cents", 12.5, "$12.50"},
		{"rounding", 9.999, "$10.00"},
		{"negative", -3.25, "-$3.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatMoney(tc.in); got != tc.want {
				t.Fatalf("formatMoney(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2026-08-30T14:05:00Z"); got != "2026-08-30" {
		t.Fatalf("formatDate = %q, want 2026-08-30", got)
	}
	if got := formatDate("2026-08-30 14:05"); got != "2026-08-30" {
		t.Fatalf("formatDate = %q, want 2026-08-30", got)
	}
	if got := formatDate("  2026-08-30  "); got != "2026-08-30" {
		t.Fatalf("formatDate = %q, want trimmed date", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  ", 10); got != "" {
		t.Fatalf("truncate blank = %q, want empty", got)
	}
	if got := truncate("abcd", 4); got != "abcd" {
		t.Fatalf("truncate fit = %q, want abcd", got)
	}
	got := truncate("abcdefgh", 5)
	if got != "abcd…" {
		t.Fatalf("truncate = %q, want abcd…", got)
	}
	if got := truncate("abcd", 1); got != "a" {
		t.Fatalf("truncate limit 1 = %q, want a", got)
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "item"); got != "1 item" {
		t.Fatalf("plural(1) = %q", got)
	}
	if got := plural(3, "item"); got != "3 items" {
		t.Fatalf("plural(3) = %q", got)
	}
}
