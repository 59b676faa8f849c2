package proxy

import "testing"

func TestPrefixRewrite(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		path string
		want string
	}{
		{"swaps prefix", "/api/auth", "/auth", "/api/auth/login", "/auth/login"},
		{"bare prefix", "/api/auth", "/auth", "/api/auth", "/auth"},
		{"nested path", "/api/media", "/media", "/api/media/projects/u1", "/media/projects/u1"},
		{"moderation remap", "/api/moderation/tickets", "/api/chat/tickets", "/api/moderation/tickets/abc/status", "/api/chat/tickets/abc/status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Prefix(tc.from, tc.to)(tc.path)
			if got != tc.want {
				t.Errorf("Prefix(%q, %q)(%q) = %q, want %q", tc.from, tc.to, tc.path, got, tc.want)
			}
		})
	}
}

func TestKeepRewrite(t *testing.T) {
	path := "/api/chat/tickets/abc/messages"
	if got := Keep()(path); got != path {
		t.Errorf("Keep()(%q) = %q, want unchanged", path, got)
	}
}
