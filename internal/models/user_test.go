package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"María García", "María G."},
		{"Juan", "Juan"},
		{"Ana María de la Cruz", "Ana C."},
		{"  Pedro   Álvarez  ", "Pedro Á."},
		{"", ""},
	}

	for _, tt := range tests {
		got := User{Name: tt.name}.DisplayName()
		if got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
