package config

import (
	"reflect"
	"testing"
)

func TestWsOrigins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "https://app.example.com", []string{"https://app.example.com"}},
		{"list with spaces", " https://a.example.com, https://b.example.com ,", []string{"https://a.example.com", "https://b.example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := APIConfig{WsAllowedOrigins: tc.raw}.WsOrigins()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("WsOrigins(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
