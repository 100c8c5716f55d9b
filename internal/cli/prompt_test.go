package cli

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestSelectWallets(t *testing.T) {
	t.Run("empty input keeps defaults", func(t *testing.T) {
		got, err := selectWallets(strings.NewReader("\n"), io.Discard)
		if err != nil {
			t.Fatalf("selectWallets() error: %v", err)
		}
		if got != nil {
			t.Errorf("got %v, want nil for defaults", got)
		}
	})

	t.Run("numbered multi-select", func(t *testing.T) {
		got, err := selectWallets(strings.NewReader("1,3\n"), io.Discard)
		if err != nil {
			t.Fatalf("selectWallets() error: %v", err)
		}
		want := []string{"freighter", "xbull"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got, err := selectWallets(strings.NewReader("2, 2, 1\n"), io.Discard)
		if err != nil {
			t.Fatalf("selectWallets() error: %v", err)
		}
		want := []string{"albedo", "freighter"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		if _, err := selectWallets(strings.NewReader("9\n"), io.Discard); err == nil {
			t.Error("expected error for out-of-range selection")
		}
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		if _, err := selectWallets(strings.NewReader("freighter\n"), io.Discard); err == nil {
			t.Error("expected error for non-numeric selection")
		}
	})

	t.Run("menu lists every choice", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := selectWallets(strings.NewReader("\n"), &buf); err != nil {
			t.Fatal(err)
		}
		for _, choice := range walletChoices {
			if !strings.Contains(buf.String(), choice) {
				t.Errorf("menu missing choice %q", choice)
			}
		}
	})
}
