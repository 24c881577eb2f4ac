package text

import (
	"errors"
	"testing"
)

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("NewFontSource(empty) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Fatal("NewFontSource accepted garbage data")
	}
}

func TestNewFontSourceFromFileMissing(t *testing.T) {
	if _, err := NewFontSourceFromFile("/nonexistent/font.ttf"); err == nil {
		t.Fatal("NewFontSourceFromFile accepted a missing path")
	}
}
