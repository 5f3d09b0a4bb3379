package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// TestNewUTF8Reader_NoContentType tests that bodies without a declared charset pass through unchanged
func TestNewUTF8Reader_NoContentType(t *testing.T) {
	t.Parallel()
	input := []byte(`{"name":"Amélie ☺"}`)

	for _, contentType := range []string{"", "application/json", "application/json; charset=utf-8", "application/json; charset=UTF8", "not a media type;;"} {
		reader, err := NewUTF8Reader(bytes.NewReader(input), contentType)
		if err != nil {
			t.Fatalf("NewUTF8Reader(%q) failed: %v", contentType, err)
		}

		output, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("Failed to read: %v", err)
		}

		if !bytes.Equal(output, input) {
			t.Errorf("Content-Type %q: expected content to pass through unchanged, got %q", contentType, output)
		}
	}
}

// TestNewUTF8Reader_ISO88591ToUTF8 tests conversion from ISO-8859-1 to UTF-8
func TestNewUTF8Reader_ISO88591ToUTF8(t *testing.T) {
	t.Parallel()
	// é = 0xE9 in ISO-8859-1
	input := []byte(`{"name":"Caf` + string([]byte{0xE9}) + `"}`)

	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=ISO-8859-1")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	if !strings.Contains(string(output), "Café") {
		t.Errorf("Expected 'Café' in UTF-8 output, got: %s", output)
	}
}

// TestNewUTF8Reader_Windows1252ToUTF8 tests conversion from Windows-1252 to UTF-8
func TestNewUTF8Reader_Windows1252ToUTF8(t *testing.T) {
	t.Parallel()
	// ™ = 0x99 in Windows-1252
	input := []byte(`{"name":"Test` + string([]byte{0x99}) + `"}`)

	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=windows-1252")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	if !strings.Contains(string(output), "™") {
		t.Errorf("Expected '™' in UTF-8 output, got: %s", output)
	}
}

// TestNewUTF8Reader_UnknownCharset tests that an unknown charset is reported
func TestNewUTF8Reader_UnknownCharset(t *testing.T) {
	t.Parallel()
	_, err := NewUTF8Reader(strings.NewReader("{}"), "application/json; charset=klingon")
	if err == nil {
		t.Fatal("Expected error for unknown charset")
	}
}
