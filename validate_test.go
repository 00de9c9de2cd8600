package markup

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), 60), 0x01, 0x02, 0x03, 0x04)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsText(t *testing.T) {
	data := []byte("The *quick*, ~red~ brown fox.\r\n\tIndented é line\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestParseDocumentRejectsBinary(t *testing.T) {
	_, err := ParseDocument([]byte{'a', 0x00})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}
