package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("source is required")

	if err.Error() != "source is required" {
		t.Errorf("expected 'source is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unexpected EOF")
	err := apperr.NewValidationWrap("invalid request body", inner)

	if err.Error() != "invalid request body: unexpected EOF" {
		t.Errorf("expected 'invalid request body: unexpected EOF', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNewRequiredField(t *testing.T) {
	err := apperr.NewRequiredField("text")

	if err.Field != "text" {
		t.Errorf("expected field 'text', got %q", err.Field)
	}
	if err.Error() != "text is required" {
		t.Errorf("expected 'text is required', got %q", err.Error())
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("text is required")

	wrapped := fmt.Errorf("bind request: %w", original)
	doubleWrapped := fmt.Errorf("eval handler: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "text is required" {
		t.Errorf("expected 'text is required', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("dictionary loader failed")
	wrapped := fmt.Errorf("eval handler: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestLanguageErrors_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.Error
		kind apperr.Kind
	}{
		{name: "lexical", err: apperr.NewLexical("invalid character '@'"), kind: apperr.KindLexical},
		{name: "syntax", err: apperr.NewSyntax("expected 'USANDO'"), kind: apperr.KindSyntax},
		{name: "type", err: apperr.NewType("caesar key must be a number"), kind: apperr.KindType},
		{name: "encoding", err: apperr.NewEncoding("invalid base64", nil), kind: apperr.KindEncoding},
		{name: "unknown method", err: apperr.NewUnknownMethod("unknown method 'ROT'"), kind: apperr.KindUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("eval: %w", tt.err)

			kind, ok := apperr.KindOf(wrapped)
			if !ok {
				t.Fatal("expected KindOf to find the language error")
			}
			if kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, kind)
			}
			if tt.err.Title() == "" {
				t.Error("expected non-empty title")
			}
		})
	}
}

func TestEncodingError_WrapsCause(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 4")
	err := apperr.NewEncoding("text is not valid base64", cause)

	if err.Error() != "text is not valid base64: illegal base64 data at input byte 4" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if _, ok := apperr.KindOf(errors.New("boom")); ok {
		t.Fatal("plain errors have no language kind")
	}
}
