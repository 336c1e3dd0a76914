package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/GregMSThompson/travel-backend/internal/errs"
)

func TestAskRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		msg     string
	}{
		{name: "valid", body: `{"user_query":"Is Lisbon nice?"}`},
		{name: "empty query", body: `{"user_query":""}`},
		{name: "extra field", body: `{"user_query":"Lisbon","lang":"en"}`},
		{name: "missing field", body: `{}`, wantErr: true, msg: "user_query"},
		{name: "wrong type", body: `{"user_query":42}`, wantErr: true, msg: "string"},
		{name: "not an object", body: `["Lisbon"]`, wantErr: true},
		{name: "invalid json", body: `{"user_query":`, wantErr: true, msg: "valid JSON"},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := AskRequest.Validate([]byte(tc.body))
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if tc.msg != "" && !strings.Contains(verr.Message, tc.msg) {
				t.Fatalf("message %q should mention %q", verr.Message, tc.msg)
			}
		})
	}
}

func TestMustCompilePanicsOnBadSchema(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustCompile(map[string]any{"type": 12})
}
