package helpers

import (
	"encoding/base64"
	"testing"
)

func token(claims string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(claims))
	signature := base64.RawURLEncoding.EncodeToString([]byte("signature"))
	return header + "." + body + "." + signature
}

func TestTokenSubject(t *testing.T) {
	subject, err := TokenSubject(token(`{"sub":"alice"}`))
	if err != nil {
		t.Fatalf("TokenSubject: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("TokenSubject = %q, want %q", subject, "alice")
	}
}

func TestTokenSubjectRejectsExpired(t *testing.T) {
	if _, err := TokenSubject(token(`{"sub":"alice","exp":1}`)); err == nil {
		t.Fatal("TokenSubject accepted an expired token")
	}
}

func TestTokenSubjectRejectsGarbage(t *testing.T) {
	if _, err := TokenSubject("not-a-token"); err == nil {
		t.Fatal("TokenSubject accepted garbage")
	}
	if _, err := TokenSubject(token(`{}`)); err == nil {
		t.Fatal("TokenSubject accepted a token without subject")
	}
}
