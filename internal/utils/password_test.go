package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("s3cret-password", hash) {
		t.Fatal("Expected correct password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("Expected wrong password to fail verification")
	}
}
