package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("123456")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !Verify("123456", encoded) {
		t.Fatal("expected password to verify")
	}
	if Verify("wrong", encoded) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestVerifyMalformedEncoding(t *testing.T) {
	for _, encoded := range []string{"", "not-a-hash", "$argon2id$v=19$m=1$salt$hash"} {
		if Verify("anything", encoded) {
			t.Fatalf("expected %q to fail verification", encoded)
		}
	}
}
