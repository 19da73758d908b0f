package domain

import (
	"encoding/json"
	"testing"
)

func TestAccountJSONHidesSecrets(t *testing.T) {
	raw, err := json.Marshal(Account{ID: 1, Email: "a@b.c", FirstName: "Ada", LastName: "Lovelace", PasswordHash: "h", SessionToken: "tok"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["firstName"] != "Ada" || out["lastName"] != "Lovelace" {
		t.Fatalf("unexpected names: %s", raw)
	}
	for _, key := range []string{"PasswordHash", "SessionToken", "passwordHash", "sessionToken"} {
		if _, ok := out[key]; ok {
			t.Fatalf("%s must not be serialised: %s", key, raw)
		}
	}
}
