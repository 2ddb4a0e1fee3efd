package secrets_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/lone-faerie/unitconv/config/secrets"
)

func Example() {
	// Setup secret file for testing
	dir, err := os.MkdirTemp("", "secrets")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	secrets.Dir = dir

	err = os.WriteFile(filepath.Join(dir, "foo"), []byte("Hello, world!\n"), 0600)
	if err != nil {
		log.Fatal(err)
	}

	// Get secret
	s := "!secret foo"
	s, ok := secrets.CutPrefix(s)
	if !ok {
		log.Fatal(s, "is not a secret")
	}
	secret, err := secrets.Read(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(secret)

	// Output:
	// Hello, world!
}

func TestMustRead(t *testing.T) {
	old := secrets.Dir
	secrets.Dir = t.TempDir()
	t.Cleanup(func() { secrets.Dir = old })

	if got := secrets.MustRead("missing", "fallback"); got != "fallback" {
		t.Errorf("Wanted fallback, got %q", got)
	}
	if _, err := secrets.Read("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Wanted %v, got %v", os.ErrNotExist, err)
	}
	if _, ok := secrets.CutPrefix("$NOT_A_SECRET"); ok {
		t.Error("$NOT_A_SECRET: Wanted ok false")
	}
}
