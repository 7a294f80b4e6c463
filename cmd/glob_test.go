package cmd

import (
	"strings"
	"testing"
)

func TestGlob(t *testing.T) {
	t.Run("basic pattern", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("glob", "docs/*", "docs/readme", "docs/api", "notes/meeting")
		env.contains(out, "docs/readme")
		env.contains(out, "docs/api")
		if strings.Contains(out, "notes/meeting") {
			t.Error("glob(docs/*) matched notes, want excluded")
		}
	})

	t.Run("recursive pattern", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("glob", "docs/**", "docs/readme", "docs/api/auth", "other/x")
		env.contains(out, "docs/readme")
		env.contains(out, "docs/api/auth")
		if strings.Contains(out, "other/x") {
			t.Error("glob(docs/**) matched other tree, want excluded")
		}
	})

	t.Run("case sensitivity follows profile", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("glob", "docs/README", "docs/readme", "docs/README")
		env.equals(out, "docs/README")

		out = env.run("--fold", "glob", "docs/README", "docs/readme", "docs/README")
		env.contains(out, "docs/readme")
		env.contains(out, "docs/README")
	})

	t.Run("canonical form bridges spellings", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("--nfc", "glob", "Amélie/*", "Amélie/notes")
		env.contains(out, "Amélie/notes")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("glob", "[a-", "test")
		if err == nil {
			t.Fatal("invalid pattern should fail")
		}
		env.contains(out, "invalid pattern")
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("-o", "json", "glob", "docs/*", "docs/a", "x/y")
		env.equals(out, `["docs/a"]`)
	})
}
