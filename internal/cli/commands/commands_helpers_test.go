package commands

import (
	"bytes"
	"net/http"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токены и логин создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// loggedIn сохраняет пару токенов, как после успешного login.
func loggedIn(t *testing.T, access, refresh string) {
	t.Helper()
	withTempConfig(t)
	if err := Tokens.Save(access, refresh); err != nil {
		t.Fatalf("save tokens: %v", err)
	}
}

// writeEnvelope отвечает конвертом сервера каталога.
func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
