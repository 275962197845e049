package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// setTempCfg перенастраивает пользовательский конфиг‑каталог в temp для изоляции тестов.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoad_Token_TrimsWhitespace(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	// Сохранение токенов
	if err := st.Save("tok-123\n\n", "ref-1"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	// Дозапишем вручную лишние пробелы в конец файла, чтобы проверить trim
	p, _ := tokenPath()
	f, _ := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o600)
	_, _ = f.WriteString("  \r\n")
	_ = f.Close()

	tok, err := st.Load()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("token not trimmed, got %q", tok)
	}
	ref, err := st.LoadRefresh()
	if err != nil || ref != "ref-1" {
		t.Fatalf("refresh token: %q err=%v", ref, err)
	}
}

func TestAuthFSStore_Save_EmptyRefreshKeepsPrevious(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.Save("a1", "r1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Save("a2", ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	tok, _ := st.Load()
	ref, _ := st.LoadRefresh()
	if tok != "a2" || ref != "r1" {
		t.Fatalf("unexpected tokens: access=%q refresh=%q", tok, ref)
	}
	if err := st.Save("", "r2"); err == nil {
		t.Fatalf("expected error for empty access token")
	}
}

func TestAuthFSStore_Load_TokenMissingOrEmpty(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	// отсутствует файл
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for missing token file")
	}
	// пустой файл
	p, _ := tokenPath()
	_ = os.MkdirAll(filepath.Dir(p), 0o700)
	_ = os.WriteFile(p, []byte("\n"), 0o600)
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected error for empty token file")
	}
}

func TestAuthFSStore_Clear(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	_ = st.Save("a", "r")
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("token must be removed")
	}
	// повторная очистка без файлов — не ошибка
	if err := st.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestAuthFSStore_SaveLoad_Login_And_Trimming(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveLogin("alice@example.com\n"); err != nil {
		t.Fatalf("save login: %v", err)
	}
	login, err := st.LoadLogin()
	if err != nil {
		t.Fatalf("load login: %v", err)
	}
	if login != "alice@example.com" {
		t.Fatalf("login not trimmed, got %q", login)
	}
}

func TestAuthFSStore_SaveLogin_EmptyError(t *testing.T) {
	setTempCfg(t)
	st := AuthFSStore{}
	if err := st.SaveLogin(""); err == nil {
		t.Fatalf("expected error for empty login")
	}
}
