package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Bharathisthe/Testing/internal/config"
	"github.com/Bharathisthe/Testing/internal/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testUser     = "nick.bollettier6@example.com"
	testPasscode = "ServeAce2022"
)

func testConfig(base string) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		BaseURL:  base,
		Username: testUser,
		Passcode: testPasscode,
		Timeout:  5 * time.Second,
		Bind:     "127.0.0.1",
		Port:     "0",
		TokenTTL: time.Hour,
	}
}

func newFake(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := fakeapi.New(fakeapi.Config{
		Users:    map[string]string{testUser: testPasscode},
		HashCost: bcrypt.MinCost,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func execute(t *testing.T, cfg *config.RuntimeConfig, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, testConfig("http://localhost"), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "ballcheck dev\n", out)
}

func TestRun(t *testing.T) {
	ts := newFake(t)

	out, err := execute(t, testConfig(ts.URL), "", "run")
	require.NoError(t, err, out)
	assert.Contains(t, out, "target "+ts.URL)
	for _, step := range []string{"login", "dashboard", "logout"} {
		assert.Regexp(t, step+`\s+ok\s+200`, out)
	}
	assert.Contains(t, out, "token ")
	assert.NotContains(t, out, "FAIL")
}

func TestRun_URLFlag(t *testing.T) {
	ts := newFake(t)

	out, err := execute(t, testConfig("http://127.0.0.1:1"), "", "run", "--url", ts.URL)
	require.NoError(t, err, out)
	assert.Contains(t, out, "target "+ts.URL)
}

func TestRun_BadCredentials(t *testing.T) {
	ts := newFake(t)
	cfg := testConfig(ts.URL)
	cfg.Passcode = "wrong"

	out, err := execute(t, cfg, "", "run")
	require.Error(t, err)
	assert.Regexp(t, `login\s+FAIL\s+401`, out)
	assert.NotContains(t, out, "dashboard")
}

func TestRun_InvalidURL(t *testing.T) {
	_, err := execute(t, testConfig("not-a-url"), "", "run")
	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, testConfig("http://localhost:8787"), "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Base URL:   http://localhost:8787")
	assert.Contains(t, out, "Passcode:   Serv...2022")
	assert.NotContains(t, out, testPasscode)
	assert.Contains(t, out, "Secret:     (none)")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("BALLCHECK_CONFIG", path)
	cfg := testConfig("http://localhost")

	out, err := execute(t, cfg, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created at "+path)

	require.NoError(t, os.WriteFile(path, []byte("username: kept@example.com\n"), 0600))

	out, err = execute(t, cfg, "n\n", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	data, _ := os.ReadFile(path)
	assert.Equal(t, "username: kept@example.com\n", string(data))

	_, err = execute(t, cfg, "", "config", "init", "--force")
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "ball-machine.waltair.io")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, testConfig("")) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestSetupLogging(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	setupLogging(&buf, false)
	slog.Debug("hidden")
	assert.Empty(t, buf.String())

	setupLogging(&buf, true)
	slog.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
