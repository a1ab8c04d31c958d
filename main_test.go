package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pokerhands/config"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd(t *testing.T) {
	pterm.DisableColor()

	var out bytes.Buffer
	cmd := &ClassifyCmd{Hands: []string{"H1 H13 H12 H11 H10", "H9 C9 S9 H2 C2", "H1 H1 H2 H3 H4"}}
	require.NoError(t, cmd.run(&out))

	text := out.String()
	assert.Contains(t, text, "Straight flush")
	assert.Contains(t, text, "Full house")
	assert.Contains(t, text, "error: H1 H1 H2 H3 H4: Duplicate card H1 in hand")
	assert.Contains(t, text, "error: Multiple hands: Cards H1, H2 appear in more than one hand")
}

func TestClassifyCmdNoValidHands(t *testing.T) {
	var out bytes.Buffer
	cmd := &ClassifyCmd{Hands: []string{"H1 H2"}}
	assert.Error(t, cmd.run(&out))
	assert.Contains(t, out.String(), "Hand must contain exactly 5 cards, got 2")
}

func TestClassifyCmdBatchError(t *testing.T) {
	cmd := &ClassifyCmd{}
	assert.EqualError(t, cmd.run(io.Discard), "At least one hand is required")
}

func TestResolveConfigLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokerhands.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {\n  port = 9000\n  log_level = \"debug\"\n}\n"), 0o600))

	env := map[string]string{config.EnvLogLevel: "warn", config.EnvShutdownTimeout: "2s"}
	cmd := &ServeCmd{Config: path, EnvFile: filepath.Join(dir, "missing.env"), Addr: "127.0.0.1:9100"}

	cfg, err := cmd.resolveConfig(func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.ListenAddr())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestResolveConfigFlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	cmd := &ServeCmd{Config: filepath.Join(dir, "none.hcl"), EnvFile: filepath.Join(dir, "none.env"), LogLevel: "error", Release: true}

	cfg, err := cmd.resolveConfig(func(k string) string {
		if k == config.EnvLogLevel {
			return "debug"
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Release)
}

func TestResolveConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	noEnv := func(string) string { return "" }

	_, err := (&ServeCmd{Config: filepath.Join(dir, "x.hcl"), EnvFile: filepath.Join(dir, "x.env"), Addr: "nonsense"}).resolveConfig(noEnv)
	assert.Error(t, err)

	_, err = (&ServeCmd{Config: filepath.Join(dir, "x.hcl"), EnvFile: filepath.Join(dir, "x.env"), LogLevel: "chatty"}).resolveConfig(noEnv)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRouterServesAPI(t *testing.T) {
	cfg := config.Default()
	router := newRouter(cfg, log.New(io.Discard), quartz.NewMock(t))

	body := `{"cards": ["H1 D2 S3 C4 H5", "H1 H2 H3 H4 H5"]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/hands/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var response struct {
		Result []struct {
			Card string `json:"card"`
			Hand string `json:"hand"`
			Best bool   `json:"best"`
		} `json:"result"`
		Error []struct {
			Card string `json:"card"`
			Msg  string `json:"msg"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Result, 2)
	assert.Equal(t, "Straight", response.Result[0].Hand)
	assert.Equal(t, "Straight flush", response.Result[1].Hand)
	assert.True(t, response.Result[1].Best)
	require.Len(t, response.Error, 1)
	assert.Equal(t, "Cards H1, H5 appear in more than one hand", response.Error[0].Msg)
}

func TestRouterServesSwagger(t *testing.T) {
	router := newRouter(config.Default(), log.New(io.Discard), quartz.NewMock(t))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/hands/evaluate")
}

func TestRouterLogsGinDebugOutput(t *testing.T) {
	prev := gin.Mode()
	gin.SetMode(gin.DebugMode)
	t.Cleanup(func() { gin.SetMode(prev) })

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})
	newRouter(config.Default(), logger, quartz.NewMock(t))

	out := buf.String()
	assert.Contains(t, out, "path=/api/v1/hands/evaluate")
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/ping")
}

func TestRouterPingReportsVersion(t *testing.T) {
	router := newRouter(config.Default(), log.New(io.Discard), quartz.NewMock(t))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong", "version": "`+version+`"}`, w.Body.String())
}
