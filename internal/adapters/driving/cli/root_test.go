package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

type mockExportService struct {
	lastReq domain.ExportRequest
	result  *domain.ExportResult
	err     error
}

func (m *mockExportService) Export(_ context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	r := *m.result
	r.Files = []string{"docs/resultado.csv", "docs/resultado-clean.csv", "docs/resultado.html"}
	return &r, nil
}

func (m *mockExportService) Preview(_ context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSettingsService struct {
	settings domain.Settings
	set      map[string]string
	setErr   error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"output.dir", "source.url"}
}

func (m *mockSettingsService) Path() string {
	return "/home/test/.fundamentus/config.toml"
}

func sampleResult() *domain.ExportResult {
	return &domain.ExportResult{
		RunID:     "run-123",
		Source:    domain.DefaultSourceURL,
		FetchedAt: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
		Charset:   "iso-8859-1",
		Full: domain.Projection{
			Columns: []string{"Papel", "Cotação", "EV/EBIT"},
			Rows: [][]string{
				{"ABCD4", "10,5", "8,5"},
				{"WXYZ3", "3,2", ""},
				{"QWER3", "1", "2"},
			},
		},
		Curated: domain.Projection{
			Columns: []string{"Papel", "EV/EBIT"},
			Rows: [][]string{
				{"ABCD4", "8,5"},
				{"WXYZ3", ""},
				{"QWER3", "2"},
			},
		},
	}
}

// setupTestServices installs mocks and returns them with a cleanup func.
func setupTestServices() (*mockExportService, *mockSettingsService, func()) {
	origExport, origSettings := exportService, settingsService

	export := &mockExportService{result: sampleResult()}
	settings := &mockSettingsService{settings: domain.DefaultSettings(), set: map[string]string{}}
	SetServices(export, settings)

	return export, settings, func() {
		exportService, settingsService = origExport, origSettings
		exportInput, exportCharset, exportOut = "", "", ""
		previewInput, previewCharset, previewLimit, previewFull = "", "", 20, false
		verbose = false
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "fundamentus", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "FUNDAMENTUS_COOKIE")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "v", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"export", "preview", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestSetVersion(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}

func TestCommands_WithoutServices(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil, nil)

	for _, args := range [][]string{
		{"export"},
		{"preview"},
		{"settings", "show"},
		{"settings", "path"},
		{"settings", "keys"},
		{"settings", "set", "output.dir", "x"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "not configured")
	}
}

func TestCommands_PropagateServiceErrors(t *testing.T) {
	export, _, cleanup := setupTestServices()
	defer cleanup()
	export.err = &domain.FetchError{URL: domain.DefaultSourceURL, StatusCode: 403}

	_, err := execute(t, "export")
	assert.ErrorIs(t, err, domain.ErrFetch)

	_, err = execute(t, "preview")
	assert.True(t, errors.Is(err, domain.ErrFetch))
}
