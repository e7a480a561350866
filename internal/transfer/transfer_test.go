package transfer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/vitrine-go/internal/docstore"
	"github.com/olegiv/vitrine-go/internal/testutil"
)

const prefix = "vitrine."

func setupTest(t *testing.T) (*docstore.MemoryStore, *Exporter, *Importer) {
	t.Helper()
	docs := docstore.NewMemoryStore()
	logger := testutil.TestLoggerSilent()
	return docs, NewExporter(docs, logger), NewImporter(docs, nil, logger)
}

func seed(t *testing.T, docs docstore.Store, values map[string]string) {
	t.Helper()
	for k, v := range values {
		require.NoError(t, docs.Set(context.Background(), k, []byte(v)))
	}
}

func TestExportAll_EmptyStore(t *testing.T) {
	_, exp, _ := setupTest(t)

	got, err := exp.ExportAll(context.Background(), prefix)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestExportAll_PrefixAndFormat(t *testing.T) {
	docs, exp, _ := setupTest(t)
	seed(t, docs, map[string]string{
		"vitrine.admin-session-id": "default",
		"vitrine.code-used-b1":     "CANVA228",
		"other.key":                "ignored",
	})

	got, err := exp.ExportAll(context.Background(), prefix)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"vitrine.admin-session-id\": \"default\",\n  \"vitrine.code-used-b1\": \"CANVA228\"\n}", got)
}

func TestExportAll_DoesNotEscapeHTML(t *testing.T) {
	docs, exp, _ := setupTest(t)
	seed(t, docs, map[string]string{"vitrine.copyright-text": "<b>Basile & co</b>"})

	got, err := exp.ExportAll(context.Background(), prefix)
	require.NoError(t, err)
	assert.Contains(t, got, "<b>Basile & co</b>")
}

func TestRoundTrip_UnchangedStoreIsNoOp(t *testing.T) {
	docs, exp, imp := setupTest(t)
	seed(t, docs, map[string]string{
		"vitrine.admins-list":         `[{"id":"default","name":"Basile","email":"contact@basilekadjolo.com","pin":"1234","isSuperAdmin":true}]`,
		"vitrine.ordered-b1":          "true",
		"vitrine.code-used-b1":        "CANVA228",
		"vitrine.profile-image":       "data:image/jpeg;base64,AAAA",
		"vitrine.privacy-policy-text": "Ligne 1\nLigne \"2\"",
	})
	before := testutil.Snapshot(t, docs)

	blob, err := exp.ExportAll(context.Background(), prefix)
	require.NoError(t, err)

	res, err := imp.ImportAll(context.Background(), []byte(blob), prefix)
	require.NoError(t, err)
	assert.Len(t, res.Written, len(before))
	assert.Empty(t, res.Skipped)
	assert.Equal(t, before, testutil.Snapshot(t, docs))
}

func TestImportAll_ParseFailureLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "not json"},
		{"empty", ""},
		{"array", `["vitrine.a"]`},
		{"string", `"vitrine.a"`},
		{"truncated", `{"vitrine.a": "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, _, imp := setupTest(t)
			seed(t, docs, map[string]string{"vitrine.ordered-b1": "true"})
			before := testutil.Snapshot(t, docs)

			_, err := imp.ImportAll(context.Background(), []byte(tt.blob), prefix)
			require.ErrorIs(t, err, ErrParse)
			assert.Equal(t, before, testutil.Snapshot(t, docs))
		})
	}
}

func TestImportAll_ValuesAndSkips(t *testing.T) {
	docs, _, imp := setupTest(t)
	seed(t, docs, map[string]string{"vitrine.untouched": "keep"})

	blob := `{
		"vitrine.copyright-text": "© 2026",
		"vitrine.gift-config": {"enabled": true, "code": "KDO228"},
		"vitrine.rating": 5,
		"vitrine.flag": true,
		"vitrine.nothing": null,
		"foreign.key": "skip me"
	}`

	res, err := imp.ImportAll(context.Background(), []byte(blob), prefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"foreign.key"}, res.Skipped)
	assert.Len(t, res.Written, 5)

	snap := testutil.Snapshot(t, docs)
	assert.Equal(t, "© 2026", snap["vitrine.copyright-text"])
	assert.Equal(t, `{"enabled":true,"code":"KDO228"}`, snap["vitrine.gift-config"])
	assert.Equal(t, "5", snap["vitrine.rating"])
	assert.Equal(t, "true", snap["vitrine.flag"])
	assert.Equal(t, "null", snap["vitrine.nothing"])
	assert.Equal(t, "keep", snap["vitrine.untouched"])
	assert.NotContains(t, snap, "foreign.key")
}

func TestImport_DryRun(t *testing.T) {
	docs, _, imp := setupTest(t)

	res, err := imp.Import(context.Background(), []byte(`{"vitrine.a":"1","x":"2"}`), ImportOptions{Prefix: prefix, DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, []string{"vitrine.a"}, res.Written)
	assert.Equal(t, []string{"x"}, res.Skipped)
	assert.Zero(t, docs.Len())
}

func TestBackup_RunAndRetention(t *testing.T) {
	docs, exp, imp := setupTest(t)
	seed(t, docs, map[string]string{"vitrine.ordered-b1": "true"})

	dir := filepath.Join(t.TempDir(), "backups")
	b := NewBackup(exp, BackupConfig{Dir: dir, Prefix: prefix, Retain: 2}, nil, testutil.TestLoggerSilent())

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := range 4 {
		b.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		_, err := b.Run(context.Background())
		require.NoError(t, err)
	}

	names, err := b.List()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"vitrine-backup-20260301T130000Z.json",
		"vitrine-backup-20260301T120000Z.json",
	}, names)

	data, err := b.Read(names[0])
	require.NoError(t, err)

	require.NoError(t, docs.Delete(context.Background(), "vitrine.ordered-b1"))
	_, err = imp.ImportAll(context.Background(), data, prefix)
	require.NoError(t, err)
	assert.Equal(t, "true", testutil.Snapshot(t, docs)["vitrine.ordered-b1"])
}

func TestBackup_ListIgnoresOtherFiles(t *testing.T) {
	_, exp, _ := setupTest(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BackupName(time.Unix(0, 0))), []byte("{}"), 0o600))

	b := NewBackup(exp, BackupConfig{Dir: dir, Prefix: prefix}, nil, nil)
	names, err := b.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"vitrine-backup-19700101T000000Z.json"}, names)

	_, err = b.Read("../notes.txt")
	assert.Error(t, err)
}

func TestBackup_ReadRejectsForeignNames(t *testing.T) {
	_, exp, _ := setupTest(t)
	dir := t.TempDir()
	name := BackupName(time.Unix(0, 0))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".tmp"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	b := NewBackup(exp, BackupConfig{Dir: dir, Prefix: prefix}, nil, nil)
	for _, n := range []string{name + ".tmp", "notes.txt", "../" + name} {
		_, err := b.Read(n)
		assert.ErrorIs(t, err, ErrInvalidBackupName, n)
	}

	_, err := b.Read(name)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBackup_ListMissingDir(t *testing.T) {
	_, exp, _ := setupTest(t)
	b := NewBackup(exp, BackupConfig{Dir: filepath.Join(t.TempDir(), "absent")}, nil, nil)

	names, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
