package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/registry"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and replays canned responses keyed by
// the command name.
type fakeRunner struct {
	calls     []string
	responses map[string]struct {
		out string
		err error
	}
	missing map[string]bool
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string]struct {
			out string
			err error
		}),
		missing: make(map[string]bool),
	}
}

func (f *fakeRunner) respond(name, out string, err error) {
	f.responses[name] = struct {
		out string
		err error
	}{out, err}
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	r := f.responses[name]
	return r.out, r.err
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("%s: executable file not found", name)
	}
	return "/usr/bin/" + name, nil
}

type noopProgress struct{}

func (noopProgress) Begin(int)      {}
func (noopProgress) Advance(string) {}

type cannedConfirm struct{ answer bool }

func (c cannedConfirm) Ask(string) (bool, error) { return c.answer, nil }

func testCtx(t *testing.T, runner types.CommandRunner, dryRun bool) *types.OperationContext {
	t.Helper()
	return types.NewOperationContext(
		context.Background(),
		zerolog.Nop(),
		noopProgress{},
		cannedConfirm{answer: true},
		space.NewAccountant(),
		runner,
		dryRun,
	)
}

func TestCatalogueOrder(t *testing.T) {
	var ids []string
	for _, d := range registry.Default().List() {
		ids = append(ids, d.ID)
	}

	assert.Equal(t, []string{
		"software-updates",
		"user-caches",
		"browser-caches",
		"user-logs",
		"trash",
		"homebrew-cleanup",
		"system-caches",
		"sqlite-vacuum",
		"dns-flush",
		"memory-purge",
		"maintenance-scripts",
		"launchservices-rebuild",
		"spotlight-rebuild",
		"kernel-caches",
		"network-reset",
	}, ids)

	// the update check must precede the network reset by construction
	assert.Equal(t, "software-updates", ids[0])
	assert.Equal(t, "network-reset", ids[len(ids)-1])
}

func TestCataloguePrivilegeMarkers(t *testing.T) {
	privileged := map[string]bool{}
	for _, d := range registry.Default().List() {
		privileged[d.ID] = d.NeedsPrivileges
	}

	assert.False(t, privileged["user-caches"])
	assert.True(t, privileged["system-caches"])
	assert.True(t, privileged["spotlight-rebuild"])
	assert.True(t, privileged["network-reset"])
}

func TestCleanDirContents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.dat"), make([]byte, 4096), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "CloudKitCache"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CloudKitCache", "keep"), make([]byte, 1024), 0o644))

	ctx := testCtx(t, newFakeRunner(), false)
	require.NoError(t, cleanDirContents(ctx, dir))

	assert.NoFileExists(t, filepath.Join(dir, "stale.dat"))
	// CloudKit* is in the default protected patterns
	assert.DirExists(t, filepath.Join(dir, "CloudKitCache"))
	assert.Equal(t, int64(4), ctx.FreedKB())
}

func TestCleanDirContentsDryRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.dat"), make([]byte, 4096), 0o644))

	ctx := testCtx(t, newFakeRunner(), true)
	require.NoError(t, cleanDirContents(ctx, dir))

	assert.FileExists(t, filepath.Join(dir, "stale.dat"))
	assert.Zero(t, ctx.FreedKB())
}

func TestCleanDirContentsMissingDirIsWarning(t *testing.T) {
	ctx := testCtx(t, newFakeRunner(), false)
	require.NoError(t, cleanDirContents(ctx, filepath.Join(t.TempDir(), "gone")))

	require.Len(t, ctx.Warnings(), 1)
	assert.Contains(t, ctx.Warnings()[0], "not found")
}

func TestPruneOldFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.log")
	fresh := filepath.Join(dir, "fresh.log")
	require.NoError(t, os.WriteFile(old, make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(fresh, make([]byte, 2048), 0o644))
	stale := time.Now().AddDate(0, 0, -60)
	require.NoError(t, os.Chtimes(old, stale, stale))

	ctx := testCtx(t, newFakeRunner(), false)
	pruneOldFiles(ctx, dir, 30)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.Equal(t, int64(2), ctx.FreedKB())
}

func TestSoftwareUpdatesNothingPending(t *testing.T) {
	runner := newFakeRunner()
	runner.respond("softwareupdate", "No new software available.", nil)

	ctx := testCtx(t, runner, false)
	require.NoError(t, softwareUpdates{}.Execute(ctx))
	assert.Empty(t, ctx.Warnings())
}

func TestSoftwareUpdatesPending(t *testing.T) {
	runner := newFakeRunner()
	runner.respond("softwareupdate", "* Label: macOS Sonoma 14.4", nil)

	ctx := testCtx(t, runner, false)
	require.NoError(t, softwareUpdates{}.Execute(ctx))
	require.Len(t, ctx.Warnings(), 1)
	assert.Contains(t, ctx.Warnings()[0], "pending software updates")
}

func TestSoftwareUpdatesToolMissing(t *testing.T) {
	runner := newFakeRunner()
	runner.missing["softwareupdate"] = true

	ctx := testCtx(t, runner, false)
	require.NoError(t, softwareUpdates{}.Execute(ctx))
	require.Len(t, ctx.Warnings(), 1)
	assert.Contains(t, ctx.Warnings()[0], "not found")
}

func TestDNSFlush(t *testing.T) {
	runner := newFakeRunner()
	ctx := testCtx(t, runner, false)

	require.NoError(t, dnsFlush{}.Execute(ctx))
	assert.Contains(t, runner.calls, "dscacheutil -flushcache")
	assert.Contains(t, runner.calls, "sudo killall -HUP mDNSResponder")
}

func TestDNSFlushHardFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.respond("dscacheutil", "", fmt.Errorf("operation not permitted"))

	ctx := testCtx(t, runner, false)
	err := dnsFlush{}.Execute(ctx)
	require.Error(t, err)
	assert.NotEmpty(t, ctx.CollectedErrors())
}

func TestDNSFlushSignalFailureIsWarning(t *testing.T) {
	runner := newFakeRunner()
	runner.respond("sudo", "", fmt.Errorf("no matching processes"))

	ctx := testCtx(t, runner, false)
	require.NoError(t, dnsFlush{}.Execute(ctx))
	assert.NotEmpty(t, ctx.Warnings())
	assert.Empty(t, ctx.CollectedErrors())
}

func TestDryRunSuppressesMutatingCommands(t *testing.T) {
	runner := newFakeRunner()
	ctx := testCtx(t, runner, true)

	require.NoError(t, memoryPurge{}.Execute(ctx))
	assert.Empty(t, runner.calls)
}

func TestNetworkResetStepOrder(t *testing.T) {
	runner := newFakeRunner()
	ctx := testCtx(t, runner, false)

	require.NoError(t, networkReset{}.Execute(ctx))
	assert.Equal(t, []string{
		"sudo route -n flush",
		"sudo ifconfig en0 down",
		"sudo ifconfig en0 up",
	}, runner.calls)
}

func TestLoadTuningOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
protected_patterns = ["MyApp*"]
log_retention_days = 7
`), 0o644))

	orig := tuning
	t.Cleanup(func() { tuning = orig })

	require.NoError(t, loadTuningFrom(path))
	assert.Equal(t, []string{"MyApp*"}, tuning.ProtectedPatterns)
	assert.Equal(t, 7, tuning.LogRetentionDays)
	// keys absent from the file keep their defaults
	assert.NotEmpty(t, tuning.SQLiteDatabases)
}

func TestLoadTuningMissingFileKeepsDefaults(t *testing.T) {
	orig := tuning
	t.Cleanup(func() { tuning = orig })

	require.NoError(t, loadTuningFrom(filepath.Join(t.TempDir(), "nope.toml")))
	assert.Equal(t, defaultTuning(), tuning)
}
