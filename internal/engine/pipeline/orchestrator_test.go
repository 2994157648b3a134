package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/core/ports/mocks"
	"go.limmat.ch/packrat/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	oracle    *mocks.MockVersionOracle
	installer *mocks.MockInstaller
	toolchain *mocks.MockToolchain
	fetcher   *mocks.MockPatchFetcher
	pool      *mocks.MockPool
	hasher    *mocks.MockHasher
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
}

func newPipelineMocks(ctrl *gomock.Controller) *pipelineMocks {
	return &pipelineMocks{
		oracle:    mocks.NewMockVersionOracle(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		fetcher:   mocks.NewMockPatchFetcher(ctrl),
		pool:      mocks.NewMockPool(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
}

func (m *pipelineMocks) orchestrator() *pipeline.Orchestrator {
	return pipeline.NewOrchestrator(
		m.oracle, m.installer, m.toolchain, m.fetcher,
		m.pool, m.hasher, m.telemetry, m.logger,
	)
}

// passthroughVertices lets every vertex start, cache and complete freely so
// tests can focus on pipeline behavior.
func (m *pipelineMocks) passthroughVertices(ctrl *gomock.Controller) {
	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			vertex := mocks.NewMockVertex(ctrl)
			vertex.EXPECT().Cached().AnyTimes()
			vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
			return ctx, vertex
		},
	).AnyTimes()
}

// expectProvisioning wires the index refresh and the toolchain and
// build-dependency installs for the first rebuild of a run.
func (m *pipelineMocks) expectProvisioning(deps ...string) {
	m.installer.EXPECT().RefreshSources(gomock.Any()).Return(nil)
	m.installer.EXPECT().Install(gomock.Any(), "devscripts", "dpkg-dev").Return(nil)
	if len(deps) > 0 {
		args := make([]any, 0, len(deps))
		for _, dep := range deps {
			args = append(args, dep)
		}
		m.installer.EXPECT().Install(gomock.Any(), args...).Return(nil)
	}
}

// expectBuild wires the happy-path fetch, patch, bump and build calls for
// one URL-patched package. FetchSource materializes the source tree so the
// source glob resolves.
func (m *pipelineMocks) expectBuild(t *testing.T, pkg domain.Package) {
	t.Helper()

	m.toolchain.EXPECT().FetchSource(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dir string, p *domain.Package) error {
			return os.MkdirAll(filepath.Join(dir, p.SourceName()+"-1.0"), 0o750)
		},
	)
	m.fetcher.EXPECT().Fetch(gomock.Any(), pkg.Patch.URL).Return([]byte("--- a/f\n+++ b/f\n"), nil)
	m.toolchain.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.toolchain.EXPECT().
		BumpChangelog(gomock.Any(), gomock.Any(), "+local", pkg.ChangelogMsg, gomock.Any()).
		Return(nil)
	m.toolchain.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil)
}

func testPackage(name string) domain.Package {
	return domain.Package{
		Name:         name,
		SourceDir:    name + "-*",
		BuildDeps:    []string{"libgtk-3-dev"},
		Patch:        domain.PatchSpec{URL: "https://example.org/" + name + ".patch"},
		ChangelogMsg: "Local rebuild",
	}
}

func testConfig(pkgs ...domain.Package) *domain.Config {
	return &domain.Config{
		Archive: domain.ArchiveConfig{
			Repo:        "ppa",
			Codename:    "bookworm",
			PublishDir:  "ppa",
			LocalSuffix: "+local",
			Toolchain:   []string{"devscripts", "dpkg-dev"},
			Maintainer:  domain.Maintainer{Name: "Archive Bot", Email: "bot@example.org"},
		},
		Packages: pkgs,
	}
}

func newRunState() *domain.RunState {
	return domain.NewRunState("bookworm", false)
}

func TestOrchestrator_Run_UpToDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)

	cfg := testConfig(testPackage("hello"))
	poolDir := domain.PoolDir("ppa", "hello")

	vertex := mocks.NewMockVertex(ctrl)
	m.telemetry.EXPECT().Record(gomock.Any(), "hello").DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	)
	vertex.EXPECT().Cached()
	vertex.EXPECT().Complete(gomock.Nil())

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.pool.EXPECT().ListArtifacts(poolDir).
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil).
		Times(2)
	m.hasher.EXPECT().HashNames([]string{"hello_2.10-3+local_amd64.deb"}).Return("fp-1")

	status, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.NoError(t, err)

	assert.False(t, status.Publish)
	assert.Equal(t, []string{poolDir}, status.OutputDirs)

	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Name)
	assert.Equal(t, "2.10-3", records[0].Version)
	assert.False(t, records[0].Rebuilt)
	assert.Equal(t, "fp-1", records[0].Fingerprint)
}

func TestOrchestrator_Run_RebuildsStalePackage(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := testPackage("hello")
	cfg := testConfig(pkg)
	poolDir := domain.PoolDir("ppa", "hello")

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-4", nil)
	m.pool.EXPECT().ListArtifacts(poolDir).
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil)
	m.expectProvisioning("libgtk-3-dev")
	m.expectBuild(t, pkg)
	m.pool.EXPECT().ListArtifacts(gomock.Not(poolDir)).
		Return([]string{"hello_2.10-4+local_amd64.deb"}, nil)
	m.hasher.EXPECT().HashNames([]string{"hello_2.10-4+local_amd64.deb"}).Return("fp-2")

	status, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.NoError(t, err)

	assert.True(t, status.Publish)
	require.Len(t, status.OutputDirs, 1)
	assert.Contains(t, filepath.Base(status.OutputDirs[0]), "packrat-build-")
	assert.True(t, strings.HasPrefix(status.OutputDirs[0], os.TempDir()))

	require.Len(t, records, 1)
	assert.Equal(t, "2.10-4", records[0].Version)
	assert.True(t, records[0].Rebuilt)
	assert.Equal(t, "fp-2", records[0].Fingerprint)
}

func TestOrchestrator_Run_PublishedCheck(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		artifacts []string
		listErr   error
		skipIndex bool
		wantBuild bool
	}{
		{
			name:      "exact candidate published",
			candidate: "2.10-3",
			artifacts: []string{"hello_2.10-3+local_amd64.deb"},
		},
		{
			name:      "epoch is ignored",
			candidate: "1:2.10-3",
			artifacts: []string{"hello_2.10-3+local_amd64.deb"},
		},
		{
			name:      "base before plus accepted",
			candidate: "2.10-3+deb12u1",
			artifacts: []string{"hello_2.10-3+local_amd64.deb"},
		},
		{
			name:      "full candidate with suffix accepted",
			candidate: "2.10-3+deb12u1",
			artifacts: []string{"hello_2.10-3+deb12u1+local_amd64.deb"},
		},
		{
			name:      "stale version rebuilds",
			candidate: "2.10-4",
			artifacts: []string{"hello_2.10-3+local_amd64.deb"},
			wantBuild: true,
		},
		{
			name:      "missing local suffix rebuilds",
			candidate: "2.10-3",
			artifacts: []string{"hello_2.10-3_amd64.deb"},
			wantBuild: true,
		},
		{
			name:      "sibling package does not satisfy",
			candidate: "2.10-3",
			artifacts: []string{"hello-dbg_2.10-3+local_amd64.deb"},
			wantBuild: true,
		},
		{
			name:      "empty pool rebuilds",
			candidate: "2.10-3",
			wantBuild: true,
		},
		{
			name:      "listing failure rebuilds",
			candidate: "2.10-3",
			listErr:   errors.New("permission denied"),
			wantBuild: true,
		},
		{
			name:      "unindexed package with artifact skips",
			artifacts: []string{"hello_9.0+local_amd64.deb"},
			skipIndex: true,
		},
		{
			name:      "unindexed package without artifact builds",
			skipIndex: true,
			wantBuild: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TMPDIR", t.TempDir())

			ctrl := gomock.NewController(t)
			m := newPipelineMocks(ctrl)
			m.passthroughVertices(ctrl)

			pkg := testPackage("hello")
			pkg.SkipIndex = tt.skipIndex
			cfg := testConfig(pkg)
			poolDir := domain.PoolDir("ppa", "hello")

			if !tt.skipIndex {
				m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return(tt.candidate, nil)
			}
			m.pool.EXPECT().ListArtifacts(poolDir).Return(tt.artifacts, tt.listErr).AnyTimes()
			m.pool.EXPECT().ListArtifacts(gomock.Not(poolDir)).Return(nil, nil).AnyTimes()
			m.hasher.EXPECT().HashNames(gomock.Any()).Return("fp").AnyTimes()

			if tt.wantBuild {
				m.expectProvisioning("libgtk-3-dev")
				m.expectBuild(t, pkg)
			}

			status, _, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantBuild, status.Publish)
		})
	}
}

func TestOrchestrator_Run_ForceBypassesPublishCheck(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := testPackage("hello")
	cfg := testConfig(pkg)
	poolDir := domain.PoolDir("ppa", "hello")

	// The pool holds a current artifact; Force must rebuild anyway and the
	// publish check must not even list the pool.
	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.expectProvisioning("libgtk-3-dev")
	m.expectBuild(t, pkg)
	m.pool.EXPECT().ListArtifacts(gomock.Not(poolDir)).Return(nil, nil)

	status, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{Force: true})
	require.NoError(t, err)
	assert.True(t, status.Publish)
	require.Len(t, records, 1)
	assert.True(t, records[0].Rebuilt)
	assert.Empty(t, records[0].Fingerprint)
}

func TestOrchestrator_Run_InstallsEachDepSetOnce(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	first := testPackage("alpha")
	second := testPackage("beta")
	cfg := testConfig(first, second)

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "alpha").Return("1.0-1", nil)
	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "beta").Return("2.0-1", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil).AnyTimes()
	m.hasher.EXPECT().HashNames(gomock.Any()).Return("fp").AnyTimes()

	// Both packages share one build-dependency set: the index refresh, the
	// toolchain install and the dep-set install all happen exactly once.
	m.expectProvisioning("libgtk-3-dev")
	m.expectBuild(t, first)
	m.expectBuild(t, second)

	status, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.NoError(t, err)
	assert.True(t, status.Publish)
	assert.Len(t, records, 2)
}

func TestOrchestrator_Run_PreseededStateSkipsProvisioning(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := testPackage("hello")
	cfg := testConfig(pkg)

	state := newRunState()
	state.MarkSourcesRefreshed()
	state.MarkPackages("devscripts", "dpkg-dev", "libgtk-3-dev")

	// No installer expectations: any install call fails the test.
	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil).AnyTimes()
	m.hasher.EXPECT().HashNames(gomock.Any()).Return("fp").AnyTimes()
	m.expectBuild(t, pkg)

	status, _, err := m.orchestrator().Run(context.Background(), cfg, state, pipeline.RunOptions{})
	require.NoError(t, err)
	assert.True(t, status.Publish)
}

func TestOrchestrator_Run_ArchivePatch(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := domain.Package{
		Name:      "libbluray-bdj",
		Source:    "libbluray",
		SourceDir: "libbluray-*",
		Patch: domain.PatchSpec{
			Archive: domain.ArchivePatch{Package: "libplist", Member: "*/bdj.patch"},
		},
		ChangelogMsg: "Rebuild BD-J support",
	}
	cfg := testConfig(pkg)

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "libbluray-bdj").Return("1.3.4-1", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil).AnyTimes()
	m.hasher.EXPECT().HashNames(gomock.Any()).Return("fp").AnyTimes()
	m.installer.EXPECT().RefreshSources(gomock.Any()).Return(nil)
	m.installer.EXPECT().Install(gomock.Any(), "devscripts", "dpkg-dev").Return(nil)

	m.toolchain.EXPECT().FetchSource(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dir string, p *domain.Package) error {
			return os.MkdirAll(filepath.Join(dir, "libbluray-1.3.4"), 0o750)
		},
	)
	m.toolchain.EXPECT().FetchSourceArchive(gomock.Any(), gomock.Any(), "libplist").Return(nil)
	m.toolchain.EXPECT().
		ExtractArchiveMember(gomock.Any(), gomock.Any(), "libplist_*.orig.tar.*", "*/bdj.patch").
		Return([]byte("patch text"), nil)
	m.toolchain.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), []byte("patch text")).Return(nil)
	m.toolchain.EXPECT().
		BumpChangelog(gomock.Any(), gomock.Any(), "+local", "Rebuild BD-J support", gomock.Any()).
		Return(nil)
	m.toolchain.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil)

	status, _, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.NoError(t, err)
	assert.True(t, status.Publish)
}

func TestOrchestrator_Run_PatchApplyFailureIsLogged(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := testPackage("hello")
	cfg := testConfig(pkg)

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil)
	m.expectProvisioning("libgtk-3-dev")
	m.toolchain.EXPECT().FetchSource(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dir string, p *domain.Package) error {
			return os.MkdirAll(filepath.Join(dir, "hello-1.0"), 0o750)
		},
	)
	m.fetcher.EXPECT().Fetch(gomock.Any(), pkg.Patch.URL).Return([]byte("garbage"), nil)
	m.toolchain.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrPatchApplyFailed)
	m.logger.EXPECT().Error(gomock.Any())

	_, _, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPatchApplyFailed)
}

func TestOrchestrator_Run_SourceTreeMissing(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	pkg := testPackage("hello")
	cfg := testConfig(pkg)

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).Return(nil, nil)
	m.expectProvisioning("libgtk-3-dev")

	// FetchSource succeeds but unpacks nothing matching the source glob.
	m.toolchain.EXPECT().FetchSource(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceTreeNotFound)
}

func TestOrchestrator_Run_NoCandidateAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)

	cfg := testConfig(testPackage("ghost"))

	vertex := mocks.NewMockVertex(ctrl)
	m.telemetry.EXPECT().Record(gomock.Any(), "ghost").DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	)
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "ghost").
		Return("", domain.ErrNoCandidate)

	_, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCandidate)
	assert.Empty(t, records)
}

func TestOrchestrator_Run_BuildFailureAbortsRun(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ctrl := gomock.NewController(t)
	m := newPipelineMocks(ctrl)
	m.passthroughVertices(ctrl)

	current := testPackage("hello")
	broken := testPackage("broken")
	cfg := testConfig(current, broken)
	helloPool := domain.PoolDir("ppa", "hello")

	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "hello").Return("2.10-3", nil)
	m.oracle.EXPECT().CandidateVersion(gomock.Any(), "broken").Return("1.0-1", nil)
	m.pool.EXPECT().ListArtifacts(helloPool).
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil).
		Times(2)
	m.pool.EXPECT().ListArtifacts(domain.PoolDir("ppa", "broken")).Return(nil, nil)
	m.hasher.EXPECT().HashNames(gomock.Any()).Return("fp")

	m.expectProvisioning("libgtk-3-dev")
	m.toolchain.EXPECT().FetchSource(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dir string, p *domain.Package) error {
			return os.MkdirAll(filepath.Join(dir, "broken-1.0"), 0o750)
		},
	)
	m.fetcher.EXPECT().Fetch(gomock.Any(), broken.Patch.URL).Return([]byte("patch"), nil)
	m.toolchain.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.toolchain.EXPECT().
		BumpChangelog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.toolchain.EXPECT().Build(gomock.Any(), gomock.Any()).Return(&domain.ToolError{
		Tool: "dpkg-buildpackage",
		Code: 2,
		Err:  errors.New("exit status 2"),
	})

	status, records, err := m.orchestrator().Run(context.Background(), cfg, newRunState(), pipeline.RunOptions{})
	require.Error(t, err)

	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 2, toolErr.Code)
	assert.Equal(t, 2, domain.ExitCode(err))

	// The failed run returns the records accumulated before the failure and
	// no publishable status.
	assert.False(t, status.Publish)
	assert.Empty(t, status.OutputDirs)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Name)
}
