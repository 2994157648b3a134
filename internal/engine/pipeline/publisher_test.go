package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/core/ports/mocks"
	"go.limmat.ch/packrat/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type publisherMocks struct {
	pool      *mocks.MockPool
	repo      *mocks.MockRepoManager
	vcs       *mocks.MockVCS
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
}

func newPublisherMocks(ctrl *gomock.Controller) *publisherMocks {
	return &publisherMocks{
		pool:      mocks.NewMockPool(ctrl),
		repo:      mocks.NewMockRepoManager(ctrl),
		vcs:       mocks.NewMockVCS(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
}

func (m *publisherMocks) publisher() *pipeline.Publisher {
	return pipeline.NewPublisher(m.pool, m.repo, m.vcs, m.telemetry, m.logger)
}

func (m *publisherMocks) passthroughVertices(ctrl *gomock.Controller) {
	m.telemetry.EXPECT().Record(gomock.Any(), "publish").DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			vertex := mocks.NewMockVertex(ctrl)
			vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
			return ctx, vertex
		},
	).AnyTimes()
}

func publishedStatus(dirs ...string) domain.BuildStatus {
	return domain.BuildStatus{OutputDirs: dirs, Publish: true}
}

func TestPublisher_Publish_NothingRebuilt(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)

	m.logger.EXPECT().Info(gomock.Any())

	status := domain.BuildStatus{OutputDirs: []string{"ppa/pool/main/h/hello"}, Publish: false}
	err := m.publisher().Publish(context.Background(), testConfig(testPackage("hello")), status, pipeline.PublishOptions{})
	require.NoError(t, err)
}

func TestPublisher_Publish_FreshRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1", "ppa/pool/main/h/hello")

	// Staging runs first: the second output dir is read out of the published
	// tree before that tree is torn down.
	gomock.InOrder(
		m.pool.EXPECT().Stage(status.OutputDirs).Return("/tmp/packrat-stage-1", nil),
		m.pool.EXPECT().ListArtifacts("/tmp/packrat-stage-1").
			Return([]string{"hello_2.10-3+local_amd64.deb"}, nil),
		m.pool.EXPECT().Remove("ppa").Return(nil),
		m.repo.EXPECT().RepoExists(gomock.Any(), "ppa").Return(false),
		m.repo.EXPECT().CreateRepo(gomock.Any(), "ppa", "main", "bookworm").Return(nil),
		m.repo.EXPECT().AddPackages(gomock.Any(), "ppa", "/tmp/packrat-stage-1").Return(nil),
		m.repo.EXPECT().Publish(gomock.Any(), "ppa", "bookworm").Return(nil),
		m.repo.EXPECT().PublicDir().Return("/home/ci/.aptly/public"),
		m.pool.EXPECT().CopyTree("/home/ci/.aptly/public", "ppa").Return(nil),
	)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{})
	require.NoError(t, err)
}

func TestPublisher_Publish_ExistingRepoIsTornDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1")

	m.pool.EXPECT().Stage(gomock.Any()).Return("/tmp/packrat-stage-1", nil)
	m.pool.EXPECT().ListArtifacts("/tmp/packrat-stage-1").
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil)
	m.pool.EXPECT().Remove("ppa").Return(nil)

	gomock.InOrder(
		m.repo.EXPECT().RepoExists(gomock.Any(), "ppa").Return(true),
		m.repo.EXPECT().PublishExists(gomock.Any(), "bookworm").Return(true),
		m.repo.EXPECT().DropPublish(gomock.Any(), "bookworm").Return(nil),
		m.repo.EXPECT().DropRepo(gomock.Any(), "ppa").Return(nil),
		m.repo.EXPECT().CreateRepo(gomock.Any(), "ppa", "main", "bookworm").Return(nil),
	)
	m.repo.EXPECT().AddPackages(gomock.Any(), "ppa", "/tmp/packrat-stage-1").Return(nil)
	m.repo.EXPECT().Publish(gomock.Any(), "ppa", "bookworm").Return(nil)
	m.repo.EXPECT().PublicDir().Return("/home/ci/.aptly/public")
	m.pool.EXPECT().CopyTree("/home/ci/.aptly/public", "ppa").Return(nil)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{})
	require.NoError(t, err)
}

func TestPublisher_Publish_RepoWithoutPublishSkipsDropPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1")

	m.pool.EXPECT().Stage(gomock.Any()).Return("/tmp/packrat-stage-1", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil)
	m.pool.EXPECT().Remove("ppa").Return(nil)

	m.repo.EXPECT().RepoExists(gomock.Any(), "ppa").Return(true)
	m.repo.EXPECT().PublishExists(gomock.Any(), "bookworm").Return(false)
	m.repo.EXPECT().DropRepo(gomock.Any(), "ppa").Return(nil)
	m.repo.EXPECT().CreateRepo(gomock.Any(), "ppa", "main", "bookworm").Return(nil)
	m.repo.EXPECT().AddPackages(gomock.Any(), "ppa", gomock.Any()).Return(nil)
	m.repo.EXPECT().Publish(gomock.Any(), "ppa", "bookworm").Return(nil)
	m.repo.EXPECT().PublicDir().Return("/home/ci/.aptly/public")
	m.pool.EXPECT().CopyTree(gomock.Any(), "ppa").Return(nil)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{})
	require.NoError(t, err)
}

func TestPublisher_Publish_EmptyStagingKeepsArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1")

	// No Remove, no repo calls: the published archive must survive a
	// staging directory that ended up empty.
	m.pool.EXPECT().Stage(gomock.Any()).Return("/tmp/packrat-stage-1", nil)
	m.pool.EXPECT().ListArtifacts("/tmp/packrat-stage-1").Return(nil, nil)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoArtifacts)
}

func TestPublisher_Publish_StageFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1")

	m.pool.EXPECT().Stage(gomock.Any()).Return("", domain.ErrStagingFailed)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStagingFailed)
}

func TestPublisher_Publish_CICommitsPublishedTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)
	m.passthroughVertices(ctrl)

	cfg := testConfig(testPackage("hello"))
	status := publishedStatus("/tmp/packrat-build-1")

	m.pool.EXPECT().Stage(gomock.Any()).Return("/tmp/packrat-stage-1", nil)
	m.pool.EXPECT().ListArtifacts(gomock.Any()).
		Return([]string{"hello_2.10-3+local_amd64.deb"}, nil)
	m.pool.EXPECT().Remove("ppa").Return(nil)
	m.repo.EXPECT().RepoExists(gomock.Any(), "ppa").Return(false)
	m.repo.EXPECT().CreateRepo(gomock.Any(), "ppa", "main", "bookworm").Return(nil)
	m.repo.EXPECT().AddPackages(gomock.Any(), "ppa", gomock.Any()).Return(nil)
	m.repo.EXPECT().Publish(gomock.Any(), "ppa", "bookworm").Return(nil)
	m.repo.EXPECT().PublicDir().Return("/home/ci/.aptly/public")

	gomock.InOrder(
		m.pool.EXPECT().CopyTree("/home/ci/.aptly/public", "ppa").Return(nil),
		m.vcs.EXPECT().CommitAndPush(gomock.Any(), "ppa", "Update published archive").Return(nil),
	)

	err := m.publisher().Publish(context.Background(), cfg, status, pipeline.PublishOptions{CI: true})
	require.NoError(t, err)
}

func TestPublisher_Publish_VertexReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newPublisherMocks(ctrl)

	vertex := mocks.NewMockVertex(ctrl)
	m.telemetry.EXPECT().Record(gomock.Any(), "publish").DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	)
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	m.pool.EXPECT().Stage(gomock.Any()).Return("", errors.New("disk full"))

	cfg := testConfig(testPackage("hello"))
	err := m.publisher().Publish(context.Background(), cfg, publishedStatus("/tmp/x"), pipeline.PublishOptions{})
	require.Error(t, err)
}
