package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// withDeps swaps the injected services for one test.
func withDeps(deps Deps, fn func()) {
	savedProjects := projectService
	savedIngest := ingestService
	savedSuggestion := suggestionService
	savedGeneration := generationService
	savedInstall := installService
	savedConfig := configStore
	savedGenerator := generatorFactory
	defer func() {
		projectService = savedProjects
		ingestService = savedIngest
		suggestionService = savedSuggestion
		generationService = savedGeneration
		installService = savedInstall
		configStore = savedConfig
		generatorFactory = savedGenerator
	}()

	SetDeps(deps)
	fn()
}

type fakeProjectService struct {
	projects map[string]*domain.Project
	saved    []*domain.Project
}

var _ driving.ProjectService = (*fakeProjectService)(nil)

func newFakeProjectService(projects ...*domain.Project) *fakeProjectService {
	s := &fakeProjectService{projects: make(map[string]*domain.Project)}
	for _, p := range projects {
		s.projects[p.Name] = p
	}
	return s
}

func (s *fakeProjectService) Create(_ context.Context, displayName string, outputType domain.OutputType) (*domain.Project, error) {
	name := domain.ToKebabCase(displayName)
	if _, ok := s.projects[name]; ok {
		return nil, domain.ErrAlreadyExists
	}
	p := domain.NewProject(name)
	p.DisplayName = displayName
	p.OutputType = outputType
	s.projects[name] = p
	return p, nil
}

func (s *fakeProjectService) Get(_ context.Context, ref string) (*domain.Project, error) {
	if p, ok := s.projects[ref]; ok {
		return p, nil
	}
	for _, p := range s.projects {
		if p.ID == ref {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeProjectService) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProjectService) Save(_ context.Context, project *domain.Project) error {
	project.LastModifiedAt = time.Now()
	s.projects[project.Name] = project
	s.saved = append(s.saved, project)
	return nil
}

func (s *fakeProjectService) Delete(_ context.Context, ref string) error {
	if _, ok := s.projects[ref]; !ok {
		return domain.ErrNotFound
	}
	delete(s.projects, ref)
	return nil
}

func (s *fakeProjectService) AttachArtifact(_ context.Context, project *domain.Project, artifact *domain.GeneratedArtifact) error {
	project.Artifact = artifact
	project.GenerationStatus = domain.StatusCompleted
	return s.Save(context.Background(), project)
}

type fakeSuggestionService struct {
	suggestions []domain.Suggestion
	err         error
}

var _ driving.SuggestionService = (*fakeSuggestionService)(nil)

func (s *fakeSuggestionService) Analyze(_ context.Context, _ *domain.Project) ([]domain.Suggestion, error) {
	return s.suggestions, s.err
}

type fakeGenerationService struct {
	artifact *domain.GeneratedArtifact
	err      error
}

var _ driving.GenerationService = (*fakeGenerationService)(nil)

func (s *fakeGenerationService) Generate(_ context.Context, _ *domain.Project, progress driving.ProgressFunc) (*domain.GeneratedArtifact, error) {
	if s.err != nil {
		return nil, s.err
	}
	if progress != nil {
		for i := range s.artifact.Files {
			progress(s.artifact.Files[i].RelativePath, i+1, len(s.artifact.Files))
		}
	}
	return s.artifact, nil
}

type fakeInstallService struct {
	installPath string
	err         error
}

var _ driving.InstallService = (*fakeInstallService)(nil)

func (s *fakeInstallService) Install(_ context.Context, _ *domain.Project) (string, error) {
	return s.installPath, s.err
}

func (s *fakeInstallService) Export(_ context.Context, _ *domain.Project, dir string) (string, error) {
	return dir, s.err
}

func (s *fakeInstallService) ExportArchive(_ context.Context, _ *domain.Project, _ string) error {
	return s.err
}

type fakeConfigStore struct {
	settings driven.Settings
	path     string
}

var _ driven.ConfigStore = (*fakeConfigStore)(nil)

func (s *fakeConfigStore) Load() (driven.Settings, error) {
	return s.settings, nil
}

func (s *fakeConfigStore) Save(settings driven.Settings) error {
	s.settings = settings
	return nil
}

func (s *fakeConfigStore) Path() string {
	return s.path
}
