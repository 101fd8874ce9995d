package components

import (
	"fairway/internal/domain/course"
	"fairway/internal/infra/provider"
	"fairway/internal/pkg/config"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewCatalog,
		fx.Annotate(
			provider.NewDBRecorder,
			fx.As(new(provider.Recorder)),
		),
		NewAdapters,
	),
)

func NewCatalog(cfg config.Config) (course.Catalog, error) {
	return course.Load(cfg.Provider.CoursesFile)
}

func NewAdapters(cfg config.Config, recorder provider.Recorder) []provider.Adapter {
	policy := provider.DefaultPolicy()
	return []provider.Adapter{
		provider.NewForeUpAdapter(cfg.Provider.ForeUpEndpoint, nil, policy, recorder),
		provider.NewChronogolfV1Adapter(cfg.Provider.ChronogolfV1Endpoint, nil, policy, recorder),
		provider.NewChronogolfV2Adapter(cfg.Provider.ChronogolfV2Endpoint, nil, policy, recorder),
		provider.NewMemberPortalAdapter(
			cfg.Provider.MemberPortalEndpoint,
			cfg.Provider.MemberPortalUser,
			cfg.Provider.MemberPortalPassword,
			policy, recorder),
	}
}
