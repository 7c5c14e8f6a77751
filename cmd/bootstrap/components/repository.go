package components

import (
	"lessonbook/internal/infra/draftstore"
	repo_impl "lessonbook/internal/infra/repository"
	"lessonbook/internal/pkg/config"
	"lessonbook/internal/usecase"
	"lessonbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewBeginner,
		fx.Annotate(
			NewDraftStore,
			fx.As(new(usecase.DraftStore)),
		),
		fx.Annotate(
			repo_impl.NewLessonRepository,
			fx.As(new(usecase.LessonRepository)),
		),
		fx.Annotate(
			repo_impl.NewCreditLedger,
			fx.As(new(usecase.CreditLedger)),
		),
		fx.Annotate(
			repo_impl.NewSlotAvailability,
			fx.As(new(usecase.AvailabilityChecker)),
		),
	),
)

func NewBeginner(pool *pgxpool.Pool) shared.Beginner {
	return pool
}

func NewDraftStore(client *redis.Client, cfg config.Config) *draftstore.RedisDraftStore {
	return draftstore.NewRedisDraftStore(client, cfg.Redis.DraftTTL)
}
