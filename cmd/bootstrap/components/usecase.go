package components

import (
	"rifas-api/internal/infra/qrcode"
	"rifas-api/internal/pkg/clock"
	"rifas-api/internal/pkg/config"
	"rifas-api/internal/usecase/commands"
	"rifas-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCredentialRenderer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPoolCommands,
		commands.NewReservationCommands,
		commands.NewInviteCommands,
		commands.NewGuestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPoolQueries,
		queries.NewReservationQueries,
		queries.NewInviteQueries,
		queries.NewGuestQueries,
		queries.NewUserQueries,
	),
)

func NewCredentialRenderer(cfg config.Config) commands.CredentialRenderer {
	return qrcode.NewRenderer(qrcode.NewFilesystemStore(cfg.QR), cfg.QR)
}
