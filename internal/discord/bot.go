// Package discord is the inbound chat surface: it registers the guild slash
// commands, translates interactions into availability queries, and shapes the
// answers into embeds.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ilo80/esiee-plus-bot/internal/application"
	"github.com/ilo80/esiee-plus-bot/internal/logging"
)

// AvailabilityQueries is the slice of the application layer the bot needs.
type AvailabilityQueries interface {
	SearchFreeRooms(ctx context.Context, params application.SearchParams) (application.SearchResult, error)
	RoomStatus(ctx context.Context, params application.StatusParams) (application.RoomStatusResult, error)
}

// Options configures a Bot.
type Options struct {
	Token   string
	GuildID string
	Queries AvailabilityQueries
	Now     func() time.Time
	Logger  *slog.Logger
}

// Bot owns the Discord gateway session and the interaction handlers.
type Bot struct {
	session *discordgo.Session
	queries AvailabilityQueries
	guildID string
	now     func() time.Time
	logger  *slog.Logger
}

// New builds a bot from options. The gateway connection is not opened until
// Start is called.
func New(opts Options) (*Bot, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("discord: token is required")
	}
	if opts.GuildID == "" {
		return nil, fmt.Errorf("discord: guild id is required")
	}
	if opts.Queries == nil {
		return nil, fmt.Errorf("discord: queries are required")
	}

	session, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session: session,
		queries: opts.Queries,
		guildID: opts.GuildID,
		now:     now,
		logger:  logger,
	}
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteraction)

	return bot, nil
}

// Start opens the gateway connection. Command registration happens in the
// ready handler once the session knows its application identity.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open gateway: %w", err)
	}
	return nil
}

// Close tears the gateway connection down.
func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	b.logger.Info("bot is ready", "user_id", s.State.User.ID)

	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, b.guildID, commandDefinitions())
	if err != nil {
		b.logger.Error("failed to register commands", "error", err)
		return
	}
	b.logger.Info("commands registered", "guild_id", b.guildID)
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	logger := b.logger.With("command", name)
	ctx := commandContext(logger)

	switch name {
	case commandPing:
		b.handlePing(s, i)
	case commandSearch:
		b.handleSearch(ctx, s, i, logger)
	case commandStatus:
		b.handleStatus(ctx, s, i, logger)
	}
}

// commandContext attaches the per-command logger to the context handed to
// the application layer, so service log lines inherit the command attribute.
func commandContext(logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(context.Background(), logger)
}

// handlePing answers immediately; there is nothing to defer.
func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := pingEmbed(s.HeartbeatLatency(), b.now())
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		b.logger.Error("failed to respond to ping", "error", err)
	}
}

func (b *Bot) handleSearch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger) {
	if !b.deferReply(s, i, logger) {
		return
	}

	params := application.SearchParams{Epis: -1}
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "date":
			params.Date = option.StringValue()
		case "debut":
			params.Start = option.StringValue()
		case "fin":
			params.End = option.StringValue()
		case "epis":
			params.Epis = int(option.IntValue())
		}
	}

	result, err := b.queries.SearchFreeRooms(ctx, params)
	if err != nil {
		b.replyError(s, i, logger, err)
		return
	}

	if len(result.Groups) == 0 {
		b.editReply(s, i, logger, errorEmbed(msgNoRoomsAvailable, b.now()))
		return
	}

	b.editReply(s, i, logger, searchResultEmbed(result, b.now()))
}

func (b *Bot) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger) {
	if !b.deferReply(s, i, logger) {
		return
	}

	params := application.StatusParams{}
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == "salle" {
			params.Room = option.StringValue()
		}
	}

	status, err := b.queries.RoomStatus(ctx, params)
	if err != nil {
		b.replyError(s, i, logger, err)
		return
	}

	b.editReply(s, i, logger, statusEmbed(status, b.now()))
}

// deferReply acknowledges the interaction before the provider round-trips,
// which routinely exceed the three second interaction deadline.
func (b *Bot) deferReply(s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.Error("failed to defer reply", "error", err)
		return false
	}
	return true
}

// replyError translates the application error taxonomy into user copy.
func (b *Bot) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger, err error) {
	message := msgUnexpectedFailure

	var vErr *application.ValidationError
	switch {
	case errors.As(err, &vErr):
		message = validationMessage(vErr)
	case errors.Is(err, application.ErrRoomNotFound):
		message = msgInvalidClassroom
	default:
		logger.Error("command failed", "error", err, "error_kind", application.ErrorKind(err))
	}

	b.editReply(s, i, logger, errorEmbed(message, b.now()))
}

func (b *Bot) editReply(s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		logger.Error("failed to edit reply", "error", err)
	}
}
