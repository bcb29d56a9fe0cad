// Package discord posts trade lifecycle notices to a Discord channel
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/yumbiru/yumvalues/internal/event"
)

// Config holds the notifier configuration
type Config struct {
	Token     string
	ChannelID string
}

// Sender is the part of *discordgo.Session the notifier uses
type Sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ItemNamer resolves catalog ids to display names
type ItemNamer interface {
	Name(id string) string
}

// Notifier sends one embed per trade event. A notifier without a channel is
// disabled and ignores every event.
type Notifier struct {
	sender    Sender
	session   *discordgo.Session
	channelID string
	items     ItemNamer
}

// New creates a notifier backed by a bot session. Missing token or channel
// yields a disabled notifier.
func New(cfg Config, items ItemNamer) (*Notifier, error) {
	if cfg.Token == "" || cfg.ChannelID == "" {
		return &Notifier{items: items}, nil
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &Notifier{sender: s, session: s, channelID: cfg.ChannelID, items: items}, nil
}

// NewWithSender creates an enabled notifier around an existing sender
func NewWithSender(sender Sender, channelID string, items ItemNamer) *Notifier {
	return &Notifier{sender: sender, channelID: channelID, items: items}
}

// Enabled reports whether events will be posted
func (n *Notifier) Enabled() bool {
	return n.sender != nil && n.channelID != ""
}

// Subscribe registers the notifier for trade events
func (n *Notifier) Subscribe(bus event.Bus) {
	if !n.Enabled() {
		slog.Info(LogMsgNotifierDisabled)
		return
	}
	bus.Subscribe(event.TradeProposed, n.handleTrade)
	bus.Subscribe(event.TradeAccepted, n.handleTrade)
	bus.Subscribe(event.TradeDeclined, n.handleTrade)
	slog.Info(LogMsgNotifierEnabled, "channel_id", n.channelID)
}

// handleTrade never fails the publish; a Discord outage only loses the notice
func (n *Notifier) handleTrade(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, TradeEmbed(p, n.items)); err != nil {
		slog.Warn(LogMsgSendFailed, "trade_id", p.TradeID, "error", err)
	}
	return nil
}

// Close releases the bot session
func (n *Notifier) Close() error {
	if n.session != nil {
		return n.session.Close()
	}
	return nil
}
