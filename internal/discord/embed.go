package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// TradeEmbed renders a trade event for a channel message
func TradeEmbed(p event.TradePayloadV1, items ItemNamer) *discordgo.MessageEmbed {
	title, color := embedStyle(p.Status)

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s** → **%s**", p.CreatedBy, p.TargetDisplayName),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Offered (%s)", valuation.FormatPrecise(p.LeftValue)),
				Value:  itemLines(p.LeftItems, items),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("Requested (%s)", valuation.FormatPrecise(p.RightValue)),
				Value:  itemLines(p.RightItems, items),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Trade " + p.TradeID},
	}
}

func embedStyle(status domain.TradeStatus) (string, int) {
	switch status {
	case domain.TradeStatusAccepted:
		return TitleTradeAccepted, ColorAccepted
	case domain.TradeStatusDeclined:
		return TitleTradeDeclined, ColorDeclined
	default:
		return TitleTradeProposed, ColorProposed
	}
}

// itemLines lists "2× Name" per line; Discord rejects empty field values
func itemLines(sel []domain.QuantitySelection, items ItemNamer) string {
	if len(sel) == 0 {
		return EmptySideText
	}
	lines := make([]string, 0, len(sel))
	for _, s := range sel {
		lines = append(lines, fmt.Sprintf("%d× %s", s.Quantity, items.Name(s.ItemID)))
	}
	return strings.Join(lines, "\n")
}
