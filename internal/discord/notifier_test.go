package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/event"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

type namer map[string]string

func (n namer) Name(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return id
}

func tradeEvent(status domain.TradeStatus) event.Event {
	return event.NewTradeEvent(domain.TradeRequest{
		ID:                "t1",
		Status:            status,
		CreatedBy:         "yumbiru",
		TargetDisplayName: "Neighbor",
		LeftItems:         []domain.QuantitySelection{{ItemID: "red_knife", Quantity: 2}},
	}, 1500, 0)
}

func TestNew_DisabledWithoutChannel(t *testing.T) {
	n, err := New(Config{Token: "token"}, namer{})
	require.NoError(t, err)
	assert.False(t, n.Enabled())
	assert.NoError(t, n.Close())

	bus := event.NewMemoryBus()
	n.Subscribe(bus)
	assert.NoError(t, bus.Publish(context.Background(), tradeEvent(domain.TradeStatusPending)))
}

func TestNotifier_PostsTradeEmbed(t *testing.T) {
	sender := new(MockSender)
	sender.On("ChannelMessageSendEmbed", "chan", mock.MatchedBy(func(e *discordgo.MessageEmbed) bool {
		return e.Title == TitleTradeAccepted && e.Color == ColorAccepted
	})).Return(&discordgo.Message{}, nil).Once()

	bus := event.NewMemoryBus()
	NewWithSender(sender, "chan", namer{"red_knife": "Red Knife"}).Subscribe(bus)

	require.NoError(t, bus.Publish(context.Background(), tradeEvent(domain.TradeStatusAccepted)))
	sender.AssertExpectations(t)
}

func TestNotifier_SendFailureDoesNotFailPublish(t *testing.T) {
	sender := new(MockSender)
	sender.On("ChannelMessageSendEmbed", "chan", mock.Anything).Return(nil, errors.New("rate limited"))

	bus := event.NewMemoryBus()
	NewWithSender(sender, "chan", namer{}).Subscribe(bus)

	assert.NoError(t, bus.Publish(context.Background(), tradeEvent(domain.TradeStatusPending)))
	sender.AssertNumberOfCalls(t, "ChannelMessageSendEmbed", 1)
}

func TestTradeEmbed(t *testing.T) {
	p := event.TradePayloadV1{
		TradeID:           "t1",
		Status:            domain.TradeStatusPending,
		CreatedBy:         "yumbiru",
		TargetDisplayName: "Neighbor",
		LeftItems:         []domain.QuantitySelection{{ItemID: "red_knife", Quantity: 2}, {ItemID: "cat", Quantity: 1}},
		LeftValue:         1500,
	}

	e := TradeEmbed(p, namer{"red_knife": "Red Knife", "cat": "Cat"})

	assert.Equal(t, TitleTradeProposed, e.Title)
	assert.Equal(t, ColorProposed, e.Color)
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "Offered (1.5k)", e.Fields[0].Name)
	assert.Equal(t, "2× Red Knife\n1× Cat", e.Fields[0].Value)
	assert.Equal(t, "Requested (0)", e.Fields[1].Name)
	assert.Equal(t, EmptySideText, e.Fields[1].Value)
	assert.Equal(t, "Trade t1", e.Footer.Text)
}
