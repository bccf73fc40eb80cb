package telegram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, "Room 3\\.333", EscapeMarkdownV2("Room 3.333"))
	assert.Equal(t, "Co\\-working Zone", EscapeMarkdownV2("Co-working Zone"))
	assert.Equal(t, "a\\_b\\*c", EscapeMarkdownV2("a_b*c"))
	assert.Equal(t, "без спецсимволов", EscapeMarkdownV2("без спецсимволов"))
}

func TestMessageOptions(t *testing.T) {
	req := &sendMessageRequest{ChatID: 1, Text: "привет"}

	WithMarkdownV2()(req)
	assert.Equal(t, "MarkdownV2", req.ParseMode)

	rows := [][]InlineKeyboardButton{
		{{Text: "Переместить", CallbackData: "move:1"}},
	}
	WithKeyboard(rows)(req)
	require.NotNil(t, req.ReplyMarkup)

	// Пустая клавиатура не должна попадать в запрос: Telegram отвечает
	// ошибкой на reply_markup без кнопок.
	empty := &sendMessageRequest{}
	WithKeyboard(nil)(empty)
	assert.Nil(t, empty.ReplyMarkup)

	payload, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"inline_keyboard"`)
	assert.Contains(t, string(payload), `"callback_data":"move:1"`)
}
