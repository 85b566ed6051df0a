package telegram

import (
	"fmt"
	"github.com/firstbot/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

// NewWebhook returns the poller receiving the updates at https://host/path. Telebot starts listening the port
// only after the webhook is registered. An empty secret token is replaced with a random one.
func NewWebhook(host, path string, port uint16, connMax uint32, secretToken string) (wh *telebot.Webhook, err error) {
	if secretToken == "" {
		secretToken, err = util.NewSecretToken()
	}
	if err == nil {
		wh = &telebot.Webhook{
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: fmt.Sprintf("https://%s%s", host, path),
			},
			Listen:         fmt.Sprintf(":%d", port),
			MaxConnections: int(connMax),
			SecretToken:    secretToken,
		}
	}
	return
}
