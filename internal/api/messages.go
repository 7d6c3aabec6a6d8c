package api

import (
	"context"
	"net/http"
)

// MessageInput carries the fields for sending a message.
type MessageInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// FetchMessages lists the caller's inbox.
func (c *Client) FetchMessages(ctx context.Context) ([]Message, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/messages", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Message](raw, "messages"), nil
}

// SendMessage delivers a message to another account.
func (c *Client) SendMessage(ctx context.Context, input MessageInput) (Message, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/messages", input)
	if err != nil {
		return Message{}, err
	}
	return UnwrapValue[Message](raw, "message"), nil
}

// MarkMessageRead flags an inbox entry as read.
func (c *Client) MarkMessageRead(ctx context.Context, id string) (Message, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/messages/"+id+"/read", nil)
	if err != nil {
		return Message{}, err
	}
	return UnwrapValue[Message](raw, "message"), nil
}
