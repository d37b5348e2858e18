package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

func (c *Client) Settings(ctx context.Context, token string) (*domain.Settings, error) {
	var out domain.Settings
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get("/admin/settings")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings mirrors UpdateEntry's null handling: clearing the active
// journal pointer needs an explicit null on the wire.
func (c *Client) UpdateSettings(ctx context.Context, token string, reqBody dto.SettingsUpdateRequest) (*domain.Settings, error) {
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode settings update: %w", err)
	}
	if reqBody.ActiveJournalIDSet && reqBody.ActiveJournalID == nil {
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("encode settings update: %w", err)
		}
		fields["active_journal_id"] = json.RawMessage("null")
		if raw, err = json.Marshal(fields); err != nil {
			return nil, fmt.Errorf("encode settings update: %w", err)
		}
	}

	var out domain.Settings
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		SetBodyJsonBytes(raw).
		Put("/admin/settings")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
