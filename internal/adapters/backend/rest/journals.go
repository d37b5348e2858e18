package rest

import (
	"context"
	"fmt"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

func (c *Client) ListJournals(ctx context.Context, token string) ([]domain.Journal, error) {
	var out []domain.Journal
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get("/journals/")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListEditorJournals(ctx context.Context, token string) ([]domain.Journal, error) {
	var out []domain.Journal
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get("/editors/journals")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPublishedJournals(ctx context.Context) ([]domain.Journal, error) {
	var out []domain.Journal
	resp, err := c.http.R().SetContext(ctx).
		Get("/public/journals")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PublicJournal(ctx context.Context, journalID int) (*domain.Journal, error) {
	var out domain.Journal
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/public/journals/%d", journalID))
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublicJournalEditors(ctx context.Context, journalID int) ([]domain.JournalEditorLink, error) {
	var out []domain.JournalEditorLink
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/public/journals/%d/editors", journalID))
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetEditorInChief(ctx context.Context, token string, journalID, userID int) (*domain.Journal, error) {
	var out domain.Journal
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		SetBody(map[string]int{"editor_in_chief_id": userID}).
		Put(fmt.Sprintf("/admin/journals/%d/editor-in-chief", journalID))
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddEditor(ctx context.Context, token string, journalID, userID int) error {
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		SetBody(map[string]int{"user_id": userID}).
		Post(fmt.Sprintf("/admin/journals/%d/editors", journalID))
	return decode(resp, err, true, nil)
}

func (c *Client) RemoveEditor(ctx context.Context, token string, journalID, userID int) error {
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Delete(fmt.Sprintf("/admin/journals/%d/editors/%d", journalID, userID))
	return decode(resp, err, true, nil)
}

func (c *Client) MergeFiles(ctx context.Context, token string, journalID int) (*domain.Journal, error) {
	var out domain.Journal
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Post(fmt.Sprintf("/journals/%d/merge", journalID))
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateTableOfContents(ctx context.Context, token string, journalID int) (*domain.Journal, error) {
	var out domain.Journal
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Post(fmt.Sprintf("/journals/%d/table-of-contents", journalID))
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
