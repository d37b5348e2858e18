package rest

import (
	"context"
	"fmt"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

func (c *Client) UsersByRole(ctx context.Context, token string, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get(fmt.Sprintf("/admin/users/role/%s", role))
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserBasicInfo(ctx context.Context, token string, userID int) (*domain.User, error) {
	var out domain.User
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get(fmt.Sprintf("/users/%d/basic-info", userID))
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublicUserInfo(ctx context.Context, userID int) (*domain.User, error) {
	var out domain.User
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/public/users/%d", userID))
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	var out struct {
		Journals []domain.Journal `json:"journals"`
		Entries  []domain.Entry   `json:"entries"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("q", query).
		Get("/public/search")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &dto.SearchResults{
		Journals: dto.ToJournalResponses(out.Journals),
		Entries:  dto.ToEntryResponses(out.Entries),
	}, nil
}
