package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insanmekan/journal_management_app/internal/adapters/backend/rest"
	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/dto"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

func newTestClient(t *testing.T, handler http.Handler) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.New(&config.Config{
		BackendBaseURL: srv.URL,
		BackendTimeout: 5 * time.Second,
		Version:        "test",
	})
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "op@example.com", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "issued-token",
			"token_type":   "bearer",
			"user_id":      42,
		})
	}))

	tok, err := client.Login(context.Background(), "op@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", tok.AccessToken)
	assert.Equal(t, 42, tok.UserID)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized without session", http.StatusUnauthorized, `{"detail":"bad credentials"}`, apperrors.ErrUnauthorized},
		{"validation with message", http.StatusUnprocessableEntity, `{"detail":"title too short"}`, apperrors.ErrValidation},
		{"server error", http.StatusBadGateway, `{}`, apperrors.ErrBackendUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Login(context.Background(), "a@b.c", "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidationMessagePassesThroughVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"Başlık çok kısa"}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Başlık çok kısa")
}

func TestAuthedCallMapsExpiredSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.CurrentUser(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestNotFoundAndForbidden(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/entries/1":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	_, err := client.Entry(context.Background(), "tok", 1)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = client.Entry(context.Background(), "tok", 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDecodingToleratesUnknownUpstreamFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/public/journals/1":
			w.Write([]byte(`{"id":1,"title":"Mekan","created_at":"2026-01-01T00:00:00","updated_at":"2026-01-02T00:00:00"}`))
		case "/users/me":
			w.Write([]byte(`{"id":42,"email":"op@example.com","role":"editor","confirmation_token":"abc","editor_in_chief_id":3}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	j, err := client.PublicJournal(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Mekan", j.Title)

	u, err := client.CurrentUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 42, u.ID)
}

func TestMemberAddPostsCollectionWithUserIDBody(t *testing.T) {
	type call struct {
		method, path string
		userID       int
	}
	var calls []call
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID int `json:"user_id"`
		}
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		}
		calls = append(calls, call{r.Method, r.URL.Path, body.UserID})
		if r.URL.Path == "/admin/entries/10/authors" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := client.AddAuthor(context.Background(), "tok", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []call{
		{http.MethodPost, "/admin/entries/10/authors", 3},
		{http.MethodPost, "/editors/entries/10/authors", 3},
	}, calls)
}

func TestMemberRemoveAddressesMemberInPath(t *testing.T) {
	var paths []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	err := client.RemoveReferee(context.Background(), "tok", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"/admin/entries/10/referees/3"}, paths)
}

func TestSetEditorInChiefSendsChiefIDKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/journals/5/editor-in-chief", r.URL.Path)

		var fields map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		raw, ok := fields["editor_in_chief_id"]
		require.True(t, ok, "editor_in_chief_id must be present")
		assert.Equal(t, "7", string(raw))

		json.NewEncoder(w).Encode(map[string]any{"id": 5, "editor_in_chief_id": 7})
	}))

	j, err := client.SetEditorInChief(context.Background(), "tok", 5, 7)
	require.NoError(t, err)
	require.NotNil(t, j.EditorInChiefID)
	assert.Equal(t, 7, *j.EditorInChiefID)
}

func TestUpdateSettingsClearSendsExplicitNull(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		raw, ok := fields["active_journal_id"]
		require.True(t, ok, "active_journal_id must be present")
		assert.Equal(t, "null", string(raw))

		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))

	_, err := client.UpdateSettings(context.Background(), "tok", dto.SettingsUpdateRequest{ActiveJournalIDSet: true})
	require.NoError(t, err)
}

func TestUpdateEntryUnassignSendsExplicitNull(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		raw, ok := fields["journal_id"]
		require.True(t, ok, "journal_id must be present")
		assert.Equal(t, "null", string(raw))

		json.NewEncoder(w).Encode(map[string]any{"id": 10})
	}))

	_, err := client.UpdateEntry(context.Background(), "tok", 10, dto.EntryUpdateRequest{JournalIDSet: true})
	require.NoError(t, err)
}

func TestUnreachableBackend(t *testing.T) {
	client := rest.New(&config.Config{
		BackendBaseURL: "http://127.0.0.1:1",
		BackendTimeout: 500 * time.Millisecond,
		Version:        "test",
	})

	_, err := client.ListPublishedJournals(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
}
