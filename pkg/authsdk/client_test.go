package authsdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginSendsJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bob", req.Username)

		_ = json.NewEncoder(w).Encode(TokenResponse{Token: "tok"})
	}))
	defer srv.Close()

	resp, err := NewSDKClient(srv.URL + "/").Login(t.Context(), "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", resp.Token)
}

func TestFetchUserSetsBearer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"user_id":"1","username":"bob","email":"b@x.io","created_at":"2024-01-01T00:00:00Z"}`)
	}))
	defer srv.Close()

	user, err := NewSDKClient(srv.URL).NewSessionFromToken("tok").GetUser(t.Context())
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	require.Nil(t, user.JobTitle)
}

func TestAPIErrors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		status int
		body   string
		want   APIError
	}{
		"token failure": {
			status: http.StatusUnauthorized,
			body:   `{"error":"unauthorized","code":"EXP","message":"Token is expired!"}`,
			want:   APIError{StatusCode: 401, Kind: KindUnauthorized, Code: CodeTokenExpired, Message: "Token is expired!"},
		},
		"bad input": {
			status: http.StatusBadRequest,
			body:   `{"error":"bad_input","message":"m","problems":{"email":["x","y"]}}`,
			want: APIError{
				StatusCode: 400,
				Kind:       KindBadInput,
				Message:    "m",
				Problems:   map[string][]string{"email": {"x", "y"}},
			},
		},
		"not our body": {
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			want:   APIError{StatusCode: 502, Kind: KindStorageFailure, Message: "HTTP 502: Bad Gateway"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			err := NewSDKClient(srv.URL).Register(t.Context(), RegisterRequest{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.want, *apiErr)
			require.True(t, IsKind(err, tc.want.Kind))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unauthorized (NMF): gone", (&APIError{Kind: KindUnauthorized, Code: CodeNoMatch, Message: "gone"}).Error())
	require.Equal(t, "conflict: taken", (&APIError{Kind: KindConflict, Message: "taken"}).Error())
}

func TestGetReadiness(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		status  int
		body    string
		wantErr error
		want    string
	}{
		"ready": {
			status: http.StatusOK,
			body:   `{"status":"ok","checks":{"database":"ok","signer":"ok"}}`,
			want:   "ok",
		},
		"degraded": {
			status:  http.StatusServiceUnavailable,
			body:    `{"status":"degraded","checks":{"database":"error","signer":"ok"}}`,
			wantErr: ErrNotReady,
			want:    "degraded",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/readyz", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			health, err := NewSDKClient(srv.URL).GetReadiness(t.Context())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, health)
			require.Equal(t, tc.want, health.Status)
			require.NotNil(t, health.Checks)
		})
	}
}

func TestGetReadiness_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	health, err := NewSDKClient(srv.URL).GetReadiness(t.Context())
	require.Nil(t, health)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotReady)
}
